// Package report renders pipeline results for the command line.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"fjacquet/budget-prep/internal/logging"
	"fjacquet/budget-prep/internal/validation"

	"gopkg.in/yaml.v3"
)

// JSONIndent is the indentation used for indented JSON output.
const JSONIndent = "    "

// ReportGenerator encodes results as JSON or YAML.
type ReportGenerator struct {
	logger logging.Logger
	indent bool
}

// NewReportGenerator creates a ReportGenerator. indent pretty-prints JSON.
func NewReportGenerator(logger logging.Logger, indent bool) *ReportGenerator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("warn", "text")
	}
	return &ReportGenerator{
		logger: logger.WithField("component", "ReportGenerator"),
		indent: indent,
	}
}

// GenerateReport encodes v in the given format ("json" or "yaml").
func (g *ReportGenerator) GenerateReport(v interface{}, format string) ([]byte, error) {
	if err := validation.IsValidOutputFormat(format); err != nil {
		return nil, err
	}
	switch format {
	case validation.FormatYAML:
		return g.generateYAML(v)
	default:
		return g.generateJSON(v, g.indent)
	}
}

// Render writes v to w in the given format, followed by a newline.
func (g *ReportGenerator) Render(w io.Writer, v interface{}, format string) error {
	data, err := g.GenerateReport(v, format)
	if err != nil {
		return err
	}
	if !bytes.HasSuffix(data, []byte("\n")) {
		data = append(data, '\n')
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write %s output: %w", format, err)
	}
	g.logger.Debug("Rendered output", logging.F(logging.FieldFormat, format))
	return nil
}

// RenderIndentedJSON writes v as JSON indented with JSONIndent regardless
// of configuration.
func (g *ReportGenerator) RenderIndentedJSON(w io.Writer, v interface{}) error {
	data, err := g.generateJSON(v, true)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func (g *ReportGenerator) generateJSON(v interface{}, indent bool) ([]byte, error) {
	var data []byte
	var err error
	if indent {
		data, err = json.MarshalIndent(v, "", JSONIndent)
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return data, nil
}

func (g *ReportGenerator) generateYAML(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return buf.Bytes(), nil
}
