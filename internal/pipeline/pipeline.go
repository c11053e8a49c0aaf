// Package pipeline composes the prepare and transform stages. Each call is
// an independent run; nothing is shared between runs.
package pipeline

import (
	"fmt"
	"io"

	"fjacquet/budget-prep/internal/aggregator"
	"fjacquet/budget-prep/internal/logging"
	"fjacquet/budget-prep/internal/models"
	"fjacquet/budget-prep/internal/parser"
	"fjacquet/budget-prep/internal/reshaper"

	"github.com/google/uuid"
)

// Pipeline runs ingest, aggregation and reshaping.
type Pipeline struct {
	parser     parser.TransactionParser
	aggregator *aggregator.Aggregator
	reshaper   *reshaper.Reshaper
	logger     logging.Logger
}

// New creates a Pipeline from its stages.
func New(p parser.TransactionParser, agg *aggregator.Aggregator, rs *reshaper.Reshaper, logger logging.Logger) *Pipeline {
	if logger == nil {
		logger = logging.NewLogrusAdapter("warn", "text")
	}
	return &Pipeline{parser: p, aggregator: agg, reshaper: rs, logger: logger}
}

func (p *Pipeline) runLogger(stage string) logging.Logger {
	return p.logger.WithFields(
		logging.F(logging.FieldRunID, uuid.NewString()),
		logging.F(logging.FieldStage, stage))
}

// Prepare parses the export at filePath and aggregates it into a summary.
func (p *Pipeline) Prepare(filePath string) (*models.Summary, error) {
	log := p.runLogger("prepare")
	log.Debug("Starting run", logging.F(logging.FieldFile, filePath))

	transactions, err := p.parser.ParseFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error parsing file: %w", err)
	}

	summary := p.aggregator.Aggregate(transactions)
	log.Info("Prepared summary",
		logging.F(logging.FieldCount, len(transactions)),
		logging.F(logging.FieldCategories, summary.Len()))
	return summary, nil
}

// Transform decodes a serialized summary from r and reshapes it.
func (p *Pipeline) Transform(r io.Reader) ([]models.ReshapedRecord, error) {
	log := p.runLogger("transform")

	in, err := reshaper.DecodeInput(r)
	if err != nil {
		return nil, fmt.Errorf("error reading summary: %w", err)
	}

	records := p.reshaper.Reshape(in)
	log.Info("Transformed summary", logging.F(logging.FieldCount, len(records)))
	return records, nil
}

// PrepareRecords runs Prepare and reshapes its summary in-process.
func (p *Pipeline) PrepareRecords(filePath string) ([]models.ReshapedRecord, error) {
	summary, err := p.Prepare(filePath)
	if err != nil {
		return nil, err
	}
	return p.reshaper.Reshape(reshaper.InputFromSummary(summary)), nil
}
