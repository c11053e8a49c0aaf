// Package dumper converts an arbitrary headerless CSV file into JSON records
// with generated column names and a synthetic id column.
package dumper

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"fjacquet/budget-prep/internal/fileutils"
	"fjacquet/budget-prep/internal/logging"
	"fjacquet/budget-prep/internal/parser"
	"fjacquet/budget-prep/internal/parsererror"

	"github.com/gocarina/gocsv"
)

// IDColumn is the synthetic, 1-based row number column.
const IDColumn = "id"

// ColumnName returns the generated name of the 0-based column index.
func ColumnName(index int) string {
	return fmt.Sprintf("header_%d", index+1)
}

// Row is one output record. Values keep column order when encoded.
type Row struct {
	Columns []string
	Values  []interface{}
}

// Get returns the value of the named column.
func (r Row) Get(column string) (interface{}, bool) {
	for i, name := range r.Columns {
		if name == column {
			return r.Values[i], true
		}
	}
	return nil, false
}

// MarshalJSON encodes the row as an object with keys in column order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, column := range r.Columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(column)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(r.Values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type columnKind int

const (
	kindInt columnKind = iota
	kindFloat
	kindString
)

// Dumper reads headerless CSV files.
type Dumper struct {
	parser.BaseParser
	delimiter rune
}

// New creates a Dumper.
func New(logger logging.Logger, delimiter rune) *Dumper {
	if delimiter == 0 {
		delimiter = ','
	}
	return &Dumper{BaseParser: parser.NewBaseParser(logger), delimiter: delimiter}
}

// DumpFile reads the CSV at filePath.
func (d *Dumper) DumpFile(filePath string) ([]Row, error) {
	file, err := fileutils.OpenInput(filePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			d.GetLogger().WithError(err).Warn("Failed to close file")
		}
	}()
	return d.Dump(file, filePath)
}

// Dump reads every line of r. The first line fixes the column count: shorter
// lines are padded with null, longer lines are rejected. A column whose
// cells all parse as integers is emitted as integers, one whose cells all
// parse as numbers as floats, anything else as strings.
func (d *Dumper) Dump(r io.Reader, source string) ([]Row, error) {
	var reader gocsv.CSVReader = d.newReader(r)

	lines, err := reader.ReadAll()
	if err != nil {
		return nil, &parsererror.InvalidFormatError{FilePath: source, Msg: err.Error(), Err: err}
	}
	if len(lines) == 0 {
		return nil, &parsererror.InvalidFormatError{FilePath: source, Msg: "no columns to parse from file"}
	}

	width := len(lines[0])
	for i, line := range lines {
		if len(line) > width {
			return nil, &parsererror.InvalidFormatError{
				FilePath: source,
				Msg:      fmt.Sprintf("expected %d fields in line %d, saw %d", width, i+1, len(line)),
			}
		}
	}

	kinds := make([]columnKind, width)
	for col := range kinds {
		kinds[col] = inferKind(lines, col)
	}

	columns := make([]string, 0, width+1)
	columns = append(columns, IDColumn)
	for col := 0; col < width; col++ {
		columns = append(columns, ColumnName(col))
	}

	rows := make([]Row, 0, len(lines))
	for i, line := range lines {
		values := make([]interface{}, 0, width+1)
		values = append(values, i+1)
		for col := 0; col < width; col++ {
			if col >= len(line) {
				values = append(values, nil)
				continue
			}
			values = append(values, convert(line[col], kinds[col]))
		}
		rows = append(rows, Row{Columns: columns, Values: values})
	}

	d.GetLogger().Info("Dumped CSV file",
		logging.F(logging.FieldFile, source),
		logging.F(logging.FieldCount, len(rows)),
		logging.F("columns", width))
	return rows, nil
}

func (d *Dumper) newReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.Comma = d.delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader
}

func inferKind(lines [][]string, col int) columnKind {
	kind := kindInt
	padded := false
	for _, line := range lines {
		if col >= len(line) {
			padded = true
			continue
		}
		cell := line[col]
		if kind == kindInt {
			if _, err := strconv.ParseInt(cell, 10, 64); err == nil {
				continue
			}
			kind = kindFloat
		}
		if !isFiniteFloat(cell) {
			return kindString
		}
	}
	// Missing cells cannot be integers, so such columns widen to floats.
	if kind == kindInt && padded {
		kind = kindFloat
	}
	return kind
}

func isFiniteFloat(cell string) bool {
	f, err := strconv.ParseFloat(cell, 64)
	return err == nil && !math.IsInf(f, 0) && !math.IsNaN(f)
}

func convert(cell string, kind columnKind) interface{} {
	switch kind {
	case kindInt:
		n, _ := strconv.ParseInt(cell, 10, 64)
		return n
	case kindFloat:
		f, _ := strconv.ParseFloat(cell, 64)
		return f
	default:
		return cell
	}
}
