// Package exportparser reads the bank transaction export: a CSV with the
// fixed columns Date, Amount, Name, Balance, Category.
package exportparser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"fjacquet/budget-prep/internal/dateutils"
	"fjacquet/budget-prep/internal/fileutils"
	"fjacquet/budget-prep/internal/logging"
	"fjacquet/budget-prep/internal/models"
	"fjacquet/budget-prep/internal/parser"
	"fjacquet/budget-prep/internal/parsererror"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

const parserName = "transactions"

// ColumnCount is the number of columns every export line must have.
const ColumnCount = 5

// ExpectedFormat describes the export layout in error messages.
const ExpectedFormat = "5 columns: Date (d/m/yyyy), Amount, Name, Balance, Category"

// ExportRow is one raw export line. gocsv maps columns by position.
type ExportRow struct {
	Date     string `csv:"Date"`
	Amount   string `csv:"Amount"`
	Name     string `csv:"Name"`
	Balance  string `csv:"Balance"`
	Category string `csv:"Category"`
}

// Options controls how the export is read.
type Options struct {
	Delimiter rune
	// SkipHeader drops the first line. Its column names are never inspected.
	SkipHeader bool
}

// DefaultOptions returns comma-delimited input with a header line.
func DefaultOptions() Options {
	return Options{Delimiter: ',', SkipHeader: true}
}

// Parser reads transaction exports.
type Parser struct {
	parser.BaseParser
	opts Options
}

var _ parser.TransactionParser = (*Parser)(nil)

// New creates a Parser.
func New(logger logging.Logger, opts Options) *Parser {
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}
	return &Parser{
		BaseParser: parser.NewBaseParser(logger),
		opts:       opts,
	}
}

// ParseFile opens and parses the export at filePath.
func (p *Parser) ParseFile(filePath string) ([]models.Transaction, error) {
	file, err := fileutils.OpenInput(filePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			p.GetLogger().WithError(err).Warn("Failed to close file")
		}
	}()

	return p.Parse(file, filePath)
}

// Parse reads every record from r and classifies it. The first malformed
// record aborts the parse; no partial result is returned.
func (p *Parser) Parse(r io.Reader, source string) ([]models.Transaction, error) {
	log := p.GetLogger().WithFields(logging.F(logging.FieldFile, source))

	reader := csv.NewReader(r)
	reader.Comma = p.opts.Delimiter
	reader.FieldsPerRecord = ColumnCount

	firstLine := 1
	if p.opts.SkipHeader {
		if _, err := reader.Read(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, &parsererror.InvalidFormatError{
					FilePath:       source,
					ExpectedFormat: ExpectedFormat,
					Msg:            "file is empty",
				}
			}
			return nil, formatError(source, err)
		}
		firstLine = 2
	}

	var rows []ExportRow
	if err := gocsv.UnmarshalCSVWithoutHeaders(reader, &rows); err != nil {
		if !errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return nil, formatError(source, err)
		}
		rows = nil
	}

	transactions := make([]models.Transaction, 0, len(rows))
	var span dateutils.DateRange
	for i, row := range rows {
		tx, err := convertRow(row, firstLine+i)
		if err != nil {
			return nil, err
		}
		span = span.Extend(tx.Date)
		transactions = append(transactions, tx)
	}

	log.Info("Parsed transaction export",
		logging.F(logging.FieldCount, len(transactions)),
		logging.F("period", span.String()))
	return transactions, nil
}

// convertRow parses one export row. record is its 1-based position in the
// input, counting the header line.
func convertRow(row ExportRow, record int) (models.Transaction, error) {
	date, err := dateutils.ParseDayMonthYear(row.Date)
	if err != nil {
		return models.Transaction{}, &parsererror.ParseError{
			Parser: parserName, Field: "Date", Value: row.Date, Line: record, Err: err,
		}
	}

	amount, err := models.ParseAmount(strings.TrimSpace(row.Amount))
	if err != nil {
		return models.Transaction{}, &parsererror.ParseError{
			Parser: parserName, Field: "Amount", Value: row.Amount, Line: record, Err: err,
		}
	}

	var balance decimal.NullDecimal
	if trimmed := strings.TrimSpace(row.Balance); trimmed != "" {
		value, err := models.ParseAmount(trimmed)
		if err != nil {
			return models.Transaction{}, &parsererror.ParseError{
				Parser: parserName, Field: "Balance", Value: row.Balance, Line: record, Err: err,
			}
		}
		balance = decimal.NewNullDecimal(value)
	}

	return models.NewTransaction(date, amount, row.Name, balance, row.Category), nil
}

func formatError(source string, err error) error {
	return &parsererror.InvalidFormatError{
		FilePath:       source,
		ExpectedFormat: ExpectedFormat,
		Msg:            fmt.Sprintf("%v", err),
		Err:            err,
	}
}
