package parser

import (
	"io"

	"fjacquet/budget-prep/internal/logging"
	"fjacquet/budget-prep/internal/models"
)

// TransactionParser turns a transaction export into classified transactions.
// Implementations return parsererror types for malformed input and abort
// on the first bad record.
type TransactionParser interface {
	// Parse reads an export from r. source names the input in error messages.
	Parse(r io.Reader, source string) ([]models.Transaction, error)

	// ParseFile opens and parses the export at filePath.
	ParseFile(filePath string) ([]models.Transaction, error)
}

// LoggerConfigurable is implemented by components whose logger can be swapped.
type LoggerConfigurable interface {
	SetLogger(logger logging.Logger)
}
