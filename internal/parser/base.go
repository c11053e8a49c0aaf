// Package parser provides the base parser functionality and common interfaces.
package parser

import (
	"fjacquet/budget-prep/internal/logging"
)

// BaseParser carries the logger shared by parser implementations.
// Parsers embed it:
//
//	type MyParser struct {
//		parser.BaseParser
//		// parser-specific fields
//	}
type BaseParser struct {
	logger logging.Logger
}

// NewBaseParser creates a BaseParser. A nil logger falls back to a default
// logrus-backed logger.
func NewBaseParser(logger logging.Logger) BaseParser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("warn", "text")
	}

	return BaseParser{
		logger: logger,
	}
}

// SetLogger implements LoggerConfigurable. Nil is ignored.
func (b *BaseParser) SetLogger(logger logging.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

// GetLogger returns the current logger instance.
func (b *BaseParser) GetLogger() logging.Logger {
	return b.logger
}
