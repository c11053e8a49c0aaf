// Package parsererror defines the error types surfaced by the pipeline stages.
// Every error aborts the run; the command layer turns them into the JSON
// error envelope.
package parsererror

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an error for the caller.
type Kind string

const (
	KindInputNotFound  Kind = "InputNotFound"
	KindMalformedInput Kind = "MalformedInput"
	KindSchemaMismatch Kind = "SchemaMismatch"
	KindUnknown        Kind = "Unknown"
)

// InputNotFoundError reports a referenced input path that does not exist.
type InputNotFoundError struct {
	FilePath string
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("file '%s' not found", e.FilePath)
}

// ParseError represents an unparseable field in an input record.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Line   int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: failed to parse %s='%s': %v",
			e.Parser, e.Line, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents input that does not have the expected shape,
// such as a wrong column count or invalid JSON syntax.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
	Err            error
}

func (e *InvalidFormatError) Error() string {
	source := e.FilePath
	if source == "" {
		source = "input"
	}
	msg := fmt.Sprintf("invalid format in %s: %s", source, e.Msg)
	if e.ExpectedFormat != "" {
		msg += ". Expected: " + e.ExpectedFormat
	}
	return msg
}

func (e *InvalidFormatError) Unwrap() error {
	return e.Err
}

// SchemaMismatchError reports a syntactically valid document missing
// required keys.
type SchemaMismatchError struct {
	Missing []string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("missing required key(s): %s", strings.Join(e.Missing, ", "))
}

// KindOf reports which taxonomy bucket err belongs to.
func KindOf(err error) Kind {
	var notFound *InputNotFoundError
	var parseErr *ParseError
	var formatErr *InvalidFormatError
	var schemaErr *SchemaMismatchError

	switch {
	case errors.As(err, &notFound):
		return KindInputNotFound
	case errors.As(err, &schemaErr):
		return KindSchemaMismatch
	case errors.As(err, &parseErr), errors.As(err, &formatErr):
		return KindMalformedInput
	default:
		return KindUnknown
	}
}
