// Package validation holds the checks shared by configuration and flags.
package validation

import (
	"fmt"
	"unicode/utf8"
)

// Output formats understood by the report generator.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// IsValidOutputFormat checks if the given format is supported.
func IsValidOutputFormat(format string) error {
	switch format {
	case FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s. Supported formats are 'json', 'yaml'", format)
	}
}

// IsValidDelimiter checks that a CSV delimiter is a single usable rune.
func IsValidDelimiter(delimiter string) error {
	if utf8.RuneCountInString(delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %q", delimiter)
	}
	switch r, _ := utf8.DecodeRuneInString(delimiter); r {
	case '"', '\r', '\n', utf8.RuneError:
		return fmt.Errorf("CSV delimiter %q is not allowed", delimiter)
	}
	return nil
}
