package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// ErrorEnvelope is the single diagnostic shape surfaced on failure.
type ErrorEnvelope struct {
	Error string `json:"error"`
}

// WriteError writes {"error": "<message>"} to w.
func WriteError(w io.Writer, err error) error {
	data, marshalErr := json.Marshal(ErrorEnvelope{Error: err.Error()})
	if marshalErr != nil {
		return marshalErr
	}
	_, writeErr := fmt.Fprintln(w, string(data))
	return writeErr
}
