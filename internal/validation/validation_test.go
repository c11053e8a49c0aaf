package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidOutputFormat(t *testing.T) {
	assert.NoError(t, IsValidOutputFormat("json"))
	assert.NoError(t, IsValidOutputFormat("yaml"))

	err := IsValidOutputFormat("xml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format: xml")
}

func TestIsValidDelimiter(t *testing.T) {
	tests := []struct {
		delimiter string
		valid     bool
	}{
		{",", true},
		{";", true},
		{"\t", true},
		{"|", true},
		{"", false},
		{";;", false},
		{"\"", false},
		{"\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.delimiter, func(t *testing.T) {
			err := IsValidDelimiter(tt.delimiter)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
