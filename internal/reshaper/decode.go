package reshaper

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"fjacquet/budget-prep/internal/models"
	"fjacquet/budget-prep/internal/parsererror"

	"github.com/shopspring/decimal"
)

const decoderName = "summary"

// DecodeInput reads a serialized summary, {"Income": {...}, "Expenditure": {...}}.
// Invalid JSON or non-numeric amounts are malformed input; a valid document
// lacking either side is a schema mismatch.
func DecodeInput(r io.Reader) (Input, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Input{}, fmt.Errorf("failed to read summary: %w", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return Input{}, &parsererror.InvalidFormatError{
			ExpectedFormat: `{"Income": {...}, "Expenditure": {...}}`,
			Msg:            err.Error(),
			Err:            err,
		}
	}

	var missing []string
	for _, side := range []string{models.SideIncome, models.SideExpenditure} {
		if raw, ok := doc[side]; !ok || isNull(raw) {
			missing = append(missing, side)
		}
	}
	if len(missing) > 0 {
		return Input{}, &parsererror.SchemaMismatchError{Missing: missing}
	}

	income, err := decodeSide(models.SideIncome, doc[models.SideIncome])
	if err != nil {
		return Input{}, err
	}
	expenditure, err := decodeSide(models.SideExpenditure, doc[models.SideExpenditure])
	if err != nil {
		return Input{}, err
	}

	return Input{Income: income, Expenditure: expenditure}, nil
}

func decodeSide(side string, raw json.RawMessage) (map[string]decimal.NullDecimal, error) {
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, &parsererror.ParseError{Parser: decoderName, Field: side, Value: string(raw), Err: err}
	}

	values := make(map[string]decimal.NullDecimal, len(entries))
	for category, value := range entries {
		var amount decimal.NullDecimal
		if err := amount.UnmarshalJSON(value); err != nil {
			return nil, &parsererror.ParseError{
				Parser: decoderName, Field: side + "." + category, Value: string(value), Err: err,
			}
		}
		values[category] = amount
	}
	return values, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
