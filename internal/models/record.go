package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// RecordType tags a reshaped record. The zero value means neither side
// carried a usable amount.
type RecordType string

const (
	RecordUnset       RecordType = ""
	RecordIncome      RecordType = SideIncome
	RecordExpenditure RecordType = SideExpenditure
)

// MarshalJSON encodes the unset type as 0, the way front-end consumers
// have always received it.
func (t RecordType) MarshalJSON() ([]byte, error) {
	if t == RecordUnset {
		return []byte("0"), nil
	}
	return json.Marshal(string(t))
}

// ReshapedRecord is one front-end row per category.
type ReshapedRecord struct {
	Category string
	Amount   decimal.Decimal
	Type     RecordType
}

type recordJSON struct {
	Category string      `json:"Transaction Cat"`
	Amount   json.Number `json:"Amount"`
	Type     RecordType  `json:"Transaction Type"`
}

// MarshalJSON encodes the record with its front-end column names.
func (r ReshapedRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordJSON{
		Category: r.Category,
		Amount:   jsonNumber(r.Amount),
		Type:     r.Type,
	})
}

type recordYAML struct {
	Category string      `yaml:"Transaction Cat"`
	Amount   float64     `yaml:"Amount"`
	Type     interface{} `yaml:"Transaction Type"`
}

// MarshalYAML mirrors MarshalJSON.
func (r ReshapedRecord) MarshalYAML() (interface{}, error) {
	var recordType interface{} = string(r.Type)
	if r.Type == RecordUnset {
		recordType = 0
	}
	return recordYAML{
		Category: r.Category,
		Amount:   yamlNumber(r.Amount),
		Type:     recordType,
	}, nil
}
