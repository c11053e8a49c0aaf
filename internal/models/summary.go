package models

import (
	"encoding/json"
	"sort"

	"github.com/shopspring/decimal"
)

// Summary side names, used as JSON keys.
const (
	SideIncome      = "Income"
	SideExpenditure = "Expenditure"
)

// CategoryTotal is the rounded net amount of one category.
type CategoryTotal struct {
	Category  string
	NetAmount decimal.Decimal
}

// Summary partitions category totals into positive Income and negative
// Expenditure. A category appears on at most one side.
type Summary struct {
	Income      map[string]decimal.Decimal
	Expenditure map[string]decimal.Decimal
}

// NewSummary returns an empty Summary.
func NewSummary() *Summary {
	return &Summary{
		Income:      make(map[string]decimal.Decimal),
		Expenditure: make(map[string]decimal.Decimal),
	}
}

// Add files a total under Income or Expenditure by sign. Zero totals are
// ignored and report false.
func (s *Summary) Add(total CategoryTotal) bool {
	switch total.NetAmount.Sign() {
	case 1:
		delete(s.Expenditure, total.Category)
		s.Income[total.Category] = total.NetAmount
	case -1:
		delete(s.Income, total.Category)
		s.Expenditure[total.Category] = total.NetAmount
	default:
		return false
	}
	return true
}

// Len returns the number of categories across both sides.
func (s *Summary) Len() int {
	return len(s.Income) + len(s.Expenditure)
}

// Categories returns every category in the summary, sorted.
func (s *Summary) Categories() []string {
	categories := make([]string, 0, s.Len())
	for category := range s.Income {
		categories = append(categories, category)
	}
	for category := range s.Expenditure {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

type summaryJSON struct {
	Income      map[string]json.Number `json:"Income"`
	Expenditure map[string]json.Number `json:"Expenditure"`
}

// MarshalJSON encodes amounts as JSON numbers. Empty sides encode as {}.
func (s Summary) MarshalJSON() ([]byte, error) {
	out := summaryJSON{
		Income:      make(map[string]json.Number, len(s.Income)),
		Expenditure: make(map[string]json.Number, len(s.Expenditure)),
	}
	for category, amount := range s.Income {
		out.Income[category] = jsonNumber(amount)
	}
	for category, amount := range s.Expenditure {
		out.Expenditure[category] = jsonNumber(amount)
	}
	return json.Marshal(out)
}

type summaryYAML struct {
	Income      map[string]float64 `yaml:"Income"`
	Expenditure map[string]float64 `yaml:"Expenditure"`
}

// MarshalYAML mirrors MarshalJSON.
func (s Summary) MarshalYAML() (interface{}, error) {
	out := summaryYAML{
		Income:      make(map[string]float64, len(s.Income)),
		Expenditure: make(map[string]float64, len(s.Expenditure)),
	}
	for category, amount := range s.Income {
		out.Income[category] = yamlNumber(amount)
	}
	for category, amount := range s.Expenditure {
		out.Expenditure[category] = yamlNumber(amount)
	}
	return out, nil
}
