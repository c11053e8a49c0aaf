// Package reshaper flattens an Income/Expenditure summary into one record
// per category for front-end consumption.
package reshaper

import (
	"sort"

	"fjacquet/budget-prep/internal/logging"
	"fjacquet/budget-prep/internal/models"

	"github.com/shopspring/decimal"
)

// Input is a summary as received by the reshaper. Each side tracks presence
// explicitly: an entry decoded from JSON null is present as a key but has
// Valid false, and counts as absent on that side.
type Input struct {
	Income      map[string]decimal.NullDecimal
	Expenditure map[string]decimal.NullDecimal
}

// InputFromSummary adapts an in-process aggregation result.
func InputFromSummary(summary *models.Summary) Input {
	in := Input{
		Income:      make(map[string]decimal.NullDecimal, len(summary.Income)),
		Expenditure: make(map[string]decimal.NullDecimal, len(summary.Expenditure)),
	}
	for category, amount := range summary.Income {
		in.Income[category] = decimal.NewNullDecimal(amount)
	}
	for category, amount := range summary.Expenditure {
		in.Expenditure[category] = decimal.NewNullDecimal(amount)
	}
	return in
}

// Categories returns the sorted union of both sides' keys.
func (in Input) Categories() []string {
	seen := make(map[string]struct{}, len(in.Income)+len(in.Expenditure))
	for category := range in.Income {
		seen[category] = struct{}{}
	}
	for category := range in.Expenditure {
		seen[category] = struct{}{}
	}
	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// Reshaper turns summaries into records.
type Reshaper struct {
	logger logging.Logger
}

// NewReshaper creates a Reshaper.
func NewReshaper(logger logging.Logger) *Reshaper {
	if logger == nil {
		logger = logging.NewLogrusAdapter("warn", "text")
	}
	return &Reshaper{logger: logger}
}

// Reshape emits one record per category, sorted by category.
func (r *Reshaper) Reshape(in Input) []models.ReshapedRecord {
	categories := in.Categories()
	records := make([]models.ReshapedRecord, 0, len(categories))
	unset := 0
	for _, category := range categories {
		record := reshapeCategory(category, in.Income[category], in.Expenditure[category])
		if record.Type == models.RecordUnset {
			unset++
			r.logger.Warn("Category has no usable amount on either side",
				logging.F(logging.FieldCategory, category))
		}
		records = append(records, record)
	}

	r.logger.Info("Reshaped summary",
		logging.F(logging.FieldCount, len(records)),
		logging.F(logging.FieldSkipped, unset))
	return records
}

// reshapeCategory applies the per-category rule. A positive income yields an
// Income record; a non-zero expenditure yields an Expenditure record with its
// absolute value and takes precedence when both sides qualify.
func reshapeCategory(category string, income, expenditure decimal.NullDecimal) models.ReshapedRecord {
	record := models.ReshapedRecord{Category: category, Amount: decimal.Zero}

	if income.Valid && income.Decimal.IsPositive() {
		record.Amount = income.Decimal
		record.Type = models.RecordIncome
	}
	if expenditure.Valid && !expenditure.Decimal.IsZero() {
		record.Amount = expenditure.Decimal.Abs()
		record.Type = models.RecordExpenditure
	}
	return record
}
