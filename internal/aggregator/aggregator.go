// Package aggregator folds classified transactions into per-category net
// totals split into Income and Expenditure.
package aggregator

import (
	"sort"

	"fjacquet/budget-prep/internal/logging"
	"fjacquet/budget-prep/internal/models"

	"github.com/shopspring/decimal"
)

// Aggregator sums transactions by category.
type Aggregator struct {
	logger logging.Logger
}

// NewAggregator creates a new Aggregator instance
func NewAggregator(logger logging.Logger) *Aggregator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("warn", "text")
	}
	return &Aggregator{
		logger: logger,
	}
}

// Totals returns the rounded net amount per category, sorted by category.
// Transfer rows are excluded before grouping; the Null category and
// categories netting to zero after rounding are excluded after.
func (a *Aggregator) Totals(transactions []models.Transaction) []models.CategoryTotal {
	sums := make(map[string]decimal.Decimal)
	transfers := 0
	for _, tx := range transactions {
		if tx.IsTransfer() {
			transfers++
			continue
		}
		sums[tx.Category] = sums[tx.Category].Add(tx.Amount)
	}

	categories := make([]string, 0, len(sums))
	for category := range sums {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	totals := make([]models.CategoryTotal, 0, len(categories))
	for _, category := range categories {
		if category == models.CategoryNull {
			continue
		}
		net := models.RoundAmount(sums[category])
		if net.IsZero() {
			a.logger.Debug("Dropping zero-sum category", logging.F(logging.FieldCategory, category))
			continue
		}
		totals = append(totals, models.CategoryTotal{Category: category, NetAmount: net})
	}

	a.logger.Debug("Grouped transactions by category",
		logging.F(logging.FieldCount, len(transactions)),
		logging.F(logging.FieldSkipped, transfers),
		logging.F(logging.FieldCategories, len(totals)))

	return totals
}

// Aggregate builds the Income/Expenditure summary for transactions.
func (a *Aggregator) Aggregate(transactions []models.Transaction) *models.Summary {
	summary := models.NewSummary()
	for _, total := range a.Totals(transactions) {
		summary.Add(total)
	}

	a.logger.Info("Aggregated transactions",
		logging.F(logging.FieldIncome, len(summary.Income)),
		logging.F(logging.FieldExpense, len(summary.Expenditure)))

	return summary
}
