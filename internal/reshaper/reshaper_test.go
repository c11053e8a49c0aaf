package reshaper

import (
	"encoding/json"
	"testing"

	"fjacquet/budget-prep/internal/logging"
	"fjacquet/budget-prep/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func present(amount string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(amount))
}

func newTestReshaper() (*Reshaper, *logging.MockLogger) {
	mock := logging.NewMockLogger()
	return NewReshaper(mock), mock
}

func TestReshape_SingleIncome(t *testing.T) {
	r, _ := newTestReshaper()

	records := r.Reshape(Input{
		Income:      map[string]decimal.NullDecimal{"A": present("10.00")},
		Expenditure: map[string]decimal.NullDecimal{},
	})

	require.Len(t, records, 1)
	data, err := json.Marshal(records[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"Transaction Cat":"A","Amount":10.00,"Transaction Type":"Income"}`, string(data))
}

func TestReshape_SalaryAndGroceries(t *testing.T) {
	r, _ := newTestReshaper()

	records := r.Reshape(Input{
		Income:      map[string]decimal.NullDecimal{"Salary": present("50.0")},
		Expenditure: map[string]decimal.NullDecimal{"Groceries": present("-20.0")},
	})

	data, err := json.Marshal(records)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"Transaction Cat":"Groceries","Amount":20.0,"Transaction Type":"Expenditure"},
		{"Transaction Cat":"Salary","Amount":50.0,"Transaction Type":"Income"}
	]`, string(data))
}

func TestReshapeCategory(t *testing.T) {
	absent := decimal.NullDecimal{}

	tests := []struct {
		name        string
		income      decimal.NullDecimal
		expenditure decimal.NullDecimal
		wantAmount  string
		wantType    models.RecordType
	}{
		{"income only", present("12.5"), absent, "12.5", models.RecordIncome},
		{"expenditure only", absent, present("-7.25"), "7.25", models.RecordExpenditure},
		{"expenditure of exactly minus one", absent, present("-1"), "1", models.RecordExpenditure},
		{"positive value on expenditure side", absent, present("3"), "3", models.RecordExpenditure},
		{"both sides prefer expenditure", present("5"), present("-8"), "8", models.RecordExpenditure},
		{"non-positive income is unusable", present("-4"), absent, "0", models.RecordUnset},
		{"zero income", present("0"), absent, "0", models.RecordUnset},
		{"zero expenditure falls back to income", present("2"), present("0"), "2", models.RecordIncome},
		{"both absent", absent, absent, "0", models.RecordUnset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := reshapeCategory("X", tt.income, tt.expenditure)
			assert.Equal(t, "X", record.Category)
			assert.Equal(t, tt.wantAmount, record.Amount.String())
			assert.Equal(t, tt.wantType, record.Type)
			assert.False(t, record.Amount.IsNegative())
		})
	}
}

func TestReshape_UnionOfKeysSorted(t *testing.T) {
	r, mock := newTestReshaper()

	records := r.Reshape(Input{
		Income:      map[string]decimal.NullDecimal{"b": present("1"), "Nulled": {}},
		Expenditure: map[string]decimal.NullDecimal{"a": present("-1"), "c": present("-2")},
	})

	var categories []string
	for _, record := range records {
		categories = append(categories, record.Category)
	}
	assert.Equal(t, []string{"Nulled", "a", "b", "c"}, categories)
	assert.Equal(t, models.RecordUnset, records[0].Type)
	assert.True(t, mock.HasEntry("WARN", "Category has no usable amount on either side"))
}

func TestInputFromSummary(t *testing.T) {
	summary := models.NewSummary()
	summary.Add(models.CategoryTotal{Category: "Salary", NetAmount: decimal.RequireFromString("50")})
	summary.Add(models.CategoryTotal{Category: "Rent", NetAmount: decimal.RequireFromString("-700")})

	in := InputFromSummary(summary)
	assert.Equal(t, []string{"Rent", "Salary"}, in.Categories())

	r, _ := newTestReshaper()
	records := r.Reshape(in)
	require.Len(t, records, 2)
	assert.Equal(t, "700", records[0].Amount.String())
	assert.Equal(t, models.RecordExpenditure, records[0].Type)
	assert.Equal(t, models.RecordIncome, records[1].Type)
}

func TestReshape_Empty(t *testing.T) {
	r, _ := newTestReshaper()
	records := r.Reshape(Input{})
	assert.NotNil(t, records)
	assert.Empty(t, records)

	data, err := json.Marshal(records)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
