package logging

// Standardized field names for structured logging.
const (
	FieldFile       = "file_path"
	FieldStage      = "stage"
	FieldRunID      = "run_id"
	FieldCategory   = "category"
	FieldCount      = "count"
	FieldCategories = "categories"
	FieldIncome     = "income_categories"
	FieldExpense    = "expenditure_categories"
	FieldDelimiter  = "delimiter"
	FieldFormat     = "format"
	FieldLine       = "line"
	FieldSkipped    = "skipped"
)
