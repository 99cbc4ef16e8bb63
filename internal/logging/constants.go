package logging

// Standardized field names for structured logging. These constants keep
// log output consistent across commands and make logs easy to filter.
const (
	FieldInputFile   = "input_file"
	FieldOutputFile  = "output_file"
	FieldFormat      = "format"
	FieldCount       = "count"
	FieldVendor      = "vendor"
	FieldCategory    = "category"
	FieldHorizonDays = "horizon_days"
	FieldOperation   = "operation"
	FieldError       = "error"
	FieldRow         = "row"
)
