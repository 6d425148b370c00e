package logging

// Standardized field names for structured logging. Using the same keys
// everywhere keeps the pipeline's log output filterable.
const (
	FieldFile        = "file_path"
	FieldParser      = "parser"
	FieldCategory    = "category"
	FieldKeyword     = "keyword"
	FieldReason      = "reason"
	FieldCount       = "count"
	FieldRows        = "rows"
	FieldSkipped     = "skipped"
	FieldMonth       = "month"
	FieldYear        = "year"
	FieldDescription = "description"
	FieldAmount      = "amount"
	FieldInputFile   = "input_file"
	FieldOutputFile  = "output_file"
)
