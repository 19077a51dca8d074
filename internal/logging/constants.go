package logging

// Standardized field names for structured logging.
const (
	FieldUser       = "user"
	FieldUserID     = "user_id"
	FieldCategory   = "category"
	FieldKeyword    = "keyword"
	FieldAmount     = "amount"
	FieldDate       = "date"
	FieldTier       = "tier"
	FieldStreak     = "streak"
	FieldOperation  = "operation"
	FieldError      = "error"
	FieldCount      = "count"
	FieldFile       = "file_path"
	FieldOutputFile = "output_file"
	FieldDatabase   = "database"
	FieldComponent  = "component"
)
