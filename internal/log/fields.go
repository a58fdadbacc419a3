package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldRequestID = "request_id"
	FieldClientIP  = "client_ip"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldDuration  = "duration_ms"
	FieldError     = "error"
	FieldOperation = "operation"

	FieldRecordID    = "record_id"
	FieldSubject     = "subject"
	FieldAmountCents = "amount_cents"
	FieldMode        = "mode"
	FieldKey         = "key"
	FieldCount       = "count"
)

// Components defines standard component names
const (
	ComponentApp    = "app"
	ComponentHTTP   = "http"
	ComponentStore  = "store"
	ComponentKV     = "kv"
	ComponentReport = "report"
	ComponentExport = "export"
	ComponentCache  = "cache"
)

// Operations defines standard operation names
const (
	OpLoad     = "load"
	OpSave     = "save"
	OpAdd      = "add"
	OpDelete   = "delete"
	OpSummary  = "summary"
	OpChart    = "chart"
	OpExport   = "export"
	OpTheme    = "theme"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
