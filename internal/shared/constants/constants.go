package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderAuthorization  = "Authorization"
	HeaderXRequestID     = "X-Request-ID"
	HeaderIdempotencyKey = "Idempotency-Key"

	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// DateTimeLayout is used for timestamps written to spreadsheets.
	DateTimeLayout = "2006-01-02 15:04"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserSID   = "user_sid"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableUsers               = "users"
	TableCartons             = "cartons"
	TableDielines            = "dielines"
	TableAssignments         = "assignments"
	TableAssignmentCartons   = "assignment_cartons"
	TableAssignmentReversals = "assignment_reversals"

	// Dashboard windows
	RecentAssignmentDays = 7
	RecentActivityLimit  = 10

	ErrMsgInternalServerError = "Internal server error occurred"
)
