package code

// Error code to user-facing message mapping.
var codeMessageMap = map[int]string{
	// Common error codes
	ErrSuccess:         "Success",
	ErrUnknown:         "An unexpected error occurred",
	ErrBind:            "Invalid request parameters",
	ErrSessionInvalid:  "Please log in to continue",
	ErrTooManyRequests: "Too many requests, please try again later",

	// Officer error codes
	ErrOfficerNotFound:   "Officer not found",
	ErrPasswordIncorrect: "Invalid username or password!",

	// Database error codes
	ErrDatabase:              "Database error",
	ErrRecordNotFound:        "Record not found",
	ErrForeignKeyViolation:   "Cannot delete record: it is still associated with one or more cases.",
	ErrConnectionUnavailable: "Database connection failed!",
}

// Error code to HTTP status mapping.
var codeStatusMap = map[int]int{
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrSessionInvalid:  StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,

	ErrOfficerNotFound:   StatusNotFound,
	ErrPasswordIncorrect: StatusUnauthorized,

	ErrDatabase:              StatusInternalServerError,
	ErrRecordNotFound:        StatusNotFound,
	ErrForeignKeyViolation:   StatusBadRequest,
	ErrConnectionUnavailable: StatusServiceUnavailable,
}

// GetMessage returns the message for an error code.
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return codeMessageMap[ErrUnknown]
}

// GetStatus returns the HTTP status for an error code.
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
