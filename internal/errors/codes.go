package errors

// Common error codes
const (
	// System errors
	ErrInternal        ErrorCode = "internal_error"
	ErrInvalidArgument ErrorCode = "invalid_argument"
	ErrMarshalFailed   ErrorCode = "marshal_failed"

	// Collection errors
	ErrTypeMismatch    ErrorCode = "type_mismatch"
	ErrIndexOutOfRange ErrorCode = "index_out_of_range"

	// Schema errors
	ErrInvalidCategory ErrorCode = "invalid_category"
	ErrValidation      ErrorCode = "validation_failed"
	ErrInvalidLocation ErrorCode = "invalid_location"
	ErrInvalidTarget   ErrorCode = "invalid_target"

	// Configuration errors
	ErrInvalidConfig   ErrorCode = "invalid_configuration"
	ErrBindFlags       ErrorCode = "bind_flags_failed"
	ErrReadConfig      ErrorCode = "read_config_failed"
	ErrInvalidLogLevel ErrorCode = "invalid_log_level"
	ErrInvalidMapping  ErrorCode = "invalid_mapping"
)

// Common error messages
var errorMessages = map[ErrorCode]string{
	ErrInternal:        "Internal error occurred",
	ErrInvalidArgument: "Invalid argument provided",
	ErrMarshalFailed:   "Failed to marshal error schema",
	ErrTypeMismatch:    "Element type does not match the group",
	ErrIndexOutOfRange: "Index out of range",
	ErrInvalidCategory: "Unknown error category",
	ErrValidation:      "Error schema validation failed",
	ErrInvalidLocation: "Invalid location segment",
	ErrInvalidTarget:   "Invalid message target",
	ErrInvalidConfig:   "Invalid configuration",
	ErrBindFlags:       "Failed to bind flags",
	ErrReadConfig:      "Failed to read config file",
	ErrInvalidLogLevel: "Invalid log level",
	ErrInvalidMapping:  "Invalid error mapping",
}

// GetErrorMessage returns the message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}

	return string(code)
}
