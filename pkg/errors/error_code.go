package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown    ErrorCode = 1
	ErrCodeUnexpected ErrorCode = 2
	ErrCodeCancelled  ErrorCode = 3

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeMissingParameter     ErrorCode = 102
	ErrCodeInvalidType          ErrorCode = 103
	ErrCodeOutOfRange           ErrorCode = 104
	ErrCodeInvalidChoice        ErrorCode = 105
	ErrCodeInvalidPeriod        ErrorCode = 106
	ErrCodeInvalidThreshold     ErrorCode = 107

	// Data/Resource errors (200-299)
	ErrCodeNotFound              ErrorCode = 200
	ErrCodeQueryFailed           ErrorCode = 201
	ErrCodeDataSourceUnavailable ErrorCode = 202
	ErrCodeInsufficientData      ErrorCode = 203

	// Provider errors (300-399)
	ErrCodeNoProvider ErrorCode = 300

	// Trading errors (400-499)
	ErrCodeOrderFailed      ErrorCode = 400
	ErrCodePositionNotFound ErrorCode = 401
	ErrCodeStepNotFound     ErrorCode = 402
	ErrCodeBuildFailed      ErrorCode = 403

	// Exchange API errors (500-599)
	ErrCodeAPIFailure ErrorCode = 500
)
