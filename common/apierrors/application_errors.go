package apierrors

// Application error codes
const (
	ErrCodeSourceUnavailable  = "PRODUCT_SOURCE_UNAVAILABLE" // Data file or remote catalog unreachable
	ErrCodeMalformedData      = "MALFORMED_DATA"             // Product JSON could not be decoded
	ErrCodePublishFailed      = "PUBLISH_FAILED"             // Publisher could not write the catalog
	ErrCodeInternalProcessing = "INTERNAL_PROCESSING_ERROR"
	ErrCodeRequestTimeout     = "REQUEST_TIMEOUT"

	// Unexpected Errors
	ErrCodeSystemPanic = "SYSTEM_PANIC"
	ErrCodeUnknown     = "UNKNOWN_ERROR"
)
