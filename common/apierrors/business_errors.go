package apierrors

// Business error codes
const (
	ErrCodeRequestValidation = "REQUEST_VALIDATION_ERROR"
	ErrCodeNothingToCopy     = "NOTHING_TO_COPY" // Admin output requested before any product was added
)
