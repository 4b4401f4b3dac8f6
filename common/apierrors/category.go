package apierrors

// ErrorCategory distinguishes between different types of errors
type ErrorCategory string

const (
	// CategoryBusiness represents errors caused by the caller or by catalog rules
	CategoryBusiness ErrorCategory = "business"

	// CategoryApplication represents technical and infrastructure errors
	CategoryApplication ErrorCategory = "application"
)
