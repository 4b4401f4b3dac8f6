package apiresponses

import "time"

// Standard Success Response Envelope
type SuccessResponse struct {
	Status    string      `json:"status"` // Always "success"
	Data      interface{} `json:"data"`
	RequestID string      `json:"requestId,omitempty"`
	Timestamp string      `json:"timestamp,omitempty"`
}

// Standard Error Response Envelope (used by middleware)
type ErrorResponse struct {
	Status string      `json:"status"` // Always "error"
	Error  ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// Helper to create a success response
func NewSuccessResponse(data interface{}) SuccessResponse {
	return SuccessResponse{
		Status:    "success",
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// WithRequestID adds a request ID to the success response
func (r SuccessResponse) WithRequestID(requestID string) SuccessResponse {
	r.RequestID = requestID
	return r
}

// ThemeState is returned by the theme toggle endpoint.
type ThemeState struct {
	Theme string `json:"theme"`
	Icon  string `json:"icon"`
}

// AdminResult is returned by the admin endpoint for JSON clients.
type AdminResult struct {
	ProductID int64  `json:"productId"`
	Count     int    `json:"count"`
	Published bool   `json:"published"`
	Publisher string `json:"publisher"`
	Output    string `json:"output"`
}
