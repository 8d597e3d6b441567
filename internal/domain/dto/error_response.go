package dto

import "time"

// ErrorResponse is the standard JSON body for validation and internal errors.
//
// Fields:
//   - Message: Short, client-facing description.
//   - ErrorDetails: Underlying error text, if any.
//   - Timestamp: UTC time the error was produced.
type ErrorResponse struct {
	Message      string    `json:"message" example:"from must be <= to"`
	ErrorDetails string    `json:"error,omitempty" example:"parsing time \"2024-13-01\": month out of range"`
	Timestamp    time.Time `json:"timestamp"`
}

// Error implements the error interface.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse, copying err's text when err is not nil.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
