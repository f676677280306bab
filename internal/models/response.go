package models

// API response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIResponse is the envelope every HTTP endpoint returns.
type APIResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// SuccessResponse builds a success envelope.
func SuccessResponse(message string, data any) *APIResponse {
	return &APIResponse{Status: StatusSuccess, Message: message, Data: data}
}

// ErrorResponse builds an error envelope. Data is always null on errors.
func ErrorResponse(message string) *APIResponse {
	return &APIResponse{Status: StatusError, Message: message}
}
