package dto

type ErrorResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse maps field names to messages. Nothing was
// written to the store when this is returned.
type ValidationErrorResponse struct {
	Errors map[string]string `json:"errors"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
