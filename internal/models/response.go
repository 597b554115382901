package models

// ErrorResponse is the standard JSON error body returned by the API.
// The shape is part of the wire contract of the generate-prompt proxy
// endpoint, so the field name must stay "error".
type ErrorResponse struct {
	Error string `json:"error"`
}

// PromptResponse is the success body of the prompt-generation endpoints.
type PromptResponse struct {
	Prompt string `json:"prompt"`
}
