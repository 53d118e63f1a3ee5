package models

// Response is the JSON error envelope. Success bodies are the bare payloads
// the HTTP contract documents, so only the error side needs a wrapper.
type Response struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func ErrorResponse(err string) Response {
	return Response{
		Success: false,
		Error:   err,
	}
}
