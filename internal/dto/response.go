package dto

// APIResponse is the envelope used by every budget endpoint except single reads.
type APIResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
	Error   any  `json:"error,omitempty"`
}

// Succeeded wraps data in a successful envelope.
func Succeeded(data any) APIResponse {
	return APIResponse{Success: true, Data: data}
}

// Failed wraps an error message, or a field -> message map, in a failed envelope.
func Failed(err any) APIResponse {
	return APIResponse{Success: false, Error: err}
}
