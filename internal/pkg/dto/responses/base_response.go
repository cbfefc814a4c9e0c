package responses

// ResponseDTO wraps every successful response. RequestID repeats the
// X-Request-ID header so a saved body can be matched to the server logs.
type ResponseDTO struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	RequestID string      `json:"requestId,omitempty"`
	Data      interface{} `json:"data,omitempty"`
}
