package response

// Envelope is the uniform success wrapper used across all endpoints
type Envelope struct {
	Message  string      `json:"message"`
	Response interface{} `json:"response,omitempty"`
}

// OK wraps a payload in the standard {message: "ok", response: ...} envelope
func OK(payload interface{}) Envelope {
	return Envelope{Message: "ok", Response: payload}
}

// Message returns an envelope carrying only a message, used both for
// payload-less successes and for domain error bodies
func Message(msg string) Envelope {
	return Envelope{Message: msg}
}

// ProblemDetail is the body returned for unexpected failures
type ProblemDetail struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

// Problem builds a problem-detail body for an unexpected error
func Problem(status int, detail string) ProblemDetail {
	return ProblemDetail{
		Title:  "An error occurred while processing your request.",
		Status: status,
		Detail: detail,
	}
}
