package dto

// Envelope is the wire contract every endpoint responds with. Success
// carries data and an optional count; failure carries only the message.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

// OK wraps data in a successful envelope.
func OK(message string, data any) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

// OKCount wraps a collection, reporting its length alongside the data.
func OKCount(message string, data any, count int) Envelope {
	return Envelope{Success: true, Message: message, Data: data, Count: &count}
}

// Fail wraps an error message.
func Fail(message string) Envelope {
	return Envelope{Success: false, Message: message}
}

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"
