package chatbot

// FallbackReply is sent with HTTP 500 whenever a request cannot be answered.
const FallbackReply = "Oops! Something went wrong. Please try again."

// Request carries one caller turn. Both fields are optional.
type Request struct {
	Emotion string `json:"emotion,omitempty"`
	Message string `json:"message,omitempty"`
}

// Response wraps the chosen reply.
type Response struct {
	Response string `json:"response"`
}
