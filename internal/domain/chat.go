package domain

// ChatRequest is the request to send a chat message
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse is the response from a chat message
type ChatResponse struct {
	Reply string `json:"reply"`
}

// FallbackReply is the fixed reply returned whenever the assistant or the
// search capability cannot complete a request. The chat endpoint never
// surfaces those failures as errors.
const FallbackReply = "Hmm, that one's outside what I know. Try asking me about the projects, posts, or system docs on this site."
