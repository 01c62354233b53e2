package pearl

// Conversation modes accepted by the chat completions endpoint.
const (
	// ModePearlAI requests an AI-only response.
	ModePearlAI = "pearl-ai"
	// ModePearlAIVerified requests an AI response reviewed by an expert.
	ModePearlAIVerified = "pearl-ai-verified"
	// ModePearlAIExpert requests an AI response with expert hand-off.
	ModePearlAIExpert = "pearl-ai-expert"
	// ModeExpert requests a direct connection to a human expert.
	ModeExpert = "expert"
)

// DefaultModel is used when a completion request does not name a model.
const DefaultModel = "pearl-ai"

// SignatureHeader carries the webhook payload signature on inbound
// deliveries from the Pearl API.
const SignatureHeader = "X-Pearl-API-Signature"

// ChatMessage is a single message in a conversation. Message order is
// conversationally significant and preserved as given.
type ChatMessage struct {
	// Role is one of "user", "system", or "assistant".
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ExpertInfo describes the expert behind a response, when one is
// involved. All fields are optional on the wire.
type ExpertInfo struct {
	Name           string `json:"name,omitempty"`
	JobDescription string `json:"job_description,omitempty"`
	AvatarURL      string `json:"avatar_url,omitempty"`
}

// ResponseMessage is the assistant (or expert) message inside a
// completion choice.
type ResponseMessage struct {
	IsHuman    bool        `json:"is_human"`
	ExpertInfo *ExpertInfo `json:"expert_info,omitempty"`
	Role       string      `json:"role"`
	Content    string      `json:"content,omitempty"`
}

// Choice is a single generated response within a completion.
type Choice struct {
	Index        int             `json:"index"`
	Message      ResponseMessage `json:"message"`
	FinishReason string          `json:"finish_reason"`
}

// ChatCompletionResponse is the normalized result of a completion call.
// The API emits a mix of camelCase and snake_case field names; parsing
// normalizes both spellings into this one shape.
type ChatCompletionResponse struct {
	ID         string   `json:"id"`
	Created    int64    `json:"created"`
	Choices    []Choice `json:"choices"`
	QuestionID string   `json:"question_id,omitempty"`
	UserID     string   `json:"user_id,omitempty"`
}

// WebhookEndpointRequest registers or updates the URL that receives
// message notifications.
type WebhookEndpointRequest struct {
	Endpoint string `json:"endpoint"`
}

// WebhookPayload is the shape of an inbound delivery from the Pearl API.
// Host applications decode the raw body into this type after the
// signature has been verified against the unparsed bytes.
type WebhookPayload struct {
	ID              string     `json:"id"`
	SessionID       string     `json:"session_id"`
	Message         string     `json:"message"`
	MessageDateTime string     `json:"message_date_time"`
	Expert          ExpertInfo `json:"expert"`
}
