package pearl

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

const chatCompletionsPath = "/chat/completions"

// Chat sends completion requests to the Pearl API.
type Chat struct {
	transport *transport
}

type completionMetadata struct {
	Mode      string `json:"mode"`
	SessionID string `json:"sessionId"`
}

type completionRequest struct {
	Model    string             `json:"model"`
	Messages []ChatMessage      `json:"messages"`
	Metadata completionMetadata `json:"metadata"`
}

// SendCompletion posts the conversation to /chat/completions and returns
// the normalized response. Model and mode default to DefaultModel and
// ModePearlAI; override per call with WithModel and WithMode. A non-2xx
// status is returned as *HTTPError.
func (c *Chat) SendCompletion(ctx context.Context, messages []ChatMessage, sessionID string, opts ...RequestOption) (*ChatCompletionResponse, error) {
	o := newRequestOptions(opts...)

	body := completionRequest{
		Model:    o.model,
		Messages: messages,
		Metadata: completionMetadata{Mode: o.mode, SessionID: sessionID},
	}

	resp, err := c.transport.do(ctx, http.MethodPost, chatCompletionsPath, body, o)
	if err != nil {
		return nil, err
	}
	if !resp.success() {
		return nil, &HTTPError{StatusCode: resp.statusCode, Body: resp.body}
	}

	return parseCompletionResponse(resp.body)
}

// parseCompletionResponse normalizes the API's heterogeneous field
// naming. The service emits a mix of camelCase and snake_case depending
// on which backend produced the response, so every aliased field is
// resolved through an ordered candidate list, first non-null match wins.
// The tolerance is confined to this parse boundary; the rest of the
// library only sees ChatCompletionResponse.
func parseCompletionResponse(body []byte) (*ChatCompletionResponse, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("pearl: invalid completion response body")
	}
	root := gjson.ParseBytes(body)

	out := &ChatCompletionResponse{
		ID:         root.Get("id").String(),
		Created:    root.Get("created").Int(),
		Choices:    []Choice{},
		QuestionID: firstOf(root, "questionId", "question_id").String(),
		UserID:     firstOf(root, "userId", "user_id").String(),
	}

	for _, choice := range root.Get("choices").Array() {
		msg := choice.Get("message")

		var expert *ExpertInfo
		if info := firstOf(msg, "expertInfo", "expert_info"); info.IsObject() {
			expert = &ExpertInfo{
				Name:           info.Get("name").String(),
				JobDescription: firstOf(info, "jobDescription", "job_description").String(),
				AvatarURL:      firstOf(info, "avatarUrl", "avatar_url").String(),
			}
		}

		role := msg.Get("role").String()
		if role == "" {
			role = "assistant"
		}

		out.Choices = append(out.Choices, Choice{
			Index: int(choice.Get("index").Int()),
			Message: ResponseMessage{
				IsHuman:    firstOf(msg, "isHuman", "is_human").Bool(),
				ExpertInfo: expert,
				Role:       role,
				Content:    msg.Get("content").String(),
			},
			FinishReason: choice.Get("finish_reason").String(),
		})
	}

	return out, nil
}

// firstOf returns the first candidate key that exists with a non-null
// value.
func firstOf(r gjson.Result, keys ...string) gjson.Result {
	for _, key := range keys {
		if v := r.Get(key); v.Exists() && v.Type != gjson.Null {
			return v
		}
	}
	return gjson.Result{}
}
