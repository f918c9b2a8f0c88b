package ai

import (
	"context"
)

// Part is one content item inside a model turn: either plain text or
// inline binary data (image, document) encoded in base64.
type Part struct {
	Text       string `json:"text,omitempty"`
	InlineData *Blob  `json:"inline_data,omitempty"`
}

type Blob struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

// Content is one turn of the conversation. Role is "user" or "model".
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// TextPart собирает текстовую часть хода.
func TextPart(text string) Part {
	return Part{Text: text}
}

// Chat is a stateful conversation with the model. History grows with each
// exchange and can be extracted for persistence.
type Chat interface {
	Send(ctx context.Context, parts []Part) (string, error)
	History() []Content
}

// ChatModel opens conversations, optionally primed with replayed history.
type ChatModel interface {
	StartChat(history []Content) Chat
}
