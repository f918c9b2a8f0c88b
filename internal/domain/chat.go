package domain

import (
	"time"
)

// MessageSender identifies who produced a display message in a chat session.
type MessageSender string

const (
	MessageSenderUser MessageSender = "user"
	MessageSenderBot  MessageSender = "bot"
)

// ChatMessage is a display message shown to the client.
type ChatMessage struct {
	Sender    MessageSender `json:"sender"`
	Text      string        `json:"text"`
	Timestamp time.Time     `json:"timestamp"`
}

// ChatTurn is one serialized model turn. The flat (role, text) shape is what
// allows a session to be suspended and replayed across requests without
// keeping the model's native conversation object alive in memory.
type ChatTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// ChatSession is a persisted, resumable conversation with the model,
// optionally anchored to a ticket.
type ChatSession struct {
	SessionID string        `json:"session_id"`
	UserID    int64         `json:"user_id"`
	TicketID  *int64        `json:"ticket_id,omitempty"`
	Messages  []ChatMessage `json:"messages"`
	History   []ChatTurn    `json:"chat_history"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// ChatSessionFilter narrows session listing by owner and optional ticket.
type ChatSessionFilter struct {
	UserID   int64
	TicketID *int64
}
