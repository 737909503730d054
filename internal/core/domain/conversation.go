package domain

import "time"

// Turn is one message of a builder conversation.
type Turn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Session is the server-side state of a builder conversation.
type Session struct {
	ID        string    `json:"id"`
	Phase     Phase     `json:"phase"`
	Draft     Draft     `json:"draft"`
	History   []Turn    `json:"history"`
	UpdatedAt time.Time `json:"updatedAt"`
}
