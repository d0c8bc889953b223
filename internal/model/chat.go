package model

import "time"

// MessageID uniquely identifies a chat message
type MessageID string

// ChatMessage is a single entry in the append-only chat log.
// Ordering is append order; the log is never re-sorted by timestamp.
type ChatMessage struct {
	ID         MessageID `json:"id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}
