package response

import (
	"time"

	"github.com/spiderxog/hub/internal/model"
)

// Session represents the signed-in identity in API responses
type Session struct {
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	StartedAt   time.Time `json:"started_at"`
}

// SessionFromModel converts a model.Session to a response Session
func SessionFromModel(s *model.Session) Session {
	return Session{
		Username:    s.Username,
		DisplayName: s.DisplayName,
		Role:        string(s.Role),
		StartedAt:   s.StartedAt,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Session      Session `json:"session"`
	SessionToken string  `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *model.Session) AuthResponse {
	return AuthResponse{
		Session:      SessionFromModel(s),
		SessionToken: string(s.ID),
	}
}

// Announcement represents a board post in API responses
type Announcement struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
	Upvotes    int       `json:"upvotes"`
	Downvotes  int       `json:"downvotes"`
	MyVote     string    `json:"my_vote,omitempty"`
}

// AnnouncementFromModel converts a model.Announcement, resolving the
// requesting user's own vote. The full vote map is not exposed.
func AnnouncementFromModel(a *model.Announcement, userID string) Announcement {
	resp := Announcement{
		ID:         string(a.ID),
		Title:      a.Title,
		Body:       a.Body,
		AuthorName: a.AuthorName,
		CreatedAt:  a.CreatedAt,
		Upvotes:    a.Upvotes,
		Downvotes:  a.Downvotes,
	}
	if dir, ok := a.Vote(userID); ok {
		resp.MyVote = string(dir)
	}
	return resp
}

// AnnouncementsFromModel converts a list of announcements
func AnnouncementsFromModel(anns []model.Announcement, userID string) []Announcement {
	out := make([]Announcement, len(anns))
	for i := range anns {
		out[i] = AnnouncementFromModel(&anns[i], userID)
	}
	return out
}

// ChatMessage represents a chat entry in API responses
type ChatMessage struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

// ChatMessageFromModel converts a model.ChatMessage
func ChatMessageFromModel(m *model.ChatMessage) ChatMessage {
	return ChatMessage{
		ID:         string(m.ID),
		AuthorID:   m.AuthorID,
		AuthorName: m.AuthorName,
		Text:       m.Text,
		CreatedAt:  m.CreatedAt,
	}
}

// ChatMessagesFromModel converts a list of messages
func ChatMessagesFromModel(msgs []model.ChatMessage) []ChatMessage {
	out := make([]ChatMessage, len(msgs))
	for i := range msgs {
		out[i] = ChatMessageFromModel(&msgs[i])
	}
	return out
}
