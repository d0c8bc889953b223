package request

// RegisterRequest is the body for POST /auth/register
type RegisterRequest struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
}

// LoginRequest is the body for POST /auth/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateAnnouncementRequest is the body for POST /announcements
type CreateAnnouncementRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// VoteRequest is the body for POST /announcements/{id}/vote
type VoteRequest struct {
	Direction string `json:"direction"` // "up" or "down"
}

// SendMessageRequest is the body for POST /chat
type SendMessageRequest struct {
	Text string `json:"text"`
}
