package model

import "time"

// SessionID is the opaque token identifying an active login
type SessionID string

// Session is the ephemeral identity created by a successful sign-in.
// It lives only in process memory and is gone after a restart.
type Session struct {
	ID          SessionID
	Username    string
	DisplayName string
	Role        Role
	StartedAt   time.Time
}

// IsAdmin reports whether the session belongs to an admin account
func (s *Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
