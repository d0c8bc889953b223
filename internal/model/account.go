package model

// Role determines what an account is allowed to do
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// Account is a durable registered identity.
// Usernames are stored lower-cased and are unique under
// case-insensitive comparison.
type Account struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"` // profile name, not unique
	Secret      string `json:"secret"`
	Role        Role   `json:"role"`
	IsOnline    bool   `json:"is_online"`
}

// IsAdmin reports whether the account has the admin role
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}
