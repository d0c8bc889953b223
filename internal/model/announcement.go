package model

import "time"

// AnnouncementID uniquely identifies an announcement.
// Ids are derived from creation time so stored order is stable.
type AnnouncementID string

// VoteDirection is the direction of a user's vote on an announcement
type VoteDirection string

const (
	VoteUp   VoteDirection = "up"
	VoteDown VoteDirection = "down"
)

// Announcement is a board post with per-user toggle votes.
//
// Invariant: each user id appears at most once in VotesByUser, and the
// aggregate counters reflect exactly the current votes. Counters never
// go negative.
type Announcement struct {
	ID          AnnouncementID           `json:"id"`
	Title       string                   `json:"title"`
	Body        string                   `json:"body"`
	AuthorName  string                   `json:"author_name"`
	CreatedAt   time.Time                `json:"created_at"`
	Upvotes     int                      `json:"upvotes"`
	Downvotes   int                      `json:"downvotes"`
	VotesByUser map[string]VoteDirection `json:"votes_by_user"`
}

// Vote returns the user's current vote and whether one exists
func (a *Announcement) Vote(userID string) (VoteDirection, bool) {
	d, ok := a.VotesByUser[userID]
	return d, ok
}
