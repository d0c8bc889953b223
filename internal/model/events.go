package model

// Collection names one of the three persisted documents
type Collection string

const (
	CollectionAccounts      Collection = "accounts"
	CollectionAnnouncements Collection = "announcements"
	CollectionChat          Collection = "chat_messages"
)

// ChangeOp describes what happened to a collection
type ChangeOp string

const (
	ChangeCreated ChangeOp = "created"
	ChangeUpdated ChangeOp = "updated"
	ChangeDeleted ChangeOp = "deleted"
)

// ChangeEvent is published after a collection snapshot has been persisted.
// Subscribers decide whether to re-read; the event carries no entity data.
type ChangeEvent struct {
	Collection Collection `json:"collection"`
	Op         ChangeOp   `json:"op"`
	EntityID   string     `json:"entity_id,omitempty"`
}
