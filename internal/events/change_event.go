package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	SettingsUpdated = "settings:updated"
	ChatsUpdated    = "chats:updated"
	FoldersUpdated  = "folders:updated"
)

type Action string

const (
	ActionSaved   Action = "saved"
	ActionDeleted Action = "deleted"
)

// ChangeEvent tells the frontend that a persisted collection changed so it
// can refetch. RecordID is empty for the settings singleton.
type ChangeEvent struct {
	ID        string    `json:"id"`
	Action    Action    `json:"action"`
	RecordID  string    `json:"record_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func NewChangeEvent(action Action, recordID string) ChangeEvent {
	return ChangeEvent{
		ID:        uuid.NewString(),
		Action:    action,
		RecordID:  recordID,
		Timestamp: time.Now(),
	}
}

// Saved creates a ChangeEvent for an insert or update.
func Saved(recordID string) ChangeEvent {
	return NewChangeEvent(ActionSaved, recordID)
}

// Deleted creates a ChangeEvent for a removal.
func Deleted(recordID string) ChangeEvent {
	return NewChangeEvent(ActionDeleted, recordID)
}
