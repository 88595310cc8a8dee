package model

import "time"

// InteractionType specifies the kind of logged touchpoint
type InteractionType string

const (
	// InteractionCall means a phone call
	InteractionCall InteractionType = "call"
	// InteractionEmail means an email exchange
	InteractionEmail InteractionType = "email"
	// InteractionMeeting means an in-person or online meeting
	InteractionMeeting InteractionType = "meeting"
)

// Valid reports whether interaction type is one of the enumerated values
func (t InteractionType) Valid() bool {
	switch t {
	case InteractionCall, InteractionEmail, InteractionMeeting:
		return true
	}
	return false
}

// Interaction is a single entry of customer history. Entries are append-only,
// they are created once and either kept or deleted, never updated.
type Interaction struct {
	ID              string          `json:"id" bson:"_id,omitempty"`
	CustomerID      string          `json:"customerId" bson:"customerId"`
	OwnerID         string          `json:"ownerId" bson:"ownerId"`
	Type            InteractionType `json:"type" bson:"type"`
	Notes           string          `json:"notes" bson:"notes"`
	InteractionDate time.Time       `json:"interactionDate" bson:"interactionDate"`
	FollowUpDate    *time.Time      `json:"followUpDate" bson:"followUpDate"`
}

// NewInteraction is payload for logging an interaction
type NewInteraction struct {
	Type            InteractionType
	Notes           string
	InteractionDate *time.Time
	FollowUpDate    *time.Time
}
