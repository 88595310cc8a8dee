package model

import "time"

// Status specifies where customer is in the pipeline
type Status string

const (
	// StatusLead means customer is a potential deal
	StatusLead Status = "Lead"
	// StatusActive means customer is an active client
	StatusActive Status = "Active"
	// StatusClosed means deal with customer is closed
	StatusClosed Status = "Closed"
)

// Valid reports whether status is one of the enumerated values
func (s Status) Valid() bool {
	switch s {
	case StatusLead, StatusActive, StatusClosed:
		return true
	}
	return false
}

// Customer is customer model entity
type Customer struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	OwnerID   string    `json:"ownerId" bson:"ownerId"`
	Name      string    `json:"name" bson:"name"`
	Email     *string   `json:"email" bson:"email"`
	Phone     *string   `json:"phone" bson:"phone"`
	Status    Status    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// NewCustomer is payload for customer creation
type NewCustomer struct {
	Name   string
	Email  *string
	Phone  *string
	Status Status
}

// CustomerPatch is partial customer update, only non-nil fields are applied
type CustomerPatch struct {
	Name   *string
	Email  *string
	Phone  *string
	Status *Status
}

// MergePatch produces copy of customer with patch fields applied on top.
// Owner id and created at are never touched.
func (c Customer) MergePatch(patch CustomerPatch) Customer {
	if patch.Name != nil {
		c.Name = *patch.Name
	}

	if patch.Email != nil {
		s := *patch.Email
		c.Email = &s
	}

	if patch.Phone != nil {
		s := *patch.Phone
		c.Phone = &s
	}

	if patch.Status != nil {
		c.Status = *patch.Status
	}
	return c
}
