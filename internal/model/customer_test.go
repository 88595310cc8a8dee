package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusLead.Valid(), "lead must be valid status")
	assert.True(t, StatusActive.Valid(), "active must be valid status")
	assert.True(t, StatusClosed.Valid(), "closed must be valid status")
	assert.False(t, Status("Prospect").Valid(), "unknown status must be invalid")
	assert.False(t, Status("lead").Valid(), "status is case-sensitive")
	assert.False(t, Status("").Valid(), "empty status must be invalid")
}

func TestInteractionTypeValid(t *testing.T) {
	assert.True(t, InteractionCall.Valid(), "call must be valid type")
	assert.True(t, InteractionEmail.Valid(), "email must be valid type")
	assert.True(t, InteractionMeeting.Valid(), "meeting must be valid type")
	assert.False(t, InteractionType("fax").Valid(), "unknown type must be invalid")
	assert.False(t, InteractionType("").Valid(), "empty type must be invalid")
}

func TestMergePatch(t *testing.T) {
	email := "ada.lovelace@analytical.engines"
	createdAt := time.Date(2023, time.March, 10, 12, 0, 0, 0, time.UTC)

	customer := Customer{
		ID:        "ecc770d9-4576-4f72-affa-8b1454246692",
		OwnerID:   "bdf2f837-75f6-462a-b9ec-5dfb2e8f8792",
		Name:      "Ada Lovelace",
		Email:     &email,
		Phone:     nil,
		Status:    StatusLead,
		CreatedAt: createdAt,
	}

	t.Log("empty patch changes nothing")
	{
		merged := customer.MergePatch(CustomerPatch{})
		assert.Equal(t, customer, merged, "customer must stay intact")
	}

	t.Log("patched fields are applied, the rest survives")
	{
		name := "Augusta Ada King"
		phone := "+44 20 0000 0000"
		status := StatusActive

		merged := customer.MergePatch(CustomerPatch{Name: &name, Phone: &phone, Status: &status})
		assert.Equal(t, name, merged.Name, "name must be patched")
		assert.Equal(t, &phone, merged.Phone, "phone must be patched")
		assert.Equal(t, status, merged.Status, "status must be patched")
		assert.Equal(t, customer.Email, merged.Email, "email must survive")
		assert.Equal(t, customer.ID, merged.ID, "id must never change")
		assert.Equal(t, customer.OwnerID, merged.OwnerID, "owner must never change")
		assert.Equal(t, customer.CreatedAt, merged.CreatedAt, "created at must never change")
	}

	t.Log("original is not mutated by applying a patch")
	{
		name := "Someone Else"
		_ = customer.MergePatch(CustomerPatch{Name: &name})
		assert.Equal(t, "Ada Lovelace", customer.Name, "merge must work on a copy")
	}
}
