package model

import "time"

// Stats is customer count breakdown by status, total is always the sum of the three
type Stats struct {
	Total  int `json:"total"`
	Leads  int `json:"leads"`
	Active int `json:"active"`
	Closed int `json:"closed"`
}

// FollowUp is a pending reminder row joined to its customer for display
type FollowUp struct {
	InteractionID string          `json:"interactionId" bson:"_id"`
	CustomerID    string          `json:"customerId" bson:"customerId"`
	CustomerName  string          `json:"customerName" bson:"customerName"`
	Type          InteractionType `json:"type" bson:"type"`
	FollowUpDate  time.Time       `json:"followUpDate" bson:"followUpDate"`
}
