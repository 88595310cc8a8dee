package model

// User is user model entity, it doubles as the profile record
// exposing an optional display name
type User struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"-"`
	DisplayName  *string `json:"displayName"`
}
