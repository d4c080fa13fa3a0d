package types

import "strings"

// User identifies the person a timesheet belongs to.
type User struct {
	ID    string `json:"userId" example:"a3f1c6e2-0b7e-4c55-a0f4-17c2e1b9d0aa"` // Stable ID of the user
	Email string `json:"userEmail" example:"jane@example.com"`                  // Email address of the user
	Name  string `json:"userName" example:"Jane Doe"`                           // Display name of the user
}

// Trimmed returns the user with surrounding whitespace removed from all
// fields.
func (u User) Trimmed() User {
	return User{
		ID:    strings.TrimSpace(u.ID),
		Email: strings.TrimSpace(u.Email),
		Name:  strings.TrimSpace(u.Name),
	}
}
