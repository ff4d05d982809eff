// Package models defines the client-side view of backend records.
package models

// User is the authenticated identity as reported by the backend.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
