// Package favorites stores prompts that users have saved.
package favorites

import "time"

// Favorite is a prompt saved by a user. ID and CreatedAt are assigned by the datastore.
type Favorite struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Prompt    string    `json:"prompt"`
	CreatedAt time.Time `json:"created_at"`
}

// AddCommand is the request body for saving a favorite.
type AddCommand struct {
	UserID string `json:"userId"`
	Prompt string `json:"prompt"`
}
