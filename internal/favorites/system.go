package favorites

import "context"

// System defines the public contract for favorite operations.
type System interface {
	Handler() *Handler

	// List returns every favorite saved by userID in datastore order.
	List(ctx context.Context, userID string) ([]Favorite, error)
	// Add saves prompt for userID and returns the stored row.
	Add(ctx context.Context, userID, prompt string) (*Favorite, error)
	// Remove deletes the favorite with id. Removing a missing id succeeds.
	Remove(ctx context.Context, id int64) error
}
