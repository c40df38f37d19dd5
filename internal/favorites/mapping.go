package favorites

import (
	"github.com/JaimeStill/juice/pkg/query"
	"github.com/JaimeStill/juice/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "favorites", "f").
	Project("id", "ID").
	Project("user_id", "UserID").
	Project("prompt", "Prompt").
	Project("created_at", "CreatedAt")

func scanFavorite(s repository.Scanner) (Favorite, error) {
	var f Favorite
	err := s.Scan(
		&f.ID,
		&f.UserID,
		&f.Prompt,
		&f.CreatedAt,
	)
	return f, err
}
