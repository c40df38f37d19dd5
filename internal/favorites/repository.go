package favorites

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/JaimeStill/juice/pkg/query"
	"github.com/JaimeStill/juice/pkg/repository"
)

const insertFavorite = `
INSERT INTO public.favorites (user_id, prompt)
VALUES ($1, $2)
RETURNING id, user_id, prompt, created_at`

const deleteFavorite = `DELETE FROM public.favorites WHERE id = $1`

type repo struct {
	db      *sql.DB
	timeout time.Duration
	logger  *slog.Logger
}

// New creates a favorites repository implementing the System interface.
// Each operation is bounded by timeout when it is positive.
func New(db *sql.DB, timeout time.Duration, logger *slog.Logger) System {
	return &repo{
		db:      db,
		timeout: timeout,
		logger:  logger.With("system", "favorites"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) List(ctx context.Context, userID string) ([]Favorite, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	ctx, cancel := r.bound(ctx)
	defer cancel()

	q, args := query.
		NewBuilder(projection).
		WhereEquals("UserID", userID).
		Build()

	favorites, err := repository.QueryMany(ctx, r.db, q, args, scanFavorite)
	if err != nil {
		return nil, repository.MapError(err, ErrStorage)
	}
	return favorites, nil
}

func (r *repo) Add(ctx context.Context, userID, prompt string) (*Favorite, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("%w: user id and prompt are required", ErrInvalidInput)
	}

	ctx, cancel := r.bound(ctx)
	defer cancel()

	f, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Favorite, error) {
		return repository.QueryOne(ctx, tx, insertFavorite, []any{userID, prompt}, scanFavorite)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrStorage)
	}

	r.logger.Info("favorite added", "id", f.ID, "user_id", f.UserID)
	return &f, nil
}

func (r *repo) Remove(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: id must be a positive integer", ErrInvalidInput)
	}

	ctx, cancel := r.bound(ctx)
	defer cancel()

	n, err := repository.Exec(ctx, r.db, deleteFavorite, id)
	if err != nil {
		return repository.MapError(err, ErrStorage)
	}

	r.logger.Info("favorite removed", "id", id, "rows", n)
	return nil
}

func (r *repo) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}
