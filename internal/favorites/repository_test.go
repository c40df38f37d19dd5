package favorites_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/JaimeStill/juice/internal/favorites"
)

const createTable = `
CREATE TABLE IF NOT EXISTS public.favorites (
	id BIGSERIAL PRIMARY KEY,
	user_id TEXT NOT NULL,
	prompt TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	url := os.Getenv("JUICE_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("JUICE_TEST_DATABASE_URL not set")
	}

	db, err := sql.Open("pgx", url)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec(createTable); err != nil {
		t.Fatalf("create table: %v", err)
	}
	return db
}

func TestRepositoryValidation(t *testing.T) {
	sys := favorites.New(nil, time.Second, discard())
	ctx := context.Background()

	if _, err := sys.List(ctx, " "); !errors.Is(err, favorites.ErrInvalidInput) {
		t.Errorf("List: expected ErrInvalidInput, got %v", err)
	}
	if _, err := sys.Add(ctx, "", "prompt"); !errors.Is(err, favorites.ErrInvalidInput) {
		t.Errorf("Add missing user: expected ErrInvalidInput, got %v", err)
	}
	if _, err := sys.Add(ctx, "user", ""); !errors.Is(err, favorites.ErrInvalidInput) {
		t.Errorf("Add missing prompt: expected ErrInvalidInput, got %v", err)
	}
	if err := sys.Remove(ctx, 0); !errors.Is(err, favorites.ErrInvalidInput) {
		t.Errorf("Remove zero: expected ErrInvalidInput, got %v", err)
	}
}

func TestRepositoryRoundTrip(t *testing.T) {
	db := testDB(t)
	sys := favorites.New(db, 5*time.Second, discard())
	ctx := context.Background()

	user := "test-user-" + time.Now().Format("150405.000000000")
	t.Cleanup(func() { db.Exec("DELETE FROM public.favorites WHERE user_id = $1", user) })

	empty, err := sys.List(ctx, user)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", empty)
	}

	first, err := sys.Add(ctx, user, "a recipe scaler")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if first.ID <= 0 || first.UserID != user || first.Prompt != "a recipe scaler" || first.CreatedAt.IsZero() {
		t.Errorf("unexpected favorite: %+v", first)
	}

	second, err := sys.Add(ctx, user, "a recipe scaler")
	if err != nil {
		t.Fatalf("Add() duplicate error = %v", err)
	}
	if second.ID == first.ID {
		t.Error("duplicate add should create a distinct row")
	}

	list, err := sys.List(ctx, user)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len: got %d, want 2", len(list))
	}

	if err := sys.Remove(ctx, first.ID); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if err := sys.Remove(ctx, first.ID); err != nil {
		t.Fatalf("Remove() repeat error = %v", err)
	}

	list, err = sys.List(ctx, user)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 1 || list[0].ID != second.ID {
		t.Errorf("unexpected list after remove: %+v", list)
	}
}
