package repository_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/JaimeStill/juice/pkg/repository"
)

var errStorage = errors.New("storage error")

func TestMapErrorNil(t *testing.T) {
	if got := repository.MapError(nil, errStorage); got != nil {
		t.Errorf("MapError(nil) = %v, want nil", got)
	}
}

func TestMapErrorPgError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23502", Message: `null value in column "prompt"`}
	got := repository.MapError(pgErr, errStorage)

	if !errors.Is(got, errStorage) {
		t.Fatalf("MapError(PgError) = %v, want wrapped %v", got, errStorage)
	}
	if !strings.Contains(got.Error(), "23502") {
		t.Errorf("message should carry SQLSTATE: %s", got.Error())
	}
	if !strings.Contains(got.Error(), `null value in column "prompt"`) {
		t.Errorf("message should carry pg message: %s", got.Error())
	}
}

func TestMapErrorWrapsOther(t *testing.T) {
	got := repository.MapError(context.DeadlineExceeded, errStorage)

	if !errors.Is(got, errStorage) {
		t.Errorf("should wrap sentinel: %v", got)
	}
	if !errors.Is(got, context.DeadlineExceeded) {
		t.Errorf("should keep original cause: %v", got)
	}
}

type fakeRow struct {
	values []any
	err    error
}

func (f fakeRow) Scan(dest ...any) error {
	if f.err != nil {
		return f.err
	}
	for i, d := range dest {
		*(d.(*string)) = f.values[i].(string)
	}
	return nil
}

func TestScanFunc(t *testing.T) {
	scan := repository.ScanFunc[string](func(s repository.Scanner) (string, error) {
		var v string
		err := s.Scan(&v)
		return v, err
	})

	got, err := scan(fakeRow{values: []any{"Build a budgeting app"}})
	if err != nil {
		t.Fatalf("scan error = %v", err)
	}
	if got != "Build a budgeting app" {
		t.Errorf("scan: got %q", got)
	}

	if _, err := scan(fakeRow{err: errStorage}); !errors.Is(err, errStorage) {
		t.Errorf("scan error: got %v, want %v", err, errStorage)
	}
}
