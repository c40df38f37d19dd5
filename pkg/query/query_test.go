package query_test

import (
	"testing"

	"github.com/JaimeStill/juice/pkg/query"
)

func favorites() *query.ProjectionMap {
	return query.
		NewProjectionMap("public", "favorites", "f").
		Project("id", "ID").
		Project("user_id", "UserID").
		Project("prompt", "Prompt")
}

func TestProjection(t *testing.T) {
	p := favorites()

	if got := p.Table(); got != "public.favorites f" {
		t.Errorf("table: got %s", got)
	}
	if got := p.Columns(); got != "f.id, f.user_id, f.prompt" {
		t.Errorf("columns: got %s", got)
	}
	if got := p.Column("UserID"); got != "f.user_id" {
		t.Errorf("column: got %s", got)
	}
	if got := p.Column("unmapped"); got != "unmapped" {
		t.Errorf("unmapped column: got %s", got)
	}
}

func TestBuild(t *testing.T) {
	userID := "u1"

	tests := []struct {
		name     string
		builder  *query.Builder
		wantSQL  string
		wantArgs int
	}{
		{
			name:    "no conditions",
			builder: query.NewBuilder(favorites()),
			wantSQL: "SELECT f.id, f.user_id, f.prompt FROM public.favorites f",
		},
		{
			name:     "equality",
			builder:  query.NewBuilder(favorites()).WhereEquals("UserID", &userID),
			wantSQL:  "SELECT f.id, f.user_id, f.prompt FROM public.favorites f WHERE f.user_id = $1",
			wantArgs: 1,
		},
		{
			name:    "nil ignored",
			builder: query.NewBuilder(favorites()).WhereEquals("UserID", (*string)(nil)),
			wantSQL: "SELECT f.id, f.user_id, f.prompt FROM public.favorites f",
		},
		{
			name: "numbering",
			builder: query.NewBuilder(favorites()).
				WhereEquals("UserID", "u1").
				WhereEquals("Prompt", "p"),
			wantSQL:  "SELECT f.id, f.user_id, f.prompt FROM public.favorites f WHERE f.user_id = $1 AND f.prompt = $2",
			wantArgs: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := tt.builder.Build()
			if sql != tt.wantSQL {
				t.Errorf("sql:\n got  %s\n want %s", sql, tt.wantSQL)
			}
			if len(args) != tt.wantArgs {
				t.Errorf("args: got %d, want %d", len(args), tt.wantArgs)
			}
		})
	}
}
