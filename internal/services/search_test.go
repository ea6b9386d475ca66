package services

import (
	"context"
	"testing"

	"github.com/signbridge/signbridge-backend/internal/platform/apierr"
	"github.com/signbridge/signbridge-backend/internal/repos"
)

func TestSearchValidation(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		filter repos.SearchFilter
	}{
		{"bad sort", repos.SearchFilter{SortBy: "alphabetical"}},
		{"bad emotion", repos.SearchFilter{Emotion: "Ecstatic"}},
		{"inverted fps range", repos.SearchFilter{MinFPS: ptrInt(60), MaxFPS: ptrInt(30)}},
		{"inverted duration range", repos.SearchFilter{MinDuration: ptrFloat(3), MaxDuration: ptrFloat(1)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.search.Search(ctx, tc.filter)
			if apierr.From(err).Code != apierr.CodeValidation {
				t.Fatalf("want validation_error, got %v", err)
			}
		})
	}
}

func ptrInt(v int) *int           { return &v }
func ptrFloat(v float64) *float64 { return &v }

func TestSearchEmptyCatalog(t *testing.T) {
	c := newCatalog(t)
	got, err := c.search.Search(context.Background(), repos.SearchFilter{Query: "hello"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("empty catalog should match nothing, got %d", len(got))
	}
}
