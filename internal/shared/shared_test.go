package shared

import (
	"testing"

	"github.com/oseayemenre/alexandria/internal/models"
)

func TestValidateShowcaseBook(t *testing.T) {
	tests := []struct {
		name       string
		book       models.ShowcaseBook
		shouldFail bool
	}{
		{
			name:       "it should accept a valid showcase book",
			book:       models.ShowcaseBook{Id: 1, Title: "Dune", Genre: "Sci-Fi", Progress: 72},
			shouldFail: false,
		},
		{
			name:       "it should reject progress above 100",
			book:       models.ShowcaseBook{Id: 1, Title: "Dune", Genre: "Sci-Fi", Progress: 101},
			shouldFail: true,
		},
		{
			name:       "it should reject a missing title",
			book:       models.ShowcaseBook{Id: 1, Genre: "Sci-Fi", Progress: 10},
			shouldFail: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate.Struct(&tt.book)

			if tt.shouldFail && err == nil {
				t.Fatal("expected validation error, got nil")
			}

			if !tt.shouldFail && err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}
