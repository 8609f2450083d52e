package store

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/oseayemenre/alexandria/internal/models"
	"github.com/oseayemenre/alexandria/internal/shared"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYaml []byte

type catalog struct {
	Books    []models.Book         `yaml:"books" validate:"required,dive"`
	Showcase []models.ShowcaseBook `yaml:"showcase" validate:"dive"`
}

// MemoryStore serves the compiled-in catalog. Nothing is ever written back.
type MemoryStore struct {
	books    []models.Book
	showcase []models.ShowcaseBook
}

func NewMemoryStore() (*MemoryStore, error) {
	return newMemoryStoreFromYaml(catalogYaml)
}

func newMemoryStoreFromYaml(data []byte) (*MemoryStore, error) {
	var c catalog

	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("error decoding catalog: %w", err)
	}

	if len(c.Books) == 0 {
		return nil, ErrEmptyCatalog
	}

	if err := shared.Validate.Struct(&c); err != nil {
		return nil, fmt.Errorf("error validating catalog: %w", err)
	}

	seen := make(map[int]struct{}, len(c.Books))
	for _, book := range c.Books {
		if _, ok := seen[book.Id]; ok {
			return nil, fmt.Errorf("%w: book %d", ErrDuplicateBookId, book.Id)
		}
		seen[book.Id] = struct{}{}
	}

	seen = make(map[int]struct{}, len(c.Showcase))
	for _, book := range c.Showcase {
		if _, ok := seen[book.Id]; ok {
			return nil, fmt.Errorf("%w: showcase book %d", ErrDuplicateBookId, book.Id)
		}
		seen[book.Id] = struct{}{}
	}

	return &MemoryStore{
		books:    c.Books,
		showcase: c.Showcase,
	}, nil
}

func (s *MemoryStore) GetBooks(ctx context.Context) ([]models.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	books := make([]models.Book, len(s.books))
	copy(books, s.books)

	return books, nil
}

func (s *MemoryStore) GetShowcaseBooks(ctx context.Context) ([]models.ShowcaseBook, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	books := make([]models.ShowcaseBook, len(s.showcase))
	copy(books, s.showcase)

	return books, nil
}
