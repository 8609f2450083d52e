package store

import (
	"context"
	"errors"

	"github.com/oseayemenre/alexandria/internal/models"
)

var (
	ErrDuplicateBookId = errors.New("duplicate book id")
	ErrEmptyCatalog    = errors.New("catalog has no books")
)

type Store interface {
	GetBooks(ctx context.Context) ([]models.Book, error)
	GetShowcaseBooks(ctx context.Context) ([]models.ShowcaseBook, error)
}
