// Package library derives the visible part of a book collection from a
// status tab and a free-text search.
package library

import (
	"strings"

	"github.com/oseayemenre/alexandria/internal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Filter string

const (
	FilterAll        Filter = "all"
	FilterReading    Filter = Filter(models.StatusReading)
	FilterCompleted  Filter = Filter(models.StatusCompleted)
	FilterWantToRead Filter = Filter(models.StatusWantToRead)
)

// Filters is the tab order.
var Filters = []Filter{FilterAll, FilterReading, FilterCompleted, FilterWantToRead}

func (f Filter) Label() string {
	switch f {
	case FilterAll:
		return "All Books"
	default:
		return StatusLabel(models.Status(f))
	}
}

// Next and Prev wrap around the tab order.
func (f Filter) Next() Filter {
	return Filters[(f.index()+1)%len(Filters)]
}

func (f Filter) Prev() Filter {
	return Filters[(f.index()+len(Filters)-1)%len(Filters)]
}

func (f Filter) index() int {
	for i, filter := range Filters {
		if filter == f {
			return i
		}
	}
	return 0
}

func StatusLabel(status models.Status) string {
	switch status {
	case models.StatusReading:
		return "Currently Reading"
	case models.StatusCompleted:
		return "Completed"
	case models.StatusWantToRead:
		return "Want to Read"
	default:
		return string(status)
	}
}

func MatchesFilter(book models.Book, filter Filter) bool {
	return filter == FilterAll || Filter(book.Status) == filter
}

func MatchesSearch(book models.Book, query string) bool {
	return containsFold(book.Title, query) || containsFold(book.Author, query)
}

func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}

	lower := cases.Lower(language.Und)

	return strings.Contains(lower.String(haystack), lower.String(needle))
}

// Visible keeps the books matching both the tab and the search, in source order.
func Visible(books []models.Book, filter Filter, query string) []models.Book {
	visible := make([]models.Book, 0, len(books))

	for _, book := range books {
		if MatchesFilter(book, filter) && MatchesSearch(book, query) {
			visible = append(visible, book)
		}
	}

	return visible
}

// Counts returns the badge for every tab. It only ever looks at the full
// collection, so typing into the search box does not move the numbers.
func Counts(books []models.Book) map[Filter]int {
	counts := make(map[Filter]int, len(Filters))

	for _, filter := range Filters {
		counts[filter] = 0
	}

	for _, book := range books {
		counts[FilterAll]++
		counts[Filter(book.Status)]++
	}

	return counts
}
