package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/oseayemenre/alexandria/internal/library"
	"github.com/oseayemenre/alexandria/internal/models"
)

const (
	cardWidth     = 28
	progressWidth = 22
)

var statusIcons = map[models.Status]string{
	models.StatusReading:    "📖",
	models.StatusCompleted:  "✓",
	models.StatusWantToRead: "📋",
}

// LibraryModel owns the collection, the selected tab and the search text.
// A new model is built every time the library route is mounted, so both
// start over at "all" and "".
type LibraryModel struct {
	books  []models.Book
	counts map[library.Filter]int
	filter library.Filter
	search textinput.Model
	bar    progress.Model
	styles Styles
	width  int
}

func NewLibraryModel(books []models.Book, styles Styles) LibraryModel {
	search := textinput.New()
	search.Placeholder = "Search by title or author..."
	search.Prompt = "🔍 "
	search.Width = 32
	search.Focus()

	return LibraryModel{
		books:  books,
		counts: library.Counts(books),
		filter: library.FilterAll,
		search: search,
		bar:    newProgressBar(),
		styles: styles,
	}
}

func (m *LibraryModel) SetSize(w, h int) {
	m.width = w
}

func (m LibraryModel) Filter() library.Filter {
	return m.filter
}

func (m LibraryModel) SearchText() string {
	return m.search.Value()
}

func (m LibraryModel) Counts() map[library.Filter]int {
	return m.counts
}

func (m LibraryModel) Visible() []models.Book {
	return library.Visible(m.books, m.filter, m.search.Value())
}

func (m LibraryModel) Update(msg tea.Msg) (LibraryModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab":
			m.filter = m.filter.Next()
			return m, nil
		case "shift+tab":
			m.filter = m.filter.Prev()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)

	return m, cmd
}

func (m LibraryModel) View() string {
	header := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("My Library"),
		m.styles.Subtitle.Render(fmt.Sprintf("%d books in your collection", len(m.books))),
	)

	controls := lipgloss.JoinHorizontal(lipgloss.Center,
		m.styles.Search.Render(m.search.View()),
		"  ",
		m.styles.Button.Render("+ Add Book"),
	)

	visible := m.Visible()

	var body string
	if len(visible) == 0 {
		body = m.renderEmpty()
	} else {
		body = m.renderGrid(visible)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		controls,
		"",
		m.renderTabs(),
		"",
		body,
		"",
		m.styles.Help.Render("tab/shift+tab: switch filter • type to search"),
	)
}

func (m LibraryModel) renderTabs() string {
	tabs := make([]string, 0, len(library.Filters))

	for _, f := range library.Filters {
		label := fmt.Sprintf("%s %s", f.Label(), m.styles.Badge.Render(fmt.Sprint(m.counts[f])))
		if f == m.filter {
			tabs = append(tabs, m.styles.TabActive.Render(label))
			continue
		}
		tabs = append(tabs, m.styles.Tab.Render(label))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m LibraryModel) columns() int {
	return gridColumns(m.width)
}

func (m LibraryModel) renderGrid(books []models.Book) string {
	cards := make([]string, 0, len(books))
	for _, book := range books {
		cards = append(cards, m.renderBookCard(book))
	}

	return layoutGrid(cards, m.columns())
}

// gridColumns fits as many cards as the width allows, three before the
// first window size arrives.
func gridColumns(width int) int {
	if width <= 0 {
		return 3
	}
	return max(1, width/(cardWidth+2))
}

func layoutGrid(cards []string, cols int) string {
	var rows []string
	for start := 0; start < len(cards); start += cols {
		end := min(start+cols, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m LibraryModel) renderBookCard(book models.Book) string {
	lines := []string{
		m.styles.Muted.Render(book.Genre),
		m.styles.Title.Render(book.Title),
		book.Author,
	}

	if book.Status == models.StatusReading {
		lines = append(lines, m.bar.ViewAs(percent(book.Progress)))
	}

	status := lipgloss.NewStyle().
		Foreground(m.styles.StatusColor[string(book.Status)]).
		Render(statusIcons[book.Status] + " " + library.StatusLabel(book.Status))
	lines = append(lines, "", status)

	switch book.Status {
	case models.StatusReading:
		lines = append(lines, fmt.Sprintf("Page %d of %d  %d%%", book.Current_page, book.Pages, book.Progress))
	case models.StatusCompleted, models.StatusWantToRead:
		lines = append(lines, fmt.Sprintf("%d pages", book.Pages))
	}

	return m.styles.Card.
		BorderForeground(lipgloss.Color(book.Cover_color)).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m LibraryModel) renderEmpty() string {
	return m.styles.Empty.Render(lipgloss.JoinVertical(lipgloss.Center,
		"📚",
		m.styles.Title.Render("No books found"),
		m.styles.Muted.Render("Try adjusting your search or filters"),
	))
}
