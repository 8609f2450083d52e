package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/oseayemenre/alexandria/internal/models"
)

type stat struct {
	value string
	label string
}

var homeStats = []stat{
	{value: "24", label: "Books Read"},
	{value: "3", label: "Currently Reading"},
	{value: "8,432", label: "Pages Turned"},
	{value: "12", label: "Journal Entries"},
}

// HomeModel is the landing view. The showcase books are handed in by
// whoever assembles the shell; the view never fetches or changes them.
type HomeModel struct {
	books  []models.ShowcaseBook
	styles Styles
	bar    progress.Model
	width  int
}

func NewHomeModel(books []models.ShowcaseBook, styles Styles) HomeModel {
	return HomeModel{
		books:  books,
		styles: styles,
		bar:    newProgressBar(),
	}
}

func (m *HomeModel) SetSize(w, h int) {
	m.width = w
}

func (m HomeModel) Update(msg tea.Msg) (HomeModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "b":
		return m, Navigate(RouteLibrary)
	case "a":
		// Add New Book is not wired to anything.
		return m, nil
	}

	return m, nil
}

func (m HomeModel) View() string {
	hero := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Muted.Render("Your Personal Reading Journey"),
		"",
		m.styles.Title.Render("Track Every Page,"),
		m.styles.Highlight.Render("Remember Every Story"),
		"",
		m.styles.Subtitle.Render("A sanctuary for readers. Chronicle your literary adventures,"),
		m.styles.Subtitle.Render("revisit forgotten tales, and never lose your place in the"),
		m.styles.Subtitle.Render("stories that matter most."),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			m.styles.Button.Render("📚 Add New Book (a)"),
			"  ",
			m.styles.ButtonAlt.Render("Browse Library (b)"),
		),
	)

	cards := make([]string, 0, len(m.books))
	for _, book := range m.books {
		cards = append(cards, m.renderShowcaseCard(book))
	}

	sections := []string{hero}
	if len(cards) > 0 {
		sections = append(sections, "", layoutGrid(cards, gridColumns(m.width)))
	}
	sections = append(sections, "", m.renderStats())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m HomeModel) renderShowcaseCard(book models.ShowcaseBook) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Muted.Render(book.Genre),
		m.styles.Title.Render(book.Title),
		m.bar.ViewAs(percent(book.Progress)),
		fmt.Sprintf("%d%% complete", book.Progress),
	)

	return m.styles.Card.Render(body)
}

func (m HomeModel) renderStats() string {
	tiles := make([]string, 0, len(homeStats))
	for _, s := range homeStats {
		tiles = append(tiles, m.styles.Stat.Render(
			lipgloss.JoinVertical(lipgloss.Center, m.styles.StatValue.Render(s.value), s.label),
		))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

func newProgressBar() progress.Model {
	return progress.New(
		progress.WithSolidFill(string(Gold)),
		progress.WithoutPercentage(),
		progress.WithWidth(progressWidth),
	)
}

func percent(p int) float64 {
	return float64(p) / 100
}
