package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/oseayemenre/alexandria/internal/logger"
	"github.com/oseayemenre/alexandria/internal/models"
)

// NavigateMsg asks the shell to switch routes.
type NavigateMsg struct {
	Path string
}

func Navigate(path string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Path: path}
	}
}

// App is the route shell. The route is the only state shared between views.
type App struct {
	route    string
	books    []models.Book
	showcase []models.ShowcaseBook
	home     HomeModel
	library  *LibraryModel
	styles   Styles
	logger   logger.Logger
	width    int
	height   int
}

func NewApp(route string, books []models.Book, showcase []models.ShowcaseBook, logger logger.Logger) App {
	styles := DefaultStyles()

	a := App{
		route:    RouteHome,
		books:    books,
		showcase: showcase,
		home:     NewHomeModel(showcase, styles),
		styles:   styles,
		logger:   logger,
	}

	a.navigate(route)

	return a
}

func (a App) Route() string {
	return a.route
}

// Library is the mounted library view, or nil when another route is active.
func (a App) Library() *LibraryModel {
	return a.library
}

func (a App) Init() tea.Cmd {
	if a.library != nil {
		return textinput.Blink
	}
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.home.SetSize(msg.Width, msg.Height)
		if a.library != nil {
			a.library.SetSize(msg.Width, msg.Height)
		}
		return a, nil

	case NavigateMsg:
		return a, a.navigate(msg.Path)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			a.logger.Info("tui shutdown", "route", a.route)
			return a, tea.Quit
		case "f1", "f3":
			return a, a.navigate(RouteHome)
		case "f2":
			return a, a.navigate(RouteLibrary)
		case "q":
			if a.route == RouteHome {
				a.logger.Info("tui shutdown", "route", a.route)
				return a, tea.Quit
			}
		}
	}

	var cmd tea.Cmd

	switch a.route {
	case RouteHome:
		a.home, cmd = a.home.Update(msg)
	case RouteLibrary:
		lib, c := a.library.Update(msg)
		a.library, cmd = &lib, c
	}

	return a, cmd
}

// navigate mounts the view for path. Re-entering the library always starts
// from a fresh model; selecting the route that is already active does nothing.
func (a *App) navigate(path string) tea.Cmd {
	if !knownRoute(path) {
		a.logger.Warn("route not found", "path", path)
		return nil
	}

	if path == a.route && (path != RouteLibrary || a.library != nil) {
		return nil
	}

	a.logger.Debug("navigate", "from", a.route, "to", path)
	a.route = path

	if path != RouteLibrary {
		a.library = nil
		return nil
	}

	lib := NewLibraryModel(a.books, a.styles)
	lib.SetSize(a.width, a.height)
	a.library = &lib

	return textinput.Blink
}

func (a App) View() string {
	var page string

	switch a.route {
	case RouteLibrary:
		page = a.library.View()
	default:
		page = a.home.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		renderNav(a.route, a.styles),
		"",
		page,
	)
}
