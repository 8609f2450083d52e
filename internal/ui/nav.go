package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	RouteHome    = "/"
	RouteLibrary = "/library"
)

type NavLink struct {
	Label  string
	Path   string
	Key    string
	Active bool
}

// NavLinks marks a link active only when its path is exactly the current one.
func NavLinks(current string) []NavLink {
	links := []NavLink{
		{Label: "Home", Path: RouteHome, Key: "f1"},
		{Label: "My Books", Path: RouteLibrary, Key: "f2"},
	}

	for i := range links {
		links[i].Active = links[i].Path == current
	}

	return links
}

func knownRoute(path string) bool {
	return path == RouteHome || path == RouteLibrary
}

func renderNav(current string, styles Styles) string {
	logo := styles.Logo.Render("📜 Library of ") + styles.Highlight.Render("Alexander")

	var links []string
	for _, link := range NavLinks(current) {
		label := link.Label + " " + styles.Muted.Render("("+strings.ToUpper(link.Key)+")")
		if link.Active {
			links = append(links, styles.NavActive.Render(label))
			continue
		}
		links = append(links, styles.NavLink.Render(label))
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, logo, "    ", lipgloss.JoinHorizontal(lipgloss.Center, links...))
}
