package nav

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Item represents a top-level navigation item.
type Item struct {
	Href  string // e.g. "/about"
	Label string
}

// RenderedItem is a view model for the nav component.
type RenderedItem struct {
	Href   string
	Label  string
	Active bool
}

// Brand is the leading home link of the navigation bar.
var Brand = Item{Href: "/", Label: "Maniac"}

// Main is the primary navigation definition.
var Main = []Item{
	{Href: "/", Label: "Waitlist"},
	{Href: "/about", Label: "About"},
	{Href: "/faq", Label: "FAQ"},
}

// Build renders navigation items with active state given the current path.
func Build(currentPath string) []RenderedItem {
	currentPath = normalizePath(currentPath)
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:   it.Href,
			Label:  it.Label,
			Active: isActive(it.Href, currentPath),
		})
	}
	return items
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	// match exact or prefix boundary: "/about" or "/about/..."
	return currentPath == itemPath || strings.HasPrefix(currentPath, itemPath+"/")
}

func normalizePath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}

// Component renders the primary navigation bar.
func Component(items []RenderedItem) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<nav class="nav" aria-label="Primary">`)
		b.WriteString(`<a class="nav__brand" href="` + templ.EscapeString(Brand.Href) + `">` + templ.EscapeString(Brand.Label) + `</a>`)
		b.WriteString(`<ul class="nav__items">`)
		for _, it := range items {
			b.WriteString(`<li><a class="nav__link`)
			if it.Active {
				b.WriteString(` nav__link--active" aria-current="page`)
			}
			b.WriteString(`" href="` + templ.EscapeString(it.Href) + `">` + templ.EscapeString(it.Label) + `</a></li>`)
		}
		b.WriteString(`</ul></nav>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}
