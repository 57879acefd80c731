package pages

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

// IndexSlug names the page served at "/".
const IndexSlug = "index"

// ErrNotFound is returned when no page exists for a slug.
var ErrNotFound = errors.New("pages: not found")

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Page is a rendered content page placed inside the root layout.
type Page struct {
	Slug    string
	Title   string
	Summary string
	// HTML is the sanitized body markup.
	HTML string
}

type frontMatter struct {
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
}

// Store holds pages parsed at startup. It is read-only after Load and safe for concurrent use.
type Store struct {
	pages map[string]Page
}

// Load parses every *.md file under dir in fsys. Files may start with a YAML front matter
// block delimited by "---" lines.
func Load(fsys fs.FS, dir string) (*Store, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("pages: read %s: %w", dir, err)
	}

	md := goldmark.New(goldmark.WithExtensions(extension.GFM, extension.Typographer))
	policy := bluemonday.UGCPolicy()

	store := &Store{pages: make(map[string]Page, len(entries))}
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".md" {
			continue
		}
		slug := strings.TrimSuffix(entry.Name(), ".md")
		if !slugPattern.MatchString(slug) {
			return nil, fmt.Errorf("pages: %s: invalid slug %q", entry.Name(), slug)
		}
		raw, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("pages: %s: %w", entry.Name(), err)
		}
		page, err := parse(md, policy, slug, raw)
		if err != nil {
			return nil, fmt.Errorf("pages: %s: %w", entry.Name(), err)
		}
		store.pages[slug] = page
	}
	return store, nil
}

func parse(md goldmark.Markdown, policy *bluemonday.Policy, slug string, raw []byte) (Page, error) {
	meta, body, err := splitFrontMatter(raw)
	if err != nil {
		return Page{}, err
	}
	var fm frontMatter
	if len(meta) > 0 {
		if err := yaml.Unmarshal(meta, &fm); err != nil {
			return Page{}, fmt.Errorf("front matter: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := md.Convert(body, &buf); err != nil {
		return Page{}, fmt.Errorf("markdown: %w", err)
	}

	title := strings.TrimSpace(fm.Title)
	if title == "" {
		title = titleFromSlug(slug)
	}
	return Page{
		Slug:    slug,
		Title:   title,
		Summary: strings.TrimSpace(fm.Summary),
		HTML:    string(policy.SanitizeBytes(buf.Bytes())),
	}, nil
}

func splitFrontMatter(raw []byte) (meta, body []byte, err error) {
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	normalized := bytes.ReplaceAll(raw, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(normalized, []byte("---\n")) {
		return nil, normalized, nil
	}
	rest := normalized[len("---\n"):]
	end := bytes.Index(rest, []byte("\n---"))
	if end < 0 {
		return nil, nil, errors.New("front matter: missing closing delimiter")
	}
	meta = rest[:end]
	body = rest[end+len("\n---"):]
	body = bytes.TrimPrefix(body, []byte("\n"))
	return meta, body, nil
}

// Get returns the page registered for slug.
func (s *Store) Get(slug string) (Page, error) {
	slug = strings.ToLower(slug)
	if s == nil || !slugPattern.MatchString(slug) {
		return Page{}, ErrNotFound
	}
	page, ok := s.pages[slug]
	if !ok {
		return Page{}, ErrNotFound
	}
	return page, nil
}

// Slugs lists every loaded page slug in sorted order.
func (s *Store) Slugs() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.pages))
	for slug := range s.pages {
		out = append(out, slug)
	}
	sort.Strings(out)
	return out
}

// Component renders the page as layout children.
func (p Page) Component() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<main class="page" id="page-` + templ.EscapeString(p.Slug) + `">`)
		b.WriteString(`<h1>` + templ.EscapeString(p.Title) + `</h1>`)
		if p.Summary != "" {
			b.WriteString(`<p class="page__summary">` + templ.EscapeString(p.Summary) + `</p>`)
		}
		b.WriteString(p.HTML)
		b.WriteString(`</main>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// NotFound is the page rendered for unknown paths.
func NotFound() Page {
	return Page{
		Slug:    "not-found",
		Title:   "Page not found",
		Summary: "The room you are looking for does not exist.",
		HTML:    `<p><a href="/">Back to the waitlist</a></p>`,
	}
}

func titleFromSlug(slug string) string {
	s := strings.ReplaceAll(slug, "-", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
