// Package site holds the document-level metadata shared by every page.
package site

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const (
	title       = "Maniac | Waitlist Room"
	description = "Agents that see into your future."
)

// OpenGraph mirrors the metadata for link previews.
type OpenGraph struct {
	Title       string
	Description string
	Type        string
	URL         string
}

// Twitter mirrors the metadata for Twitter/X cards.
type Twitter struct {
	Card        string
	Title       string
	Description string
}

// Metadata is the head metadata record consumed when rendering the document shell.
type Metadata struct {
	Title       string
	Description string
}

// Default returns the site metadata. The value never varies between calls.
func Default() Metadata {
	return Metadata{
		Title:       title,
		Description: description,
	}
}

// OpenGraph derives Open Graph values from the metadata. url may be empty.
func (m Metadata) OpenGraph(url string) OpenGraph {
	return OpenGraph{
		Title:       m.Title,
		Description: m.Description,
		Type:        "website",
		URL:         url,
	}
}

// Twitter derives summary card values from the metadata.
func (m Metadata) Twitter() Twitter {
	return Twitter{
		Card:        "summary",
		Title:       m.Title,
		Description: m.Description,
	}
}

// HeadTags renders <title> and the description/social meta tags. canonical may be empty,
// in which case no canonical link or og:url is emitted.
func (m Metadata) HeadTags(canonical string) templ.Component {
	og := m.OpenGraph(canonical)
	tw := m.Twitter()
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<title>"+templ.EscapeString(m.Title)+"</title>"); err != nil {
			return err
		}
		tags := []struct{ attr, key, value string }{
			{"name", "description", m.Description},
			{"property", "og:title", og.Title},
			{"property", "og:description", og.Description},
			{"property", "og:type", og.Type},
			{"property", "og:url", og.URL},
			{"name", "twitter:card", tw.Card},
			{"name", "twitter:title", tw.Title},
			{"name", "twitter:description", tw.Description},
		}
		for _, tag := range tags {
			if tag.value == "" {
				continue
			}
			if err := metaTag(w, tag.attr, tag.key, tag.value); err != nil {
				return err
			}
		}
		if canonical != "" {
			if _, err := io.WriteString(w, `<link rel="canonical" href="`+templ.EscapeString(canonical)+`">`); err != nil {
				return err
			}
		}
		if ld := JSON(m.WebSite(canonical)); ld != "" {
			// encoding/json escapes <, > and &, so the payload cannot close the script element
			if _, err := io.WriteString(w, `<script type="application/ld+json">`+ld+`</script>`); err != nil {
				return err
			}
		}
		return nil
	})
}

func metaTag(w io.Writer, attr, key, value string) error {
	_, err := io.WriteString(w, `<meta `+attr+`="`+key+`" content="`+templ.EscapeString(value)+`">`)
	return err
}
