// Package layout renders the document shell shared by every page.
package layout

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"maniac.dev/waitlist-web/internal/nav"
	"maniac.dev/waitlist-web/internal/site"
	"maniac.dev/waitlist-web/internal/transition"
	"maniac.dev/waitlist-web/public"
)

// Lang is the document language attribute.
const Lang = "en"

// Options adjusts attribute values of the shell; the structure never changes.
type Options struct {
	// Stylesheet is the href of the global stylesheet. Defaults to public.StylesheetPath.
	Stylesheet string
	// Canonical is the absolute URL of the current page. Empty omits canonical tags.
	Canonical string
	// CurrentPath highlights the matching navigation item.
	CurrentPath string
}

// RootLayout wraps children in the document shell: a transition boundary around
// html[lang=en] > body > [nav, children].
func RootLayout(children templ.Component, opts Options) templ.Component {
	if opts.Stylesheet == "" {
		opts.Stylesheet = public.StylesheetPath
	}
	return transition.Boundary(document(children, opts))
}

func document(children templ.Component, opts Options) templ.Component {
	meta := site.Default()
	navigation := nav.Component(nav.Build(opts.CurrentPath))
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="`+Lang+`"><head>`+
			`<meta charset="utf-8">`+
			`<meta name="viewport" content="width=device-width, initial-scale=1">`); err != nil {
			return err
		}
		if err := meta.HeadTags(opts.Canonical).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<link rel="stylesheet" href="`+templ.EscapeString(opts.Stylesheet)+`">`); err != nil {
			return err
		}
		if err := transition.Head().Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</head><body>`); err != nil {
			return err
		}
		if err := navigation.Render(ctx, w); err != nil {
			return err
		}
		if children != nil {
			if err := children.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}
