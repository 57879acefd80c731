package layout_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"

	"maniac.dev/waitlist-web/internal/layout"
	"maniac.dev/waitlist-web/internal/testutil"
	"maniac.dev/waitlist-web/public"
)

func render(t *testing.T, c templ.Component) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.Bytes()
}

func TestRootLayoutShell(t *testing.T) {
	t.Parallel()

	children := templ.Raw(`<main id="content"><h1>Join the waitlist</h1></main>`)
	doc := testutil.ParseHTML(t, render(t, layout.RootLayout(children, layout.Options{CurrentPath: "/"})))

	require.Equal(t, "en", doc.Find("html").AttrOr("lang", ""))
	require.Equal(t, "Maniac | Waitlist Room", doc.Find("head title").Text())
	require.Equal(t, "Agents that see into your future.", doc.Find(`head meta[name="description"]`).AttrOr("content", ""))
	require.Equal(t, public.StylesheetPath, doc.Find(`head link[rel="stylesheet"]`).AttrOr("href", ""))
	require.Equal(t, "same-origin", doc.Find(`head meta[name="view-transition"]`).AttrOr("content", ""))

	body := doc.Find("body").Children()
	require.Equal(t, 2, body.Length(), "body holds the nav followed by the children")
	require.Equal(t, "nav", goquery.NodeName(body.Eq(0)))
	require.Equal(t, "content", body.Eq(1).AttrOr("id", ""))
	require.Equal(t, 1, doc.Find("nav").Length())
}

func TestRootLayoutPlacesAnyChildrenAfterNav(t *testing.T) {
	t.Parallel()

	tests := map[string]templ.Component{
		"text":            templ.Raw("plain text child"),
		"multiple":        templ.Raw(`<section class="a"></section><section class="b"></section>`),
		"nested nav-like": templ.Raw(`<div class="inner"><span>nav</span></div>`),
	}

	for name, children := range tests {
		children := children
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			out := render(t, layout.RootLayout(children, layout.Options{}))
			doc := testutil.ParseHTML(t, out)
			require.Equal(t, 1, doc.Find("nav").Length())

			childOut := render(t, children)
			navEnd := bytes.Index(out, []byte("</nav>"))
			childAt := bytes.Index(out, childOut)
			require.Greater(t, navEnd, 0)
			require.Greater(t, childAt, navEnd, "children must follow the nav verbatim")
		})
	}
}

func TestRootLayoutNilChildren(t *testing.T) {
	t.Parallel()

	doc := testutil.ParseHTML(t, render(t, layout.RootLayout(nil, layout.Options{})))
	require.Equal(t, 1, doc.Find("body").Children().Length())
	require.Equal(t, 1, doc.Find("body > nav").Length())
}

func TestRootLayoutIsIdempotent(t *testing.T) {
	t.Parallel()

	children := templ.Raw(`<main><p>same</p></main>`)
	opts := layout.Options{Canonical: "https://waitlist.maniac.dev/", CurrentPath: "/about"}

	first := render(t, layout.RootLayout(children, opts))
	second := render(t, layout.RootLayout(children, opts))
	require.Equal(t, first, second)

	c := layout.RootLayout(children, opts)
	require.Equal(t, render(t, c), render(t, c), "rendering the same component twice must match")
}

func TestRootLayoutOptions(t *testing.T) {
	t.Parallel()

	opts := layout.Options{
		Stylesheet:  "/assets/app.css",
		Canonical:   "https://waitlist.maniac.dev/faq",
		CurrentPath: "/faq",
	}
	doc := testutil.ParseHTML(t, render(t, layout.RootLayout(nil, opts)))

	require.Equal(t, "/assets/app.css", doc.Find(`link[rel="stylesheet"]`).AttrOr("href", ""))
	require.Equal(t, opts.Canonical, doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))
	require.Equal(t, "page", doc.Find(`nav a[href="/faq"]`).AttrOr("aria-current", ""))
}

func TestRootLayoutPropagatesWriterErrors(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	children := templ.ComponentFunc(func(context.Context, io.Writer) error { return errBoom })

	err := layout.RootLayout(children, layout.Options{}).Render(context.Background(), io.Discard)
	require.ErrorIs(t, err, errBoom)
}
