package nav

import (
	"bytes"
	"context"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestBuildActiveState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path   string
		active string
	}{
		{path: "", active: "/"},
		{path: "/", active: "/"},
		{path: "/about", active: "/about"},
		{path: "/about/", active: "/about"},
		{path: "/about/team", active: "/about"},
		{path: "//faq", active: "/faq"},
		{path: "/aboutus", active: ""},
		{path: "/unknown", active: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.path, func(t *testing.T) {
			t.Parallel()

			items := Build(tc.path)
			require.Len(t, items, len(Main))
			var active []string
			for _, it := range items {
				if it.Active {
					active = append(active, it.Href)
				}
			}
			if tc.active == "" {
				require.Empty(t, active)
				return
			}
			require.Equal(t, []string{tc.active}, active)
		})
	}
}

func TestComponentHighlightsCurrentPage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Component(Build("/faq")).Render(context.Background(), &buf))

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	require.Equal(t, 1, doc.Find("nav").Length())
	require.Equal(t, "Primary", doc.Find("nav").AttrOr("aria-label", ""))
	require.Equal(t, "Maniac", doc.Find("a.nav__brand").Text())
	require.Equal(t, len(Main), doc.Find("ul.nav__items a").Length())

	faq := doc.Find(`ul.nav__items a[href="/faq"]`)
	require.Equal(t, "page", faq.AttrOr("aria-current", ""))
	require.Contains(t, faq.AttrOr("class", ""), "nav__link--active")

	home := doc.Find(`ul.nav__items a[href="/"]`)
	_, hasCurrent := home.Attr("aria-current")
	require.False(t, hasCurrent)
}
