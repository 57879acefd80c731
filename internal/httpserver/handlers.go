package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	custommw "maniac.dev/waitlist-web/internal/httpserver/middleware"
	"maniac.dev/waitlist-web/internal/layout"
	"maniac.dev/waitlist-web/internal/observability"
	"maniac.dev/waitlist-web/internal/pages"
)

type handlers struct {
	pages   *pages.Store
	baseURL string
}

func newHandlers(store *pages.Store, baseURL string) *handlers {
	return &handlers{pages: store, baseURL: baseURL}
}

// Home renders the index page.
func (h *handlers) Home(w http.ResponseWriter, r *http.Request) {
	h.renderSlug(w, r, pages.IndexSlug)
}

// Page renders the page named by the {slug} route parameter.
func (h *handlers) Page(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	lower := strings.ToLower(slug)
	if lower == pages.IndexSlug {
		// the index page lives at "/" only
		h.NotFound(w, r)
		return
	}
	if lower != slug {
		if _, err := h.pages.Get(lower); err != nil {
			h.NotFound(w, r)
			return
		}
		target := "/" + lower
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, target, http.StatusMovedPermanently)
		return
	}
	h.renderSlug(w, r, slug)
}

// NotFound renders the not-found page inside the root layout.
func (h *handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, pages.NotFound(), http.StatusNotFound)
}

func (h *handlers) renderSlug(w http.ResponseWriter, r *http.Request, slug string) {
	page, err := h.pages.Get(slug)
	if errors.Is(err, pages.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	if err != nil {
		observability.FromContext(r.Context()).Error("page lookup failed", zap.String("slug", slug), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	h.render(w, r, page, http.StatusOK)
}

func (h *handlers) render(w http.ResponseWriter, r *http.Request, page pages.Page, status int) {
	path := custommw.RequestPathFromContext(r.Context())
	if status == http.StatusOK {
		path = pagePath(page)
	}
	opts := layout.Options{CurrentPath: path}
	if h.baseURL != "" && status == http.StatusOK {
		opts.Canonical = h.baseURL + path
	}

	component := layout.RootLayout(page.Component(), opts)
	templ.Handler(component,
		templ.WithStatus(status),
		templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
			observability.FromContext(r.Context()).Error("render failed", zap.String("slug", page.Slug), zap.Error(err))
			return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			})
		}),
	).ServeHTTP(w, r)
}

// pagePath is the one URL a stored page is served under.
func pagePath(page pages.Page) string {
	if page.Slug == pages.IndexSlug {
		return "/"
	}
	return "/" + page.Slug
}
