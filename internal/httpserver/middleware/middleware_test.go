package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func TestAssetsWithCache(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"globals.css": {Data: []byte("body{margin:0}")},
	}
	handler, err := AssetsWithCache(fsys, "/public/static/")
	require.NoError(t, err)

	t.Run("serves file with cache headers", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/public/static/globals.css", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		require.Equal(t, "body{margin:0}", rr.Body.String())
		require.Contains(t, rr.Header().Get("Content-Type"), "text/css")
		require.Contains(t, rr.Header().Get("Cache-Control"), "max-age=604800")
		require.Equal(t, "Accept-Encoding", rr.Header().Get("Vary"))
		require.True(t, strings.HasPrefix(rr.Header().Get("ETag"), `W/"`))
	})

	t.Run("matching etag returns 304", func(t *testing.T) {
		first := httptest.NewRecorder()
		handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/public/static/globals.css", nil))
		etag := first.Header().Get("ETag")

		req := httptest.NewRequest(http.MethodGet, "/public/static/globals.css", nil)
		req.Header.Set("If-None-Match", etag)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		require.Equal(t, http.StatusNotModified, rr.Code)
		require.Empty(t, rr.Body.String())
	})

	t.Run("if-none-match lists and wildcard", func(t *testing.T) {
		first := httptest.NewRecorder()
		handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/public/static/globals.css", nil))
		etag := first.Header().Get("ETag")
		strong := strings.TrimPrefix(etag, "W/")

		tests := []struct {
			name   string
			header string
			want   int
		}{
			{name: "list containing tag", header: `"stale", ` + etag, want: http.StatusNotModified},
			{name: "strong form of weak tag", header: strong, want: http.StatusNotModified},
			{name: "wildcard", header: "*", want: http.StatusNotModified},
			{name: "no match", header: `"stale", W/"other"`, want: http.StatusOK},
		}
		for _, tc := range tests {
			req := httptest.NewRequest(http.MethodGet, "/public/static/globals.css", nil)
			req.Header.Set("If-None-Match", tc.header)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			require.Equal(t, tc.want, rr.Code, tc.name)
		}
	})

	t.Run("missing file is 404", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/public/static/missing.css", nil))
		require.Equal(t, http.StatusNotFound, rr.Code)
		require.Empty(t, rr.Header().Get("ETag"))
	})
}

func TestRequestInfoMiddleware(t *testing.T) {
	t.Parallel()

	var path string
	handler := RequestInfoMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = RequestPathFromContext(r.Context())
		info, ok := RequestInfoFromContext(r.Context())
		require.True(t, ok)
		require.Equal(t, http.MethodGet, info.Method)
		_, _ = io.WriteString(w, "ok")
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/about", nil))
	require.Equal(t, "/about", path)

	require.Equal(t, "/", RequestPathFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}
