package site

import "encoding/json"

// WebSite returns a minimal schema.org WebSite payload. url may be empty.
func (m Metadata) WebSite(url string) map[string]any {
	s := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"name":        m.Title,
		"description": m.Description,
	}
	if url != "" {
		s["url"] = url
	}
	return s
}

// JSON marshals v to a compact JSON string safe for embedding in a script element.
// It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
