package public

import (
	"embed"
	"io/fs"
)

// StylesheetPath is the URL of the global stylesheet linked from every document.
const StylesheetPath = "/public/static/globals.css"

//go:embed static/*
var static embed.FS

// StaticFS returns the embedded static assets rooted at static/.
func StaticFS() (fs.FS, error) {
	return fs.Sub(static, "static")
}
