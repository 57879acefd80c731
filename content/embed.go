// Package content embeds the Markdown pages rendered inside the root layout.
package content

import "embed"

// Dir is the directory inside FS that holds the pages.
const Dir = "pages"

//go:embed pages/*.md
var FS embed.FS
