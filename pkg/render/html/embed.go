package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// TemplatesFS exposes the embedded template bundle.
func TemplatesFS() fs.FS {
	return templateFS
}
