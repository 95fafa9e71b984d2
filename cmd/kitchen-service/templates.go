package main

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageTemplates parses the embedded pages once at startup; handlers only
// execute them.
func pageTemplates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}
