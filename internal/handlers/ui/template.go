package ui

import (
	"embed"
	"html/template"
	"regexp"
	"strings"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

const indexTemplate = "index.tmpl"

var boldPattern = regexp.MustCompile(`\*\*(.+?)\*\*`)

// ParseTemplates loads the page templates with the report renderer attached.
func ParseTemplates() (*template.Template, error) {
	return template.New("").
		Funcs(template.FuncMap{"renderReport": renderReport}).
		ParseFS(templatesFS, "templates/*.tmpl")
}

// renderReport escapes the report, then turns **bold** spans and newlines into markup.
func renderReport(report string) template.HTML {
	escaped := template.HTMLEscapeString(report)
	escaped = boldPattern.ReplaceAllString(escaped, "<strong>$1</strong>")
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")
	return template.HTML(escaped) //nolint:gosec // input escaped above
}
