package http

import (
	"embed"
	"html/template"
	"math"
	"strings"
	"unicode/utf8"

	"catalog-console/internal/console/view"
)

//go:embed templates/*.html
var templateFS embed.FS

const titleLimit = 16

// Templates parses the page templates with their helper functions.
func Templates() (*template.Template, error) {
	return template.New("pages").Funcs(template.FuncMap{
		"truncate":   truncate,
		"stars":      stars,
		"detailPath": view.DetailPath,
	}).ParseFS(templateFS, "templates/*.html")
}

// truncate shortens s to n runes followed by "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}

// stars renders one star per whole rating point.
func stars(rating float64) string {
	n := int(math.Floor(rating))
	if n < 0 {
		n = 0
	}
	return strings.Repeat("★", n)
}
