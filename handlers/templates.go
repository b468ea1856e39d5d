// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quiz-funnel/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

// pages is parsed once at init; a broken template is a programming
// error and should fail fast.
var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// renderPage executes a template into a buffer first so a render
// failure can still become a clean 500 instead of a half-written page.
func renderPage(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("failed to render template", "error", err, "template", name)
		middleware.HTTPError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}
