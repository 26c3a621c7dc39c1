// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pollsite/bios"
	"github.com/danielhkuo/pollsite/logging"
	"github.com/danielhkuo/pollsite/models"
)

//go:embed templates/*.html
var templateFS embed.FS

type PageHandler struct {
	bios      *bios.Directory
	templates *template.Template
}

// NewPageHandler parses the embedded page templates once
func NewPageHandler(dir *bios.Directory) (*PageHandler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &PageHandler{bios: dir, templates: tmpl}, nil
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, "home.html", nil)
}

// Staff handles GET /staff
func (h *PageHandler) Staff(w http.ResponseWriter, r *http.Request) {
	h.render(w, "staff.html", models.StaffPage{People: h.bios.Names()})
}

// StaffMember handles GET /staff/{name}.
// Unknown names render the plain staff list.
func (h *PageHandler) StaffMember(w http.ResponseWriter, r *http.Request) {
	page := models.StaffPage{People: h.bios.Names()}

	name := r.PathValue("name")
	if bio, ok := h.bios.Lookup(name); ok {
		page.Name = name
		page.Bio = bio
	}

	h.render(w, "staff.html", page)
}

// Contact handles GET /contact
func (h *PageHandler) Contact(w http.ResponseWriter, r *http.Request) {
	h.render(w, "contact.html", nil)
}

// render executes into a buffer so a failed render never sends a partial page
func (h *PageHandler) render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("failed to render page", "template", name, logging.Err(err))
		http.Error(w, "Problem rendering page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}
