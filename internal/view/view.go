// Package view renders the whole UI server-side from html/template blocks.
// Every handler ends by rendering the full page for the current state; the
// fragment renderers serve the dropdown and badge endpoints.
package view

import (
	"bytes"
	"embed"
	"html/template"
	"io"

	"skybook/pkg/bookingclient"
	"skybook/pkg/logger"
)

//go:embed static
var Static embed.FS

// Renderer holds the parsed template set. Construct once at startup; Parse
// failures are programming errors and surface immediately.
type Renderer struct {
	tmpl   *template.Template
	logger logger.Client
}

func New(l logger.Client) (*Renderer, error) {
	tmpl, err := template.New("skybook").Parse(templateText)
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl, logger: l}, nil
}

// Page renders the full document. The template executes into a buffer first
// so a failing section never leaves a half-written response; on failure the
// caller gets the inline error panel instead.
func (r *Renderer) Page(w io.Writer, data PageData) error {
	return r.section(w, "page", data)
}

// NotificationList renders the dropdown body fragment.
func (r *Renderer) NotificationList(w io.Writer, notifications []bookingclient.Notification) error {
	return r.section(w, "notif_list", NewNotifItems(notifications))
}

func (r *Renderer) section(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		r.logger.Error("render failed",
			logger.Field{Key: "template", Value: name},
			logger.Field{Key: "error", Value: err.Error()},
		)
		return r.tmpl.ExecuteTemplate(w, "error_panel", nil)
	}
	_, err := buf.WriteTo(w)
	return err
}
