// Package view renders the Fyyur HTML pages as templ components.
package view

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// htmlWriter accumulates the first write error so component bodies can emit
// markup without checking every call.
type htmlWriter struct {
	w   io.Writer
	err error
}

// raw writes trusted markup.
func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// text writes escaped text.
func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with the value escaped.
func (h *htmlWriter) attr(name, value string) {
	h.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// href writes an href attribute after URL sanitization.
func (h *htmlWriter) href(u string) {
	h.attr("href", string(templ.URL(u)))
}

func (h *htmlWriter) src(u string) {
	h.attr("src", string(templ.URL(u)))
}

func (h *htmlWriter) render(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

// component adapts a body function into a templ.Component.
func component(body func(ctx context.Context, h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		body(ctx, h)
		return h.err
	})
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return strconv.Itoa(n) + " " + one
	}
	return strconv.Itoa(n) + " " + many
}
