package view

import (
	"context"

	"github.com/a-h/templ"

	"github.com/pkordes/fyyur/internal/flash"
)

// Layout wraps the children in the site chrome. A pending notice is shown
// above the content.
func Layout(title string, notice *flash.Notice) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw("<!doctype html>\n<html lang=\"en\"><head><meta charset=\"utf-8\">")
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw("<title>")
		h.text(title)
		h.raw(" | Fyyur</title></head><body>")
		h.raw(`<nav><a href="/">Fyyur</a> <a href="/venues">Venues</a> <a href="/artists">Artists</a> <a href="/shows">Shows</a>`)
		h.raw(` <a href="/venues/create">List a venue</a> <a href="/artists/create">List an artist</a> <a href="/shows/create">Post a show</a></nav>`)
		if notice != nil {
			h.raw(`<div role="alert"`)
			h.attr("class", "flash flash-"+string(notice.Kind))
			h.raw(">")
			h.text(notice.Message)
			h.raw("</div>")
		}
		// Read the children before clearing them; both share one context value.
		children := templ.GetChildren(ctx)
		h.raw("<main>")
		h.render(templ.ClearChildren(ctx), children)
		h.raw("</main></body></html>")
	})
}

// Home is the landing page.
func Home() templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw("<h1>Fyyur</h1><p>Find venues, artists and shows near you.</p>")
		searchForm(h, "/venues/search", "Find a venue")
		searchForm(h, "/artists/search", "Find an artist")
	})
}

// ErrorPage renders a status page, e.g. 404 or 500.
func ErrorPage(status int, message string) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw("<h1>")
		h.text(itoa(int64(status)))
		h.raw("</h1><p>")
		h.text(message)
		h.raw(`</p><p><a href="/">Back home</a></p>`)
	})
}

func searchForm(h *htmlWriter, action, placeholder string) {
	h.raw(`<form method="post"`)
	h.attr("action", action)
	h.raw(`><input type="search" name="search_term"`)
	h.attr("placeholder", placeholder)
	h.raw(`><button type="submit">Search</button></form>`)
}
