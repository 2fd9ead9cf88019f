package view

import (
	"context"
	"slices"

	"github.com/a-h/templ"

	"github.com/pkordes/fyyur/internal/domain"
)

// FormErrors maps a form field key to its message.
type FormErrors map[string]string

// genreChoices are the tags offered by the venue and artist forms.
var genreChoices = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk", "Funk",
	"Hip-Hop", "Heavy Metal", "Instrumental", "Jazz", "Musical Theatre", "Pop",
	"Punk", "R&B", "Reggae", "Rock n Roll", "Soul", "Swing", "Other",
}

// VenueForm renders the create or edit form for a venue, prefilled from f.
func VenueForm(heading, action string, f domain.VenueFields, errs FormErrors) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		formOpen(h, heading, action, errs)
		input(h, domain.FieldName, "Name", f.Name, errs)
		input(h, domain.FieldCity, "City", f.City, errs)
		input(h, domain.FieldState, "State", f.State, errs)
		input(h, domain.FieldAddress, "Address", f.Address, errs)
		input(h, domain.FieldPhone, "Phone", f.Phone, errs)
		genreSelect(h, f.Genres)
		input(h, domain.FieldImageLink, "Image link", f.ImageLink, errs)
		input(h, domain.FieldFacebookLink, "Facebook link", f.FacebookLink, errs)
		input(h, domain.FieldWebsite, "Website", f.Website, errs)
		seekingSelect(h, "Looking for talent", f.SeekingFlag)
		input(h, domain.FieldSeekingDescription, "Seeking description", f.SeekingDescription, errs)
		formClose(h)
	})
}

// ArtistForm renders the create or edit form for an artist, prefilled from f.
func ArtistForm(heading, action string, f domain.ArtistFields, errs FormErrors) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		formOpen(h, heading, action, errs)
		input(h, domain.FieldName, "Name", f.Name, errs)
		input(h, domain.FieldCity, "City", f.City, errs)
		input(h, domain.FieldState, "State", f.State, errs)
		input(h, domain.FieldPhone, "Phone", f.Phone, errs)
		genreSelect(h, f.Genres)
		input(h, domain.FieldImageLink, "Image link", f.ImageLink, errs)
		input(h, domain.FieldFacebookLink, "Facebook link", f.FacebookLink, errs)
		input(h, domain.FieldWebsite, "Website", f.Website, errs)
		seekingSelect(h, "Looking for venues", f.SeekingFlag)
		input(h, domain.FieldSeekingDescription, "Seeking description", f.SeekingDescription, errs)
		formClose(h)
	})
}

// ShowForm renders the new show form with artist and venue pickers.
func ShowForm(choices domain.ShowFormChoices, f domain.ShowFields, errs FormErrors) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		formOpen(h, "List a new show", "/shows/create", errs)
		picker(h, domain.FieldArtistID, "Artist", choices.Artists, f.ArtistID, errs)
		picker(h, domain.FieldVenueID, "Venue", choices.Venues, f.VenueID, errs)
		h.raw(`<label>Start time <input type="datetime-local"`)
		h.attr("name", domain.FieldStartTime)
		h.attr("value", f.StartTime)
		h.raw("></label>")
		fieldError(h, domain.FieldStartTime, errs)
		formClose(h)
	})
}

func formOpen(h *htmlWriter, heading, action string, errs FormErrors) {
	h.raw("<h1>")
	h.text(heading)
	h.raw("</h1>")
	if len(errs) > 0 {
		h.raw(`<p class="form-errors" role="alert">Please fix the highlighted fields.</p>`)
	}
	h.raw(`<form method="post"`)
	h.attr("action", action)
	h.raw(">")
}

func formClose(h *htmlWriter) {
	h.raw(`<button type="submit">Save</button></form>`)
}

func input(h *htmlWriter, name, label, value string, errs FormErrors) {
	h.raw("<label>")
	h.text(label)
	h.raw(` <input type="text"`)
	h.attr("name", name)
	h.attr("value", value)
	if _, bad := errs[name]; bad {
		h.raw(` aria-invalid="true"`)
	}
	h.raw("></label>")
	fieldError(h, name, errs)
}

func fieldError(h *htmlWriter, name string, errs FormErrors) {
	msg, ok := errs[name]
	if !ok {
		return
	}
	h.raw(`<span class="field-error">`)
	h.text(msg)
	h.raw("</span>")
}

func genreSelect(h *htmlWriter, selected []string) {
	h.raw(`<label>Genres <select multiple`)
	h.attr("name", domain.FieldGenres)
	h.raw(">")
	options := genreChoices
	// Keep tags that are not in the stock list so an edit does not drop them.
	for _, g := range selected {
		if !slices.Contains(options, g) {
			options = append(slices.Clone(options), g)
		}
	}
	for _, g := range options {
		h.raw("<option")
		h.attr("value", g)
		if slices.Contains(selected, g) {
			h.raw(" selected")
		}
		h.raw(">")
		h.text(g)
		h.raw("</option>")
	}
	h.raw("</select></label>")
}

func seekingSelect(h *htmlWriter, label, value string) {
	h.raw("<label>")
	h.text(label)
	h.raw(` <select`)
	h.attr("name", domain.FieldSeekingFlag)
	h.raw(">")
	for _, opt := range []string{"No", domain.SeekingYes} {
		h.raw("<option")
		h.attr("value", opt)
		if value == opt || (value != domain.SeekingYes && opt == "No") {
			h.raw(" selected")
		}
		h.raw(">")
		h.text(opt)
		h.raw("</option>")
	}
	h.raw("</select></label>")
}

func picker(h *htmlWriter, name, label string, items []domain.Summary, value string, errs FormErrors) {
	h.raw("<label>")
	h.text(label)
	h.raw(" <select")
	h.attr("name", name)
	h.raw(`><option value="">Choose…</option>`)
	for _, it := range items {
		id := itoa(it.ID)
		h.raw("<option")
		h.attr("value", id)
		if id == value {
			h.raw(" selected")
		}
		h.raw(">")
		h.text(it.Name + " (#" + id + ")")
		h.raw("</option>")
	}
	h.raw("</select></label>")
	fieldError(h, name, errs)
}
