package view

import (
	"context"
	"strings"

	"github.com/a-h/templ"

	"github.com/pkordes/fyyur/internal/domain"
)

// Venues lists venues grouped by city and state.
func Venues(areas []domain.VenueArea) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw("<h1>Venues</h1>")
		searchForm(h, "/venues/search", "Find a venue")
		if len(areas) == 0 {
			h.raw("<p>No venues listed yet.</p>")
		}
		for _, area := range areas {
			h.raw("<section><h2>")
			h.text(area.City + ", " + area.State)
			h.raw("</h2>")
			summaryList(h, "/venues/", area.Venues)
			h.raw("</section>")
		}
	})
}

// Artists lists every artist.
func Artists(artists []domain.Summary) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw("<h1>Artists</h1>")
		searchForm(h, "/artists/search", "Find an artist")
		summaryList(h, "/artists/", artists)
	})
}

// SearchResults renders a name search. basePath is "/venues/" or "/artists/".
func SearchResults(basePath string, result domain.SearchResult) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw("<h1>")
		h.text(plural(result.Count, "result", "results") + ` for "` + result.Term + `"`)
		h.raw("</h1>")
		summaryList(h, basePath, result.Results)
	})
}

// Shows lists every show with both sides.
func Shows(listings []domain.ShowListing) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<h1>Shows</h1><p><a href="/shows/export?format=csv">CSV</a> <a href="/shows/export?format=xlsx">Excel</a></p><ul class="shows">`)
		for _, l := range listings {
			h.raw("<li>")
			image(h, l.ArtistImageLink, l.ArtistName)
			h.raw("<a")
			h.href("/artists/" + itoa(l.ArtistID))
			h.raw(">")
			h.text(l.ArtistName)
			h.raw("</a> at <a")
			h.href("/venues/" + itoa(l.VenueID))
			h.raw(">")
			h.text(l.VenueName)
			h.raw("</a> <time")
			h.attr("datetime", l.StartTime.UTC().Format("2006-01-02T15:04:05Z07:00"))
			h.raw(">")
			h.text(l.StartTimeText)
			h.raw("</time>")
			deleteButton(h, "/shows/"+itoa(l.ShowID)+"/delete", "Cancel show")
			h.raw("</li>")
		}
		h.raw("</ul>")
	})
}

// VenueDetail is the venue page.
func VenueDetail(d domain.VenueDetail) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw("<article><h1>")
		h.text(d.Name)
		h.raw("</h1>")
		genreList(h, d.Genres)
		h.raw("<dl>")
		definition(h, "Address", d.Address)
		definition(h, "City", d.City+", "+d.State)
		definition(h, "Phone", d.Phone)
		link(h, "Website", d.Website)
		link(h, "Facebook", d.FacebookLink)
		h.raw("</dl>")
		seeking(h, d.SeekingTalent, "Seeking talent", d.SeekingDescription)
		image(h, d.ImageLink, d.Name)

		venueShows(h, "Upcoming shows", d.UpcomingShowsCount, d.UpcomingShows)
		venueShows(h, "Past shows", d.PastShowsCount, d.PastShows)

		path := "/venues/" + itoa(d.ID)
		h.raw("<p><a")
		h.href(path + "/edit")
		h.raw(">Edit</a></p>")
		deleteButton(h, path+"/delete", "Delete venue")
		h.raw("</article>")
	})
}

// ArtistDetail is the artist page.
func ArtistDetail(d domain.ArtistDetail) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw("<article><h1>")
		h.text(d.Name)
		h.raw("</h1>")
		genreList(h, d.Genres)
		h.raw("<dl>")
		definition(h, "City", d.City+", "+d.State)
		definition(h, "Phone", d.Phone)
		link(h, "Website", d.Website)
		link(h, "Facebook", d.FacebookLink)
		h.raw("</dl>")
		seeking(h, d.SeekingVenue, "Seeking performance venues", d.SeekingDescription)
		image(h, d.ImageLink, d.Name)

		artistShows(h, "Upcoming shows", d.UpcomingShowsCount, d.UpcomingShows)
		artistShows(h, "Past shows", d.PastShowsCount, d.PastShows)

		path := "/artists/" + itoa(d.ID)
		h.raw("<p><a")
		h.href(path + "/edit")
		h.raw(">Edit</a></p>")
		deleteButton(h, path+"/delete", "Delete artist")
		h.raw("</article>")
	})
}

func summaryList(h *htmlWriter, basePath string, items []domain.Summary) {
	h.raw("<ul>")
	for _, s := range items {
		h.raw("<li><a")
		h.href(basePath + itoa(s.ID))
		h.raw(">")
		h.text(s.Name)
		h.raw("</a> <small>")
		h.text(plural(s.UpcomingShowCount, "upcoming show", "upcoming shows"))
		h.raw("</small></li>")
	}
	h.raw("</ul>")
}

func venueShows(h *htmlWriter, heading string, count int, shows []domain.VenueShow) {
	h.raw("<section><h2>")
	h.text(plural(count, strings.TrimSuffix(heading, "s"), heading))
	h.raw("</h2><ul>")
	for _, s := range shows {
		h.raw("<li>")
		image(h, s.ArtistImageLink, s.ArtistName)
		h.raw("<a")
		h.href("/artists/" + itoa(s.ArtistID))
		h.raw(">")
		h.text(s.ArtistName)
		h.raw("</a> <span>")
		h.text(s.StartTimeText)
		h.raw("</span></li>")
	}
	h.raw("</ul></section>")
}

func artistShows(h *htmlWriter, heading string, count int, shows []domain.ArtistShow) {
	h.raw("<section><h2>")
	h.text(plural(count, strings.TrimSuffix(heading, "s"), heading))
	h.raw("</h2><ul>")
	for _, s := range shows {
		h.raw("<li>")
		image(h, s.VenueImageLink, s.VenueName)
		h.raw("<a")
		h.href("/venues/" + itoa(s.VenueID))
		h.raw(">")
		h.text(s.VenueName)
		h.raw("</a> <span>")
		h.text(s.StartTimeText)
		h.raw("</span></li>")
	}
	h.raw("</ul></section>")
}

func genreList(h *htmlWriter, genres []string) {
	if len(genres) == 0 {
		return
	}
	h.raw(`<ul class="genres">`)
	for _, g := range genres {
		h.raw("<li>")
		h.text(g)
		h.raw("</li>")
	}
	h.raw("</ul>")
}

func definition(h *htmlWriter, term, value string) {
	if strings.TrimSpace(strings.Trim(value, ",")) == "" {
		return
	}
	h.raw("<dt>")
	h.text(term)
	h.raw("</dt><dd>")
	h.text(value)
	h.raw("</dd>")
}

func link(h *htmlWriter, term, url string) {
	if url == "" {
		return
	}
	h.raw("<dt>")
	h.text(term)
	h.raw("</dt><dd><a")
	h.href(url)
	h.raw(` rel="noopener">`)
	h.text(url)
	h.raw("</a></dd>")
}

func seeking(h *htmlWriter, on bool, label, description string) {
	if !on {
		h.raw(`<p class="seeking">Not currently `)
		h.text(strings.ToLower(label))
		h.raw("</p>")
		return
	}
	h.raw(`<p class="seeking">`)
	h.text(label)
	h.raw("</p>")
	if description != "" {
		h.raw("<blockquote>")
		h.text(description)
		h.raw("</blockquote>")
	}
}

func image(h *htmlWriter, url, alt string) {
	if url == "" {
		return
	}
	h.raw("<img")
	h.src(url)
	h.attr("alt", alt)
	h.raw(">")
}

func deleteButton(h *htmlWriter, action, label string) {
	h.raw(`<form method="post"`)
	h.attr("action", action)
	h.raw(`><button type="submit">`)
	h.text(label)
	h.raw("</button></form>")
}
