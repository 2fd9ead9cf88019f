package domain

import "time"

// Show links one artist to one venue at a start time.
// Whether a show is past or upcoming is derived at query time and never stored.
type Show struct {
	ID        int64     `json:"id"`
	StartTime time.Time `json:"start_time"`
	ArtistID  int64     `json:"artist_id"`
	VenueID   int64     `json:"venue_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ShowListing is a show joined with both of its owners.
// It is the row shape shared by the shows page, the detail pages, and the export.
type ShowListing struct {
	ShowID          int64
	StartTime       time.Time
	StartTimeText   string // filled by the service; empty when read straight from the repo
	VenueID         int64
	VenueName       string
	VenueImageLink  string
	ArtistID        int64
	ArtistName      string
	ArtistImageLink string
}

// Summary is the short form of a venue or artist used by list and search pages.
type Summary struct {
	ID                int64
	Name              string
	UpcomingShowCount int
}

// SearchResult is the read-model for a name search.
type SearchResult struct {
	Term    string
	Count   int
	Results []Summary
}

// ShowFormChoices lists the artists and venues a new show can reference.
type ShowFormChoices struct {
	Artists []Summary
	Venues  []Summary
}
