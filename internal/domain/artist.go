package domain

import "time"

// Artist is a performer that plays shows at venues.
type Artist struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Phone              string    `json:"phone,omitempty"`
	ImageLink          string    `json:"image_link,omitempty"`
	FacebookLink       string    `json:"facebook_link,omitempty"`
	Website            string    `json:"website,omitempty"`
	Genres             []string  `json:"genres"`
	SeekingVenue       bool      `json:"seeking_venue"`
	SeekingDescription string    `json:"seeking_description,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ArtistShow is a show as seen from an artist page: the hosting venue plus the start time.
type ArtistShow struct {
	ShowID         int64
	VenueID        int64
	VenueName      string
	VenueImageLink string
	StartTime      time.Time
	StartTimeText  string
}

// ArtistDetail is the artist page read-model.
type ArtistDetail struct {
	Artist
	PastShows          []ArtistShow
	UpcomingShows      []ArtistShow
	PastShowsCount     int
	UpcomingShowsCount int
}
