// Package domain contains the core data types for the Fyyur booking directory.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler, view).
package domain

import "time"

// Venue is a place that hosts shows.
// Genres is the decoded tag list; the bracketed storage form never leaves the repo.
type Venue struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Address            string    `json:"address"`
	Phone              string    `json:"phone,omitempty"`
	ImageLink          string    `json:"image_link,omitempty"`
	FacebookLink       string    `json:"facebook_link,omitempty"`
	Website            string    `json:"website,omitempty"`
	Genres             []string  `json:"genres"`
	SeekingTalent      bool      `json:"seeking_talent"`
	SeekingDescription string    `json:"seeking_description,omitempty"` // only meaningful when SeekingTalent is true
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// VenueArea groups the venues that share one (city, state) pair.
type VenueArea struct {
	City   string
	State  string
	Venues []Summary
}

// VenueShow is a show as seen from a venue page: the performing artist plus the start time.
type VenueShow struct {
	ShowID          int64
	ArtistID        int64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
	StartTimeText   string
}

// VenueDetail is the venue page read-model.
// A show starting exactly at the evaluation instant is in neither list.
type VenueDetail struct {
	Venue
	PastShows          []VenueShow
	UpcomingShows      []VenueShow
	PastShowsCount     int
	UpcomingShowsCount int
}
