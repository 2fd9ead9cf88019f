package domain

// ExportRow is a single row in the shows export.
// It is a flat, denormalized view: one row per show, with the venue and
// artist names repeated on every row that references them.
//
// Status is "past" or "upcoming" relative to the instant the export was
// built, and empty for a show starting exactly at that instant.
type ExportRow struct {
	ShowID    int64
	StartTime string // RFC 3339, UTC
	Status    string

	VenueID   int64
	VenueName string

	ArtistID   int64
	ArtistName string
}

// Show status labels used by the export.
const (
	StatusPast     = "past"
	StatusUpcoming = "upcoming"
)
