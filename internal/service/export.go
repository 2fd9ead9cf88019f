package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pkordes/fyyur/internal/domain"
	"github.com/pkordes/fyyur/internal/repo"
)

// ExportService assembles a flat export of every show with its venue and artist.
type ExportService struct {
	shows repo.ShowRepo
	now   Clock
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(shows repo.ShowRepo) *ExportService {
	return &ExportService{shows: shows, now: time.Now}
}

// WithClock replaces the clock used to label rows past or upcoming.
func (s *ExportService) WithClock(now Clock) *ExportService {
	s.now = now
	return s
}

// Export returns one ExportRow per show, ordered by start time.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	now := s.now()

	listings, err := s.shows.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := make([]domain.ExportRow, 0, len(listings))
	for _, l := range listings {
		rows = append(rows, domain.ExportRow{
			ShowID:     l.ShowID,
			StartTime:  l.StartTime.UTC().Format(time.RFC3339),
			Status:     showStatus(l.StartTime, now),
			VenueID:    l.VenueID,
			VenueName:  l.VenueName,
			ArtistID:   l.ArtistID,
			ArtistName: l.ArtistName,
		})
	}
	return rows, nil
}

func showStatus(start, now time.Time) string {
	switch {
	case start.Before(now):
		return domain.StatusPast
	case start.After(now):
		return domain.StatusUpcoming
	default:
		return ""
	}
}
