// Package service contains the business logic for the Fyyur directory.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pkordes/fyyur/internal/domain"
	"github.com/pkordes/fyyur/internal/repo"
)

// Clock returns the current instant. Tests substitute a fixed one.
type Clock func() time.Time

// QueryService builds the read-models rendered by the presentation layer.
// Every method is side-effect-free and samples the clock at most once, so a
// single page sees one consistent "now".
type QueryService struct {
	venues  repo.VenueRepo
	artists repo.ArtistRepo
	shows   repo.ShowRepo
	now     Clock
	loc     *time.Location
}

// NewQueryService constructs a QueryService backed by the provided repos.
// The clock defaults to time.Now and show times are displayed in UTC.
func NewQueryService(venues repo.VenueRepo, artists repo.ArtistRepo, shows repo.ShowRepo) *QueryService {
	return &QueryService{venues: venues, artists: artists, shows: shows, now: time.Now, loc: time.UTC}
}

// WithClock replaces the service clock and returns the service for chaining.
func (s *QueryService) WithClock(now Clock) *QueryService {
	s.now = now
	return s
}

// WithLocation sets the zone show times are displayed in. It should match
// the zone the mutation service parses submitted times in.
func (s *QueryService) WithLocation(loc *time.Location) *QueryService {
	s.loc = loc
	return s
}

// ListVenuesGroupedByLocation returns one area per distinct (city, state)
// pair, ordered by state then city. Venues keep the store's order inside
// their area.
func (s *QueryService) ListVenuesGroupedByLocation(ctx context.Context) ([]domain.VenueArea, error) {
	now := s.now()

	venues, err := s.venues.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.QueryService.ListVenuesGroupedByLocation: %w", err)
	}
	counts, err := s.shows.CountUpcomingByVenue(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("service.QueryService.ListVenuesGroupedByLocation: %w", err)
	}

	type key struct{ city, state string }
	index := make(map[key]int)
	areas := []domain.VenueArea{}
	for _, v := range venues {
		k := key{v.City, v.State}
		i, ok := index[k]
		if !ok {
			i = len(areas)
			index[k] = i
			areas = append(areas, domain.VenueArea{City: v.City, State: v.State, Venues: []domain.Summary{}})
		}
		areas[i].Venues = append(areas[i].Venues, domain.Summary{
			ID:                v.ID,
			Name:              v.Name,
			UpcomingShowCount: counts[v.ID],
		})
	}

	// Stable sort on the unique key: venue order inside an area is untouched.
	sort.SliceStable(areas, func(i, j int) bool {
		if areas[i].State != areas[j].State {
			return areas[i].State < areas[j].State
		}
		return areas[i].City < areas[j].City
	})
	return areas, nil
}

// SearchVenues returns venues whose name contains term, ignoring case.
// The term is trimmed; an empty term matches every venue.
func (s *QueryService) SearchVenues(ctx context.Context, term string) (domain.SearchResult, error) {
	now := s.now()
	term = strings.TrimSpace(term)

	venues, err := s.venues.Search(ctx, term)
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("service.QueryService.SearchVenues: %w", err)
	}
	counts, err := s.shows.CountUpcomingByVenue(ctx, now)
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("service.QueryService.SearchVenues: %w", err)
	}

	results := make([]domain.Summary, 0, len(venues))
	for _, v := range venues {
		results = append(results, domain.Summary{ID: v.ID, Name: v.Name, UpcomingShowCount: counts[v.ID]})
	}
	return domain.SearchResult{Term: term, Count: len(results), Results: results}, nil
}

// SearchArtists is SearchVenues for artists.
func (s *QueryService) SearchArtists(ctx context.Context, term string) (domain.SearchResult, error) {
	now := s.now()
	term = strings.TrimSpace(term)

	artists, err := s.artists.Search(ctx, term)
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("service.QueryService.SearchArtists: %w", err)
	}
	counts, err := s.shows.CountUpcomingByArtist(ctx, now)
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("service.QueryService.SearchArtists: %w", err)
	}

	results := make([]domain.Summary, 0, len(artists))
	for _, a := range artists {
		results = append(results, domain.Summary{ID: a.ID, Name: a.Name, UpcomingShowCount: counts[a.ID]})
	}
	return domain.SearchResult{Term: term, Count: len(results), Results: results}, nil
}

// GetVenueDetail returns the venue with its shows split into past and
// upcoming. Returns domain.ErrNotFound if the venue does not exist.
func (s *QueryService) GetVenueDetail(ctx context.Context, id int64) (domain.VenueDetail, error) {
	now := s.now()

	venue, err := s.venues.GetByID(ctx, id)
	if err != nil {
		return domain.VenueDetail{}, fmt.Errorf("service.QueryService.GetVenueDetail: %w", err)
	}
	listings, err := s.shows.ListByVenue(ctx, id)
	if err != nil {
		return domain.VenueDetail{}, fmt.Errorf("service.QueryService.GetVenueDetail: %w", err)
	}

	detail := domain.VenueDetail{
		Venue:         venue,
		PastShows:     []domain.VenueShow{},
		UpcomingShows: []domain.VenueShow{},
	}
	for _, l := range listings {
		show := domain.VenueShow{
			ShowID:          l.ShowID,
			ArtistID:        l.ArtistID,
			ArtistName:      l.ArtistName,
			ArtistImageLink: l.ArtistImageLink,
			StartTime:       l.StartTime,
			StartTimeText:   domain.FormatShowTime(l.StartTime.In(s.loc), domain.TimeMedium),
		}
		switch {
		case l.StartTime.Before(now):
			detail.PastShows = append(detail.PastShows, show)
		case l.StartTime.After(now):
			detail.UpcomingShows = append(detail.UpcomingShows, show)
		}
	}
	detail.PastShowsCount = len(detail.PastShows)
	detail.UpcomingShowsCount = len(detail.UpcomingShows)
	return detail, nil
}

// GetArtistDetail returns the artist with their shows split into past and
// upcoming. Returns domain.ErrNotFound if the artist does not exist.
func (s *QueryService) GetArtistDetail(ctx context.Context, id int64) (domain.ArtistDetail, error) {
	now := s.now()

	artist, err := s.artists.GetByID(ctx, id)
	if err != nil {
		return domain.ArtistDetail{}, fmt.Errorf("service.QueryService.GetArtistDetail: %w", err)
	}
	listings, err := s.shows.ListByArtist(ctx, id)
	if err != nil {
		return domain.ArtistDetail{}, fmt.Errorf("service.QueryService.GetArtistDetail: %w", err)
	}

	detail := domain.ArtistDetail{
		Artist:        artist,
		PastShows:     []domain.ArtistShow{},
		UpcomingShows: []domain.ArtistShow{},
	}
	for _, l := range listings {
		show := domain.ArtistShow{
			ShowID:         l.ShowID,
			VenueID:        l.VenueID,
			VenueName:      l.VenueName,
			VenueImageLink: l.VenueImageLink,
			StartTime:      l.StartTime,
			StartTimeText:  domain.FormatShowTime(l.StartTime.In(s.loc), domain.TimeMedium),
		}
		switch {
		case l.StartTime.Before(now):
			detail.PastShows = append(detail.PastShows, show)
		case l.StartTime.After(now):
			detail.UpcomingShows = append(detail.UpcomingShows, show)
		}
	}
	detail.PastShowsCount = len(detail.PastShows)
	detail.UpcomingShowsCount = len(detail.UpcomingShows)
	return detail, nil
}

// GetVenue returns a single venue, used to prefill the edit form.
func (s *QueryService) GetVenue(ctx context.Context, id int64) (domain.Venue, error) {
	v, err := s.venues.GetByID(ctx, id)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("service.QueryService.GetVenue: %w", err)
	}
	return v, nil
}

// GetArtist returns a single artist, used to prefill the edit form.
func (s *QueryService) GetArtist(ctx context.Context, id int64) (domain.Artist, error) {
	a, err := s.artists.GetByID(ctx, id)
	if err != nil {
		return domain.Artist{}, fmt.Errorf("service.QueryService.GetArtist: %w", err)
	}
	return a, nil
}

// ListArtists returns every artist ordered by name, with upcoming counts.
func (s *QueryService) ListArtists(ctx context.Context) ([]domain.Summary, error) {
	now := s.now()

	artists, err := s.artists.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.QueryService.ListArtists: %w", err)
	}
	counts, err := s.shows.CountUpcomingByArtist(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("service.QueryService.ListArtists: %w", err)
	}

	out := make([]domain.Summary, 0, len(artists))
	for _, a := range artists {
		out = append(out, domain.Summary{ID: a.ID, Name: a.Name, UpcomingShowCount: counts[a.ID]})
	}
	return out, nil
}

// ListShows returns every show with both owners, ordered by start time,
// with the display time filled in.
func (s *QueryService) ListShows(ctx context.Context) ([]domain.ShowListing, error) {
	listings, err := s.shows.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.QueryService.ListShows: %w", err)
	}
	for i := range listings {
		listings[i].StartTimeText = domain.FormatShowTime(listings[i].StartTime.In(s.loc), domain.TimeFull)
	}
	return listings, nil
}

// ShowFormChoices returns the artists and venues a new show may reference,
// each in id order.
func (s *QueryService) ShowFormChoices(ctx context.Context) (domain.ShowFormChoices, error) {
	venues, err := s.venues.List(ctx)
	if err != nil {
		return domain.ShowFormChoices{}, fmt.Errorf("service.QueryService.ShowFormChoices: %w", err)
	}
	artists, err := s.artists.List(ctx)
	if err != nil {
		return domain.ShowFormChoices{}, fmt.Errorf("service.QueryService.ShowFormChoices: %w", err)
	}

	choices := domain.ShowFormChoices{
		Artists: make([]domain.Summary, 0, len(artists)),
		Venues:  make([]domain.Summary, 0, len(venues)),
	}
	for _, v := range venues {
		choices.Venues = append(choices.Venues, domain.Summary{ID: v.ID, Name: v.Name})
	}
	for _, a := range artists {
		choices.Artists = append(choices.Artists, domain.Summary{ID: a.ID, Name: a.Name})
	}
	sort.SliceStable(choices.Artists, func(i, j int) bool { return choices.Artists[i].ID < choices.Artists[j].ID })
	return choices, nil
}
