package service_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/pkordes/fyyur/internal/domain"
)

// memStore is an in-memory directory used by the property tests. It returns
// the function-field mocks wired to shared maps, so a service under test sees
// one consistent store across all three repos.
type memStore struct {
	venues  map[int64]domain.Venue
	artists map[int64]domain.Artist
	shows   map[int64]domain.Show
	nextID  int64
}

func newMemStore() *memStore {
	return &memStore{
		venues:  map[int64]domain.Venue{},
		artists: map[int64]domain.Artist{},
		shows:   map[int64]domain.Show{},
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) venueRepo() *mockVenueRepo {
	return &mockVenueRepo{
		create: func(_ context.Context, v domain.Venue) (domain.Venue, error) {
			v.ID = m.id()
			m.venues[v.ID] = v
			return v, nil
		},
		getByID: func(_ context.Context, id int64) (domain.Venue, error) {
			v, ok := m.venues[id]
			if !ok {
				return domain.Venue{}, domain.ErrNotFound
			}
			return v, nil
		},
		list: func(_ context.Context) ([]domain.Venue, error) {
			out := []domain.Venue{}
			for _, id := range sortedKeys(m.venues) {
				out = append(out, m.venues[id])
			}
			return out, nil
		},
		search: func(_ context.Context, term string) ([]domain.Venue, error) {
			out := []domain.Venue{}
			for _, id := range sortedKeys(m.venues) {
				if strings.Contains(strings.ToLower(m.venues[id].Name), strings.ToLower(term)) {
					out = append(out, m.venues[id])
				}
			}
			return out, nil
		},
		update: func(_ context.Context, v domain.Venue) (domain.Venue, error) {
			if _, ok := m.venues[v.ID]; !ok {
				return domain.Venue{}, domain.ErrNotFound
			}
			m.venues[v.ID] = v
			return v, nil
		},
		delete: func(_ context.Context, id int64) error {
			if _, ok := m.venues[id]; !ok {
				return domain.ErrNotFound
			}
			delete(m.venues, id)
			for sid, s := range m.shows {
				if s.VenueID == id {
					delete(m.shows, sid)
				}
			}
			return nil
		},
	}
}

func (m *memStore) artistRepo() *mockArtistRepo {
	return &mockArtistRepo{
		create: func(_ context.Context, a domain.Artist) (domain.Artist, error) {
			a.ID = m.id()
			m.artists[a.ID] = a
			return a, nil
		},
		getByID: func(_ context.Context, id int64) (domain.Artist, error) {
			a, ok := m.artists[id]
			if !ok {
				return domain.Artist{}, domain.ErrNotFound
			}
			return a, nil
		},
		update: func(_ context.Context, a domain.Artist) (domain.Artist, error) {
			if _, ok := m.artists[a.ID]; !ok {
				return domain.Artist{}, domain.ErrNotFound
			}
			m.artists[a.ID] = a
			return a, nil
		},
		delete: func(_ context.Context, id int64) error {
			if _, ok := m.artists[id]; !ok {
				return domain.ErrNotFound
			}
			delete(m.artists, id)
			for sid, s := range m.shows {
				if s.ArtistID == id {
					delete(m.shows, sid)
				}
			}
			return nil
		},
	}
}

func (m *memStore) showRepo() *mockShowRepo {
	return &mockShowRepo{
		create: func(_ context.Context, s domain.Show) (domain.Show, error) {
			_, okA := m.artists[s.ArtistID]
			_, okV := m.venues[s.VenueID]
			if !okA || !okV {
				return domain.Show{}, domain.ErrConstraint
			}
			s.ID = m.id()
			// Postgres keeps the instant, not the zone it was written in.
			s.StartTime = s.StartTime.UTC()
			m.shows[s.ID] = s
			return s, nil
		},
		getByID: func(_ context.Context, id int64) (domain.Show, error) {
			s, ok := m.shows[id]
			if !ok {
				return domain.Show{}, domain.ErrNotFound
			}
			return s, nil
		},
		delete: func(_ context.Context, id int64) error {
			if _, ok := m.shows[id]; !ok {
				return domain.ErrNotFound
			}
			delete(m.shows, id)
			return nil
		},
		listByVenue: func(_ context.Context, venueID int64) ([]domain.ShowListing, error) {
			return m.listings(func(s domain.Show) bool { return s.VenueID == venueID }), nil
		},
		listByArtist: func(_ context.Context, artistID int64) ([]domain.ShowListing, error) {
			return m.listings(func(s domain.Show) bool { return s.ArtistID == artistID }), nil
		},
		countUpcomingByVenue: func(_ context.Context, now time.Time) (map[int64]int, error) {
			counts := map[int64]int{}
			for _, s := range m.shows {
				if s.StartTime.After(now) {
					counts[s.VenueID]++
				}
			}
			return counts, nil
		},
	}
}

func (m *memStore) listings(keep func(domain.Show) bool) []domain.ShowListing {
	out := []domain.ShowListing{}
	for _, id := range sortedKeys(m.shows) {
		s := m.shows[id]
		if !keep(s) {
			continue
		}
		out = append(out, domain.ShowListing{
			ShowID:          s.ID,
			StartTime:       s.StartTime,
			VenueID:         s.VenueID,
			VenueName:       m.venues[s.VenueID].Name,
			VenueImageLink:  m.venues[s.VenueID].ImageLink,
			ArtistID:        s.ArtistID,
			ArtistName:      m.artists[s.ArtistID].Name,
			ArtistImageLink: m.artists[s.ArtistID].ImageLink,
		})
	}
	return out
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
