package service_test

import (
	"context"
	"time"

	"github.com/pkordes/fyyur/internal/domain"
	"github.com/pkordes/fyyur/internal/repo"
)

// mockVenueRepo is a hand-written test double for repo.VenueRepo.
// Each method is a function field; set only the ones your test needs.
type mockVenueRepo struct {
	create  func(ctx context.Context, venue domain.Venue) (domain.Venue, error)
	getByID func(ctx context.Context, id int64) (domain.Venue, error)
	list    func(ctx context.Context) ([]domain.Venue, error)
	search  func(ctx context.Context, term string) ([]domain.Venue, error)
	update  func(ctx context.Context, venue domain.Venue) (domain.Venue, error)
	delete  func(ctx context.Context, id int64) error
}

func (m *mockVenueRepo) Create(ctx context.Context, venue domain.Venue) (domain.Venue, error) {
	return m.create(ctx, venue)
}
func (m *mockVenueRepo) GetByID(ctx context.Context, id int64) (domain.Venue, error) {
	return m.getByID(ctx, id)
}
func (m *mockVenueRepo) List(ctx context.Context) ([]domain.Venue, error) {
	return m.list(ctx)
}
func (m *mockVenueRepo) Search(ctx context.Context, term string) ([]domain.Venue, error) {
	return m.search(ctx, term)
}
func (m *mockVenueRepo) Update(ctx context.Context, venue domain.Venue) (domain.Venue, error) {
	return m.update(ctx, venue)
}
func (m *mockVenueRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

// mockArtistRepo is a hand-written test double for repo.ArtistRepo.
type mockArtistRepo struct {
	create  func(ctx context.Context, artist domain.Artist) (domain.Artist, error)
	getByID func(ctx context.Context, id int64) (domain.Artist, error)
	list    func(ctx context.Context) ([]domain.Artist, error)
	search  func(ctx context.Context, term string) ([]domain.Artist, error)
	update  func(ctx context.Context, artist domain.Artist) (domain.Artist, error)
	delete  func(ctx context.Context, id int64) error
}

func (m *mockArtistRepo) Create(ctx context.Context, artist domain.Artist) (domain.Artist, error) {
	return m.create(ctx, artist)
}
func (m *mockArtistRepo) GetByID(ctx context.Context, id int64) (domain.Artist, error) {
	return m.getByID(ctx, id)
}
func (m *mockArtistRepo) List(ctx context.Context) ([]domain.Artist, error) {
	return m.list(ctx)
}
func (m *mockArtistRepo) Search(ctx context.Context, term string) ([]domain.Artist, error) {
	return m.search(ctx, term)
}
func (m *mockArtistRepo) Update(ctx context.Context, artist domain.Artist) (domain.Artist, error) {
	return m.update(ctx, artist)
}
func (m *mockArtistRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

// mockShowRepo is a hand-written test double for repo.ShowRepo.
type mockShowRepo struct {
	create                func(ctx context.Context, show domain.Show) (domain.Show, error)
	getByID               func(ctx context.Context, id int64) (domain.Show, error)
	delete                func(ctx context.Context, id int64) error
	list                  func(ctx context.Context) ([]domain.ShowListing, error)
	listByVenue           func(ctx context.Context, venueID int64) ([]domain.ShowListing, error)
	listByArtist          func(ctx context.Context, artistID int64) ([]domain.ShowListing, error)
	countUpcomingByVenue  func(ctx context.Context, now time.Time) (map[int64]int, error)
	countUpcomingByArtist func(ctx context.Context, now time.Time) (map[int64]int, error)
}

func (m *mockShowRepo) Create(ctx context.Context, show domain.Show) (domain.Show, error) {
	return m.create(ctx, show)
}
func (m *mockShowRepo) GetByID(ctx context.Context, id int64) (domain.Show, error) {
	return m.getByID(ctx, id)
}
func (m *mockShowRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}
func (m *mockShowRepo) List(ctx context.Context) ([]domain.ShowListing, error) {
	return m.list(ctx)
}
func (m *mockShowRepo) ListByVenue(ctx context.Context, venueID int64) ([]domain.ShowListing, error) {
	return m.listByVenue(ctx, venueID)
}
func (m *mockShowRepo) ListByArtist(ctx context.Context, artistID int64) ([]domain.ShowListing, error) {
	return m.listByArtist(ctx, artistID)
}
func (m *mockShowRepo) CountUpcomingByVenue(ctx context.Context, now time.Time) (map[int64]int, error) {
	return m.countUpcomingByVenue(ctx, now)
}
func (m *mockShowRepo) CountUpcomingByArtist(ctx context.Context, now time.Time) (map[int64]int, error) {
	return m.countUpcomingByArtist(ctx, now)
}

// compile-time checks: the mocks must satisfy the repo interfaces.
var (
	_ repo.VenueRepo  = (*mockVenueRepo)(nil)
	_ repo.ArtistRepo = (*mockArtistRepo)(nil)
	_ repo.ShowRepo   = (*mockShowRepo)(nil)
)

// fixedNow is the evaluation instant used by every clock-dependent test.
var fixedNow = time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func noUpcoming(_ context.Context, _ time.Time) (map[int64]int, error) {
	return map[int64]int{}, nil
}
