package handler_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/fyyur/internal/domain"
	"github.com/pkordes/fyyur/internal/handler"
)

// mockQueryServicer is a test double for handler.QueryServicer.
// Set only the method fields your test needs.
type mockQueryServicer struct {
	listVenuesGrouped func(ctx context.Context) ([]domain.VenueArea, error)
	searchVenues      func(ctx context.Context, term string) (domain.SearchResult, error)
	searchArtists     func(ctx context.Context, term string) (domain.SearchResult, error)
	getVenueDetail    func(ctx context.Context, id int64) (domain.VenueDetail, error)
	getArtistDetail   func(ctx context.Context, id int64) (domain.ArtistDetail, error)
	getVenue          func(ctx context.Context, id int64) (domain.Venue, error)
	getArtist         func(ctx context.Context, id int64) (domain.Artist, error)
	listArtists       func(ctx context.Context) ([]domain.Summary, error)
	listShows         func(ctx context.Context) ([]domain.ShowListing, error)
	showFormChoices   func(ctx context.Context) (domain.ShowFormChoices, error)
}

func (m *mockQueryServicer) ListVenuesGroupedByLocation(ctx context.Context) ([]domain.VenueArea, error) {
	return m.listVenuesGrouped(ctx)
}
func (m *mockQueryServicer) SearchVenues(ctx context.Context, term string) (domain.SearchResult, error) {
	return m.searchVenues(ctx, term)
}
func (m *mockQueryServicer) SearchArtists(ctx context.Context, term string) (domain.SearchResult, error) {
	return m.searchArtists(ctx, term)
}
func (m *mockQueryServicer) GetVenueDetail(ctx context.Context, id int64) (domain.VenueDetail, error) {
	return m.getVenueDetail(ctx, id)
}
func (m *mockQueryServicer) GetArtistDetail(ctx context.Context, id int64) (domain.ArtistDetail, error) {
	return m.getArtistDetail(ctx, id)
}
func (m *mockQueryServicer) GetVenue(ctx context.Context, id int64) (domain.Venue, error) {
	return m.getVenue(ctx, id)
}
func (m *mockQueryServicer) GetArtist(ctx context.Context, id int64) (domain.Artist, error) {
	return m.getArtist(ctx, id)
}
func (m *mockQueryServicer) ListArtists(ctx context.Context) ([]domain.Summary, error) {
	return m.listArtists(ctx)
}
func (m *mockQueryServicer) ListShows(ctx context.Context) ([]domain.ShowListing, error) {
	return m.listShows(ctx)
}
func (m *mockQueryServicer) ShowFormChoices(ctx context.Context) (domain.ShowFormChoices, error) {
	return m.showFormChoices(ctx)
}

// mockMutationServicer is a test double for handler.MutationServicer.
type mockMutationServicer struct {
	createVenue  func(ctx context.Context, fields domain.VenueFields) (int64, error)
	updateVenue  func(ctx context.Context, id int64, fields domain.VenueFields) error
	deleteVenue  func(ctx context.Context, id int64) error
	createArtist func(ctx context.Context, fields domain.ArtistFields) (int64, error)
	updateArtist func(ctx context.Context, id int64, fields domain.ArtistFields) error
	deleteArtist func(ctx context.Context, id int64) error
	createShow   func(ctx context.Context, fields domain.ShowFields) (int64, error)
	deleteShow   func(ctx context.Context, id int64) error
}

func (m *mockMutationServicer) CreateVenue(ctx context.Context, f domain.VenueFields) (int64, error) {
	return m.createVenue(ctx, f)
}
func (m *mockMutationServicer) UpdateVenue(ctx context.Context, id int64, f domain.VenueFields) error {
	return m.updateVenue(ctx, id, f)
}
func (m *mockMutationServicer) DeleteVenue(ctx context.Context, id int64) error {
	return m.deleteVenue(ctx, id)
}
func (m *mockMutationServicer) CreateArtist(ctx context.Context, f domain.ArtistFields) (int64, error) {
	return m.createArtist(ctx, f)
}
func (m *mockMutationServicer) UpdateArtist(ctx context.Context, id int64, f domain.ArtistFields) error {
	return m.updateArtist(ctx, id, f)
}
func (m *mockMutationServicer) DeleteArtist(ctx context.Context, id int64) error {
	return m.deleteArtist(ctx, id)
}
func (m *mockMutationServicer) CreateShow(ctx context.Context, f domain.ShowFields) (int64, error) {
	return m.createShow(ctx, f)
}
func (m *mockMutationServicer) DeleteShow(ctx context.Context, id int64) error {
	return m.deleteShow(ctx, id)
}

// mockExportServicer is a test double for handler.ExportServicer.
type mockExportServicer struct {
	export func(ctx context.Context) ([]domain.ExportRow, error)
}

func (m *mockExportServicer) Export(ctx context.Context) ([]domain.ExportRow, error) {
	return m.export(ctx)
}

// compile-time checks: the mocks must satisfy the handler interfaces.
var (
	_ handler.QueryServicer    = (*mockQueryServicer)(nil)
	_ handler.MutationServicer = (*mockMutationServicer)(nil)
	_ handler.ExportServicer   = (*mockExportServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mocks into a chi router.
// This mirrors exactly how main.go wires it in production.
func newHTTPHandler(q handler.QueryServicer, m handler.MutationServicer, e handler.ExportServicer) http.Handler {
	srv := handler.NewServer(q, m, e, slog.New(slog.NewJSONHandler(io.Discard, nil)))
	r := chi.NewRouter()
	srv.Routes(r)
	return r
}

// formRequest builds an application/x-www-form-urlencoded request.
func formRequest(method, target string, values url.Values) *http.Request {
	req, _ := http.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// mainContent returns the markup between <main> and </main>, failing the test
// when the layout rendered no page body.
func mainContent(t *testing.T, body string) string {
	t.Helper()
	start := strings.Index(body, "<main>")
	end := strings.LastIndex(body, "</main>")
	require.True(t, start >= 0 && end > start, "page has no main element")
	content := body[start+len("<main>") : end]
	require.NotEmpty(t, content, "main element is empty")
	return content
}
