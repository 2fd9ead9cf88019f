// Package handler implements the HTTP handlers for the Fyyur directory.
// All handlers are methods on Server. Methods are split into domain-specific
// files (venue.go, artist.go, show.go, etc.) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/fyyur/internal/domain"
)

// QueryServicer defines the read operations the page handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type QueryServicer interface {
	ListVenuesGroupedByLocation(ctx context.Context) ([]domain.VenueArea, error)
	SearchVenues(ctx context.Context, term string) (domain.SearchResult, error)
	SearchArtists(ctx context.Context, term string) (domain.SearchResult, error)
	GetVenueDetail(ctx context.Context, id int64) (domain.VenueDetail, error)
	GetArtistDetail(ctx context.Context, id int64) (domain.ArtistDetail, error)
	GetVenue(ctx context.Context, id int64) (domain.Venue, error)
	GetArtist(ctx context.Context, id int64) (domain.Artist, error)
	ListArtists(ctx context.Context) ([]domain.Summary, error)
	ListShows(ctx context.Context) ([]domain.ShowListing, error)
	ShowFormChoices(ctx context.Context) (domain.ShowFormChoices, error)
}

// MutationServicer defines the write operations behind the form posts.
type MutationServicer interface {
	CreateVenue(ctx context.Context, fields domain.VenueFields) (int64, error)
	UpdateVenue(ctx context.Context, id int64, fields domain.VenueFields) error
	DeleteVenue(ctx context.Context, id int64) error
	CreateArtist(ctx context.Context, fields domain.ArtistFields) (int64, error)
	UpdateArtist(ctx context.Context, id int64, fields domain.ArtistFields) error
	DeleteArtist(ctx context.Context, id int64) error
	CreateShow(ctx context.Context, fields domain.ShowFields) (int64, error)
	DeleteShow(ctx context.Context, id int64) error
}

// ExportServicer builds the flat shows export.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Server serves every page and form endpoint.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	queries   QueryServicer
	mutations MutationServicer
	export    ExportServicer
	log       *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(queries QueryServicer, mutations MutationServicer, export ExportServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{queries: queries, mutations: mutations, export: export, log: log}
}

// Routes registers every endpoint on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/", s.Home)
	r.Get("/healthz", s.GetHealth)

	r.Route("/venues", func(r chi.Router) {
		r.Get("/", s.ListVenues)
		r.Post("/search", s.SearchVenues)
		r.Get("/create", s.NewVenueForm)
		r.Post("/create", s.CreateVenue)
		r.Get("/{venueID}", s.GetVenue)
		r.Get("/{venueID}/edit", s.EditVenueForm)
		r.Post("/{venueID}/edit", s.UpdateVenue)
		r.Post("/{venueID}/delete", s.DeleteVenue)
		r.Delete("/{venueID}", s.DeleteVenue)
	})

	r.Route("/artists", func(r chi.Router) {
		r.Get("/", s.ListArtists)
		r.Post("/search", s.SearchArtists)
		r.Get("/create", s.NewArtistForm)
		r.Post("/create", s.CreateArtist)
		r.Get("/{artistID}", s.GetArtist)
		r.Get("/{artistID}/edit", s.EditArtistForm)
		r.Post("/{artistID}/edit", s.UpdateArtist)
		r.Post("/{artistID}/delete", s.DeleteArtist)
		r.Delete("/{artistID}", s.DeleteArtist)
	})

	r.Route("/shows", func(r chi.Router) {
		r.Get("/", s.ListShows)
		r.Get("/create", s.NewShowForm)
		r.Post("/create", s.CreateShow)
		r.Get("/export", s.GetExport)
		r.Post("/{showID}/delete", s.DeleteShow)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.renderError(w, r, http.StatusNotFound, "Page not found")
	})
}
