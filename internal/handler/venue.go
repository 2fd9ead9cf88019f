package handler

import (
	"net/http"

	"github.com/pkordes/fyyur/internal/domain"
	"github.com/pkordes/fyyur/internal/view"
)

// Home handles GET /.
func (s *Server) Home(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "Home", view.Home(), nil)
}

// ListVenues handles GET /venues.
func (s *Server) ListVenues(w http.ResponseWriter, r *http.Request) {
	areas, err := s.queries.ListVenuesGroupedByLocation(r.Context())
	if err != nil {
		s.failRead(w, r, err, "Venues")
		return
	}
	s.render(w, r, http.StatusOK, "Venues", view.Venues(areas), nil)
}

// SearchVenues handles POST /venues/search.
func (s *Server) SearchVenues(w http.ResponseWriter, r *http.Request) {
	if !s.parseForm(w, r) {
		return
	}
	result, err := s.queries.SearchVenues(r.Context(), r.PostForm.Get("search_term"))
	if err != nil {
		s.failRead(w, r, err, "Venues")
		return
	}
	s.render(w, r, http.StatusOK, "Venue search", view.SearchResults("/venues/", result), nil)
}

// GetVenue handles GET /venues/{venueID}.
func (s *Server) GetVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "venueID")
	if !ok {
		s.renderError(w, r, http.StatusNotFound, "Venue not found")
		return
	}
	detail, err := s.queries.GetVenueDetail(r.Context(), id)
	if err != nil {
		s.failRead(w, r, err, "Venue")
		return
	}
	s.render(w, r, http.StatusOK, detail.Name, view.VenueDetail(detail), nil)
}

// NewVenueForm handles GET /venues/create.
func (s *Server) NewVenueForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "New venue",
		view.VenueForm("List a new venue", "/venues/create", domain.VenueFields{}, nil), nil)
}

// CreateVenue handles POST /venues/create.
// Invalid input re-renders the form with 422; success redirects home.
func (s *Server) CreateVenue(w http.ResponseWriter, r *http.Request) {
	if !s.parseForm(w, r) {
		return
	}
	fields := domain.VenueFieldsFromMap(r.PostForm)

	_, err := s.mutations.CreateVenue(r.Context(), fields)
	if errs, ok := fieldErrors(err); ok {
		s.render(w, r, http.StatusUnprocessableEntity, "New venue",
			view.VenueForm("List a new venue", "/venues/create", fields, errs), nil)
		return
	}
	if err != nil {
		s.failWrite(w, r, err, "Venue", "An error occurred. Venue "+fields.Name+" could not be listed.")
		return
	}
	redirect(w, r, "/", "Venue "+fields.Name+" was successfully listed!")
}

// EditVenueForm handles GET /venues/{venueID}/edit, prefilled from the store.
func (s *Server) EditVenueForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "venueID")
	if !ok {
		s.renderError(w, r, http.StatusNotFound, "Venue not found")
		return
	}
	venue, err := s.queries.GetVenue(r.Context(), id)
	if err != nil {
		s.failRead(w, r, err, "Venue")
		return
	}
	s.render(w, r, http.StatusOK, "Edit venue",
		view.VenueForm("Edit "+venue.Name, r.URL.Path, domain.VenueFieldsOf(venue), nil), nil)
}

// UpdateVenue handles POST /venues/{venueID}/edit.
func (s *Server) UpdateVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "venueID")
	if !ok {
		s.renderError(w, r, http.StatusNotFound, "Venue not found")
		return
	}
	if !s.parseForm(w, r) {
		return
	}
	fields := domain.VenueFieldsFromMap(r.PostForm)

	err := s.mutations.UpdateVenue(r.Context(), id, fields)
	if errs, ok := fieldErrors(err); ok {
		s.render(w, r, http.StatusUnprocessableEntity, "Edit venue",
			view.VenueForm("Edit venue", r.URL.Path, fields, errs), nil)
		return
	}
	if err != nil {
		s.failWrite(w, r, err, "Venue", "An error occurred. Venue "+fields.Name+" could not be updated.")
		return
	}
	redirect(w, r, venuePath(id), "Venue "+fields.Name+" was successfully updated!")
}

// DeleteVenue handles POST /venues/{venueID}/delete and DELETE /venues/{venueID}.
func (s *Server) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "venueID")
	if !ok {
		s.renderError(w, r, http.StatusNotFound, "Venue not found")
		return
	}
	if err := s.mutations.DeleteVenue(r.Context(), id); err != nil {
		s.failWrite(w, r, err, "Venue", "An error occurred. The venue could not be deleted.")
		return
	}
	redirect(w, r, "/venues", "Venue was successfully deleted.")
}

func venuePath(id int64) string {
	return "/venues/" + itoa(id)
}
