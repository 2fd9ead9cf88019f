package handler

import (
	"net/http"

	"github.com/pkordes/fyyur/internal/domain"
	"github.com/pkordes/fyyur/internal/view"
)

// ListShows handles GET /shows.
func (s *Server) ListShows(w http.ResponseWriter, r *http.Request) {
	listings, err := s.queries.ListShows(r.Context())
	if err != nil {
		s.failRead(w, r, err, "Shows")
		return
	}
	s.render(w, r, http.StatusOK, "Shows", view.Shows(listings), nil)
}

// NewShowForm handles GET /shows/create.
func (s *Server) NewShowForm(w http.ResponseWriter, r *http.Request) {
	choices, err := s.queries.ShowFormChoices(r.Context())
	if err != nil {
		s.failRead(w, r, err, "Show form")
		return
	}
	s.render(w, r, http.StatusOK, "New show", view.ShowForm(choices, domain.ShowFields{}, nil), nil)
}

// CreateShow handles POST /shows/create.
// A dangling artist or venue is a constraint error and renders as 500, like
// any other failed insert.
func (s *Server) CreateShow(w http.ResponseWriter, r *http.Request) {
	if !s.parseForm(w, r) {
		return
	}
	fields := domain.ShowFieldsFromMap(r.PostForm)

	_, err := s.mutations.CreateShow(r.Context(), fields)
	if errs, ok := fieldErrors(err); ok {
		choices, cerr := s.queries.ShowFormChoices(r.Context())
		if cerr != nil {
			s.failRead(w, r, cerr, "Show form")
			return
		}
		s.render(w, r, http.StatusUnprocessableEntity, "New show", view.ShowForm(choices, fields, errs), nil)
		return
	}
	if err != nil {
		s.failWrite(w, r, err, "Show", "An error occurred. Show could not be listed.")
		return
	}
	redirect(w, r, "/", "Show was successfully listed!")
}

// DeleteShow handles POST /shows/{showID}/delete.
func (s *Server) DeleteShow(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "showID")
	if !ok {
		s.renderError(w, r, http.StatusNotFound, "Show not found")
		return
	}
	if err := s.mutations.DeleteShow(r.Context(), id); err != nil {
		s.failWrite(w, r, err, "Show", "An error occurred. The show could not be cancelled.")
		return
	}
	redirect(w, r, "/shows", "Show was successfully cancelled.")
}
