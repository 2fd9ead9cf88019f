package handler

import (
	"net/http"
	"strconv"

	"github.com/pkordes/fyyur/internal/domain"
	"github.com/pkordes/fyyur/internal/view"
)

// ListArtists handles GET /artists.
func (s *Server) ListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := s.queries.ListArtists(r.Context())
	if err != nil {
		s.failRead(w, r, err, "Artists")
		return
	}
	s.render(w, r, http.StatusOK, "Artists", view.Artists(artists), nil)
}

// SearchArtists handles POST /artists/search.
func (s *Server) SearchArtists(w http.ResponseWriter, r *http.Request) {
	if !s.parseForm(w, r) {
		return
	}
	result, err := s.queries.SearchArtists(r.Context(), r.PostForm.Get("search_term"))
	if err != nil {
		s.failRead(w, r, err, "Artists")
		return
	}
	s.render(w, r, http.StatusOK, "Artist search", view.SearchResults("/artists/", result), nil)
}

// GetArtist handles GET /artists/{artistID}.
func (s *Server) GetArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "artistID")
	if !ok {
		s.renderError(w, r, http.StatusNotFound, "Artist not found")
		return
	}
	detail, err := s.queries.GetArtistDetail(r.Context(), id)
	if err != nil {
		s.failRead(w, r, err, "Artist")
		return
	}
	s.render(w, r, http.StatusOK, detail.Name, view.ArtistDetail(detail), nil)
}

// NewArtistForm handles GET /artists/create.
func (s *Server) NewArtistForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "New artist",
		view.ArtistForm("List a new artist", "/artists/create", domain.ArtistFields{}, nil), nil)
}

// CreateArtist handles POST /artists/create.
func (s *Server) CreateArtist(w http.ResponseWriter, r *http.Request) {
	if !s.parseForm(w, r) {
		return
	}
	fields := domain.ArtistFieldsFromMap(r.PostForm)

	_, err := s.mutations.CreateArtist(r.Context(), fields)
	if errs, ok := fieldErrors(err); ok {
		s.render(w, r, http.StatusUnprocessableEntity, "New artist",
			view.ArtistForm("List a new artist", "/artists/create", fields, errs), nil)
		return
	}
	if err != nil {
		s.failWrite(w, r, err, "Artist", "An error occurred. Artist "+fields.Name+" could not be listed.")
		return
	}
	redirect(w, r, "/", "Artist "+fields.Name+" was successfully listed!")
}

// EditArtistForm handles GET /artists/{artistID}/edit.
func (s *Server) EditArtistForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "artistID")
	if !ok {
		s.renderError(w, r, http.StatusNotFound, "Artist not found")
		return
	}
	artist, err := s.queries.GetArtist(r.Context(), id)
	if err != nil {
		s.failRead(w, r, err, "Artist")
		return
	}
	s.render(w, r, http.StatusOK, "Edit artist",
		view.ArtistForm("Edit "+artist.Name, r.URL.Path, domain.ArtistFieldsOf(artist), nil), nil)
}

// UpdateArtist handles POST /artists/{artistID}/edit.
func (s *Server) UpdateArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "artistID")
	if !ok {
		s.renderError(w, r, http.StatusNotFound, "Artist not found")
		return
	}
	if !s.parseForm(w, r) {
		return
	}
	fields := domain.ArtistFieldsFromMap(r.PostForm)

	err := s.mutations.UpdateArtist(r.Context(), id, fields)
	if errs, ok := fieldErrors(err); ok {
		s.render(w, r, http.StatusUnprocessableEntity, "Edit artist",
			view.ArtistForm("Edit artist", r.URL.Path, fields, errs), nil)
		return
	}
	if err != nil {
		s.failWrite(w, r, err, "Artist", "An error occurred. Artist "+fields.Name+" could not be updated.")
		return
	}
	redirect(w, r, "/artists/"+itoa(id), "Artist "+fields.Name+" was successfully updated!")
}

// DeleteArtist handles POST /artists/{artistID}/delete and DELETE /artists/{artistID}.
func (s *Server) DeleteArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "artistID")
	if !ok {
		s.renderError(w, r, http.StatusNotFound, "Artist not found")
		return
	}
	if err := s.mutations.DeleteArtist(r.Context(), id); err != nil {
		s.failWrite(w, r, err, "Artist", "An error occurred. The artist could not be deleted.")
		return
	}
	redirect(w, r, "/artists", "Artist was successfully deleted.")
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
