package handler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/fyyur/internal/domain"
	"github.com/pkordes/fyyur/internal/flash"
	"github.com/pkordes/fyyur/internal/view"
)

// render writes page inside the layout with the given status. A pending
// flash notice is consumed; notice, when non-nil, is shown instead.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, title string, page templ.Component, notice *flash.Notice) {
	if pending, ok := flash.ReadAndClear(w, r); ok && notice == nil {
		notice = &pending
	}

	// Render into a buffer first so a template failure can still become a 500.
	var buf bytes.Buffer
	ctx := templ.WithChildren(r.Context(), page)
	if err := view.Layout(title, notice).Render(ctx, &buf); err != nil {
		s.log.ErrorContext(r.Context(), "render failed",
			"title", title, "error", err, "request_id", chimiddleware.GetReqID(r.Context()))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	s.render(w, r, status, http.StatusText(status), view.ErrorPage(status, message), nil)
}

// failRead maps an error from a read to a page: not found is 404 and
// everything else is logged and rendered as 500.
func (s *Server) failRead(w http.ResponseWriter, r *http.Request, err error, what string) {
	if errors.Is(err, domain.ErrNotFound) {
		s.renderError(w, r, http.StatusNotFound, what+" not found")
		return
	}
	s.serverError(w, r, err, "Something went wrong loading this page.")
}

// failWrite maps an error from a mutation that is not a validation failure.
// Constraint violations and store errors look the same to the user.
func (s *Server) failWrite(w http.ResponseWriter, r *http.Request, err error, what, message string) {
	if errors.Is(err, domain.ErrNotFound) {
		s.renderError(w, r, http.StatusNotFound, what+" not found")
		return
	}
	s.serverError(w, r, err, message)
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error, message string) {
	s.log.ErrorContext(r.Context(), "request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
		"request_id", chimiddleware.GetReqID(r.Context()),
	)
	notice := flash.Error(message)
	s.render(w, r, http.StatusInternalServerError, "Error",
		view.ErrorPage(http.StatusInternalServerError, message), &notice)
}

// redirect sends the browser to url with a success notice for the next page.
func redirect(w http.ResponseWriter, r *http.Request, url, message string) {
	flash.Write(w, r, flash.Success(message))
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// pathID binds the named chi path parameter as a positive integer id.
func pathID(r *http.Request, name string) (int64, bool) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// parseForm reads the request form. An oversized body is 413, anything else 400.
func (s *Server) parseForm(w http.ResponseWriter, r *http.Request) bool {
	err := r.ParseForm()
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		s.renderError(w, r, http.StatusRequestEntityTooLarge, "The submitted form is too large.")
		return false
	}
	s.renderError(w, r, http.StatusBadRequest, "The submitted form could not be read.")
	return false
}

// fieldErrors extracts the per-field messages of a validation failure.
func fieldErrors(err error) (view.FormErrors, bool) {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return nil, false
	}
	return view.FormErrors(verr.Fields), true
}
