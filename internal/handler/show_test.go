package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/fyyur/internal/domain"
)

func showChoices() *mockQueryServicer {
	return &mockQueryServicer{
		showFormChoices: func(_ context.Context) (domain.ShowFormChoices, error) {
			return domain.ShowFormChoices{
				Artists: []domain.Summary{{ID: 4, Name: "Guns N Petals"}},
				Venues:  []domain.Summary{{ID: 1, Name: "The Musical Hop"}},
			}, nil
		},
	}
}

func TestListShows_200(t *testing.T) {
	q := &mockQueryServicer{
		listShows: func(_ context.Context) ([]domain.ShowListing, error) {
			return []domain.ShowListing{{
				ShowID:        1,
				StartTime:     time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC),
				StartTimeText: "Tuesday May, 21, 2019 at 9:30PM",
				VenueID:       1,
				VenueName:     "The Musical Hop",
				ArtistID:      4,
				ArtistName:    "Guns N Petals",
			}}, nil
		},
	}
	rec := httptest.NewRecorder()

	newHTTPHandler(q, nil, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/shows", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Tuesday May, 21, 2019 at 9:30PM")
	assert.Contains(t, body, `action="/shows/1/delete"`)
}

func TestNewShowForm_200(t *testing.T) {
	rec := httptest.NewRecorder()

	newHTTPHandler(showChoices(), nil, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/shows/create", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Guns N Petals (#4)")
}

func TestCreateShow_303(t *testing.T) {
	var got domain.ShowFields
	m := &mockMutationServicer{
		createShow: func(_ context.Context, f domain.ShowFields) (int64, error) {
			got = f
			return 1, nil
		},
	}
	form := url.Values{
		domain.FieldArtistID:  {"4"},
		domain.FieldVenueID:   {"1"},
		domain.FieldStartTime: {"2035-04-01T20:00"},
	}
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, m, nil).ServeHTTP(rec, formRequest(http.MethodPost, "/shows/create", form))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, domain.ShowFields{ArtistID: "4", VenueID: "1", StartTime: "2035-04-01T20:00"}, got)
}

func TestCreateShow_DanglingVenue_500(t *testing.T) {
	m := &mockMutationServicer{
		createShow: func(_ context.Context, _ domain.ShowFields) (int64, error) {
			return 0, fmt.Errorf("service.MutationService.CreateShow: venue 99: %w", domain.ErrConstraint)
		},
	}
	form := url.Values{domain.FieldArtistID: {"4"}, domain.FieldVenueID: {"99"}}
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, m, nil).ServeHTTP(rec, formRequest(http.MethodPost, "/shows/create", form))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Show could not be listed.")
}

func TestCreateShow_422KeepsChoices(t *testing.T) {
	m := &mockMutationServicer{
		createShow: func(_ context.Context, _ domain.ShowFields) (int64, error) {
			return 0, domain.NewValidationError(domain.FieldStartTime, "startTime is not a valid date and time")
		},
	}
	form := url.Values{domain.FieldArtistID: {"4"}, domain.FieldVenueID: {"1"}, domain.FieldStartTime: {"soon"}}
	rec := httptest.NewRecorder()

	newHTTPHandler(showChoices(), m, nil).ServeHTTP(rec, formRequest(http.MethodPost, "/shows/create", form))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "startTime is not a valid date and time")
	assert.Contains(t, body, `<option value="4" selected>`)
}

func TestDeleteShow_404(t *testing.T) {
	m := &mockMutationServicer{
		deleteShow: func(_ context.Context, _ int64) error { return domain.ErrNotFound },
	}
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, m, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/shows/8/delete", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnknownRoute_404Page(t *testing.T) {
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "<!doctype html>"))
}
