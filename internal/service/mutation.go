package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/pkordes/fyyur/internal/domain"
	"github.com/pkordes/fyyur/internal/repo"
)

// MutationService validates form input and applies writes through the repos.
// Validation failures never reach the store. Each repo call is its own
// transaction, so a failed write leaves nothing behind.
type MutationService struct {
	venues   repo.VenueRepo
	artists  repo.ArtistRepo
	shows    repo.ShowRepo
	validate *validator.Validate
	log      *slog.Logger
	now      Clock
	loc      *time.Location
}

// NewMutationService constructs a MutationService backed by the provided repos.
// Show times without a zone are read as UTC.
func NewMutationService(venues repo.VenueRepo, artists repo.ArtistRepo, shows repo.ShowRepo, log *slog.Logger) *MutationService {
	if log == nil {
		log = slog.Default()
	}
	v := validator.New()
	// Report field errors under the form key ("imageLink"), not the Go name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := f.Tag.Get("form")
		if name == "-" {
			return ""
		}
		return name
	})

	return &MutationService{
		venues:   venues,
		artists:  artists,
		shows:    shows,
		validate: v,
		log:      log,
		now:      time.Now,
		loc:      time.UTC,
	}
}

// WithClock replaces the clock used for defaulted show start times.
func (s *MutationService) WithClock(now Clock) *MutationService {
	s.now = now
	return s
}

// WithLocation sets the zone used for show times submitted without one.
func (s *MutationService) WithLocation(loc *time.Location) *MutationService {
	s.loc = loc
	return s
}

// CreateVenue validates fields and inserts a new venue, returning its id.
func (s *MutationService) CreateVenue(ctx context.Context, fields domain.VenueFields) (int64, error) {
	venue, err := s.venueFrom(fields)
	if err != nil {
		return 0, fmt.Errorf("service.MutationService.CreateVenue: %w", err)
	}

	created, err := s.venues.Create(ctx, venue)
	if err != nil {
		s.log.ErrorContext(ctx, "venue create failed", "name", venue.Name, "error", err)
		return 0, fmt.Errorf("service.MutationService.CreateVenue: %w", err)
	}
	s.log.InfoContext(ctx, "venue created", "venue_id", created.ID, "name", created.Name)
	return created.ID, nil
}

// UpdateVenue overwrites every mutable field of venue id with fields.
// Invalid input is reported before existence is checked.
func (s *MutationService) UpdateVenue(ctx context.Context, id int64, fields domain.VenueFields) error {
	venue, err := s.venueFrom(fields)
	if err != nil {
		return fmt.Errorf("service.MutationService.UpdateVenue: %w", err)
	}
	venue.ID = id

	if _, err := s.venues.Update(ctx, venue); err != nil {
		s.log.ErrorContext(ctx, "venue update failed", "venue_id", id, "error", err)
		return fmt.Errorf("service.MutationService.UpdateVenue: %w", err)
	}
	s.log.InfoContext(ctx, "venue updated", "venue_id", id)
	return nil
}

// DeleteVenue removes a venue and its shows.
func (s *MutationService) DeleteVenue(ctx context.Context, id int64) error {
	if err := s.venues.Delete(ctx, id); err != nil {
		s.log.ErrorContext(ctx, "venue delete failed", "venue_id", id, "error", err)
		return fmt.Errorf("service.MutationService.DeleteVenue: %w", err)
	}
	s.log.InfoContext(ctx, "venue deleted", "venue_id", id)
	return nil
}

// CreateArtist validates fields and inserts a new artist, returning its id.
func (s *MutationService) CreateArtist(ctx context.Context, fields domain.ArtistFields) (int64, error) {
	artist, err := s.artistFrom(fields)
	if err != nil {
		return 0, fmt.Errorf("service.MutationService.CreateArtist: %w", err)
	}

	created, err := s.artists.Create(ctx, artist)
	if err != nil {
		s.log.ErrorContext(ctx, "artist create failed", "name", artist.Name, "error", err)
		return 0, fmt.Errorf("service.MutationService.CreateArtist: %w", err)
	}
	s.log.InfoContext(ctx, "artist created", "artist_id", created.ID, "name", created.Name)
	return created.ID, nil
}

// UpdateArtist overwrites every mutable field of artist id with fields.
func (s *MutationService) UpdateArtist(ctx context.Context, id int64, fields domain.ArtistFields) error {
	artist, err := s.artistFrom(fields)
	if err != nil {
		return fmt.Errorf("service.MutationService.UpdateArtist: %w", err)
	}
	artist.ID = id

	if _, err := s.artists.Update(ctx, artist); err != nil {
		s.log.ErrorContext(ctx, "artist update failed", "artist_id", id, "error", err)
		return fmt.Errorf("service.MutationService.UpdateArtist: %w", err)
	}
	s.log.InfoContext(ctx, "artist updated", "artist_id", id)
	return nil
}

// DeleteArtist removes an artist and their shows.
func (s *MutationService) DeleteArtist(ctx context.Context, id int64) error {
	if err := s.artists.Delete(ctx, id); err != nil {
		s.log.ErrorContext(ctx, "artist delete failed", "artist_id", id, "error", err)
		return fmt.Errorf("service.MutationService.DeleteArtist: %w", err)
	}
	s.log.InfoContext(ctx, "artist deleted", "artist_id", id)
	return nil
}

// CreateShow books an artist at a venue. Both references must exist;
// a dangling one is reported as domain.ErrConstraint. Overlapping shows are
// allowed. An empty start time means now.
func (s *MutationService) CreateShow(ctx context.Context, fields domain.ShowFields) (int64, error) {
	show, err := s.showFrom(fields)
	if err != nil {
		return 0, fmt.Errorf("service.MutationService.CreateShow: %w", err)
	}

	if _, err := s.artists.GetByID(ctx, show.ArtistID); err != nil {
		return 0, fmt.Errorf("service.MutationService.CreateShow: artist %d: %w", show.ArtistID, danglingRef(err))
	}
	if _, err := s.venues.GetByID(ctx, show.VenueID); err != nil {
		return 0, fmt.Errorf("service.MutationService.CreateShow: venue %d: %w", show.VenueID, danglingRef(err))
	}

	created, err := s.shows.Create(ctx, show)
	if err != nil {
		s.log.ErrorContext(ctx, "show create failed",
			"artist_id", show.ArtistID, "venue_id", show.VenueID, "error", err)
		return 0, fmt.Errorf("service.MutationService.CreateShow: %w", err)
	}
	s.log.InfoContext(ctx, "show created",
		"show_id", created.ID, "artist_id", created.ArtistID, "venue_id", created.VenueID)
	return created.ID, nil
}

// DeleteShow removes a single show.
func (s *MutationService) DeleteShow(ctx context.Context, id int64) error {
	if err := s.shows.Delete(ctx, id); err != nil {
		s.log.ErrorContext(ctx, "show delete failed", "show_id", id, "error", err)
		return fmt.Errorf("service.MutationService.DeleteShow: %w", err)
	}
	s.log.InfoContext(ctx, "show deleted", "show_id", id)
	return nil
}

// danglingRef turns a missing reference into a constraint error and passes
// anything else through.
func danglingRef(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%w: referenced row does not exist", domain.ErrConstraint)
	}
	return err
}

func (s *MutationService) venueFrom(f domain.VenueFields) (domain.Venue, error) {
	f = domain.VenueFields{
		Name:               strings.TrimSpace(f.Name),
		City:               strings.TrimSpace(f.City),
		State:              strings.TrimSpace(f.State),
		Address:            strings.TrimSpace(f.Address),
		Phone:              strings.TrimSpace(f.Phone),
		ImageLink:          strings.TrimSpace(f.ImageLink),
		FacebookLink:       strings.TrimSpace(f.FacebookLink),
		Website:            strings.TrimSpace(f.Website),
		Genres:             domain.SplitGenres(f.Genres),
		SeekingFlag:        strings.TrimSpace(f.SeekingFlag),
		SeekingDescription: strings.TrimSpace(f.SeekingDescription),
	}
	if err := s.check(f); err != nil {
		return domain.Venue{}, err
	}
	return domain.Venue{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Website:            f.Website,
		Genres:             f.Genres,
		SeekingTalent:      f.SeekingFlag == domain.SeekingYes,
		SeekingDescription: f.SeekingDescription,
	}, nil
}

func (s *MutationService) artistFrom(f domain.ArtistFields) (domain.Artist, error) {
	f = domain.ArtistFields{
		Name:               strings.TrimSpace(f.Name),
		City:               strings.TrimSpace(f.City),
		State:              strings.TrimSpace(f.State),
		Phone:              strings.TrimSpace(f.Phone),
		ImageLink:          strings.TrimSpace(f.ImageLink),
		FacebookLink:       strings.TrimSpace(f.FacebookLink),
		Website:            strings.TrimSpace(f.Website),
		Genres:             domain.SplitGenres(f.Genres),
		SeekingFlag:        strings.TrimSpace(f.SeekingFlag),
		SeekingDescription: strings.TrimSpace(f.SeekingDescription),
	}
	if err := s.check(f); err != nil {
		return domain.Artist{}, err
	}
	return domain.Artist{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Website:            f.Website,
		Genres:             f.Genres,
		SeekingVenue:       f.SeekingFlag == domain.SeekingYes,
		SeekingDescription: f.SeekingDescription,
	}, nil
}

func (s *MutationService) showFrom(f domain.ShowFields) (domain.Show, error) {
	verr := &domain.ValidationError{Fields: map[string]string{}}

	artistID, ok := parseID(f.ArtistID)
	if !ok {
		verr.Fields[domain.FieldArtistID] = "artistId must be a positive integer"
	}
	venueID, ok := parseID(f.VenueID)
	if !ok {
		verr.Fields[domain.FieldVenueID] = "venueId must be a positive integer"
	}

	start := s.now()
	if raw := strings.TrimSpace(f.StartTime); raw != "" {
		t, err := domain.ParseShowTime(raw, s.loc)
		if err != nil {
			verr.Fields[domain.FieldStartTime] = "startTime is not a valid date and time"
		}
		start = t
	}

	if len(verr.Fields) > 0 {
		return domain.Show{}, verr
	}
	return domain.Show{ArtistID: artistID, VenueID: venueID, StartTime: start}, nil
}

// check runs the struct tag rules and converts failures to a ValidationError.
func (s *MutationService) check(fields any) error {
	err := s.validate.Struct(fields)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}
	verr := &domain.ValidationError{Fields: make(map[string]string, len(ves))}
	for _, fe := range ves {
		verr.Fields[fe.Field()] = validationMessage(fe)
	}
	return verr
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	default:
		return fe.Field() + " is invalid"
	}
}

func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
