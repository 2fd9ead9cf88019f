package domain

import "strings"

// Field keys accepted from the presentation layer for create and update.
const (
	FieldName               = "name"
	FieldCity               = "city"
	FieldState              = "state"
	FieldAddress            = "address"
	FieldPhone              = "phone"
	FieldImageLink          = "imageLink"
	FieldFacebookLink       = "facebookLink"
	FieldWebsite            = "website"
	FieldGenres             = "genres"
	FieldSeekingFlag        = "seekingFlag"
	FieldSeekingDescription = "seekingDescription"

	FieldArtistID  = "artistId"
	FieldVenueID   = "venueId"
	FieldStartTime = "startTime"
)

// SeekingYes is the only seeking-flag value that maps to true.
const SeekingYes = "Yes"

// VenueFields is the raw venue form as submitted. The validate tags are
// enforced by the mutation service after trimming; widths follow the columns.
type VenueFields struct {
	Name               string `form:"name" validate:"required"`
	City               string `form:"city" validate:"required,max=120"`
	State              string `form:"state" validate:"required,max=120"`
	Address            string `form:"address" validate:"required,max=120"`
	Phone              string `form:"phone" validate:"max=120"`
	ImageLink          string `form:"imageLink" validate:"max=500"`
	FacebookLink       string `form:"facebookLink" validate:"max=120"`
	Website            string `form:"website" validate:"max=120"`
	Genres             []string
	SeekingFlag        string `form:"seekingFlag"`
	SeekingDescription string `form:"seekingDescription" validate:"max=500"`
}

// ArtistFields is the raw artist form as submitted.
type ArtistFields struct {
	Name               string `form:"name" validate:"required"`
	City               string `form:"city" validate:"required,max=120"`
	State              string `form:"state" validate:"required,max=120"`
	Phone              string `form:"phone" validate:"max=120"`
	ImageLink          string `form:"imageLink" validate:"max=500"`
	FacebookLink       string `form:"facebookLink" validate:"max=120"`
	Website            string `form:"website" validate:"max=120"`
	Genres             []string
	SeekingFlag        string `form:"seekingFlag"`
	SeekingDescription string `form:"seekingDescription" validate:"max=500"`
}

// ShowFields is the raw show form as submitted. Ids stay strings until the
// service parses them so parse failures surface as field errors.
type ShowFields struct {
	ArtistID  string `form:"artistId"`
	VenueID   string `form:"venueId"`
	StartTime string `form:"startTime"`
}

// VenueFieldsFromMap builds VenueFields from a plain field map such as url.Values.
func VenueFieldsFromMap(m map[string][]string) VenueFields {
	return VenueFields{
		Name:               first(m, FieldName),
		City:               first(m, FieldCity),
		State:              first(m, FieldState),
		Address:            first(m, FieldAddress),
		Phone:              first(m, FieldPhone),
		ImageLink:          first(m, FieldImageLink),
		FacebookLink:       first(m, FieldFacebookLink),
		Website:            first(m, FieldWebsite),
		Genres:             m[FieldGenres],
		SeekingFlag:        first(m, FieldSeekingFlag),
		SeekingDescription: first(m, FieldSeekingDescription),
	}
}

// ArtistFieldsFromMap builds ArtistFields from a plain field map such as url.Values.
func ArtistFieldsFromMap(m map[string][]string) ArtistFields {
	return ArtistFields{
		Name:               first(m, FieldName),
		City:               first(m, FieldCity),
		State:              first(m, FieldState),
		Phone:              first(m, FieldPhone),
		ImageLink:          first(m, FieldImageLink),
		FacebookLink:       first(m, FieldFacebookLink),
		Website:            first(m, FieldWebsite),
		Genres:             m[FieldGenres],
		SeekingFlag:        first(m, FieldSeekingFlag),
		SeekingDescription: first(m, FieldSeekingDescription),
	}
}

// ShowFieldsFromMap builds ShowFields from a plain field map such as url.Values.
func ShowFieldsFromMap(m map[string][]string) ShowFields {
	return ShowFields{
		ArtistID:  first(m, FieldArtistID),
		VenueID:   first(m, FieldVenueID),
		StartTime: first(m, FieldStartTime),
	}
}

// VenueFieldsOf returns the form representation of an existing venue,
// used to prefill the edit form.
func VenueFieldsOf(v Venue) VenueFields {
	return VenueFields{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		Website:            v.Website,
		Genres:             v.Genres,
		SeekingFlag:        seekingFlag(v.SeekingTalent),
		SeekingDescription: v.SeekingDescription,
	}
}

// ArtistFieldsOf returns the form representation of an existing artist.
func ArtistFieldsOf(a Artist) ArtistFields {
	return ArtistFields{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		Website:            a.Website,
		Genres:             a.Genres,
		SeekingFlag:        seekingFlag(a.SeekingVenue),
		SeekingDescription: a.SeekingDescription,
	}
}

// SplitGenres normalizes submitted genres: each value may itself be a
// comma-joined list. Tags are trimmed and empties dropped; order is kept.
func SplitGenres(values []string) []string {
	out := []string{}
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if t := strings.TrimSpace(part); t != "" {
				out = append(out, t)
			}
		}
	}
	return out
}

func first(m map[string][]string, key string) string {
	if vs := m[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

func seekingFlag(b bool) string {
	if b {
		return SeekingYes
	}
	return "No"
}
