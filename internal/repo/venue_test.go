package repo_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/fyyur/internal/domain"
	"github.com/pkordes/fyyur/internal/repo"
	"github.com/pkordes/fyyur/testutil"
)

// venueFixture returns a domain.Venue with sensible defaults for use in tests.
// Callers can override individual fields after calling this function.
func venueFixture() domain.Venue {
	return domain.Venue{
		Name:               "The Musical Hop",
		City:               "San Francisco",
		State:              "CA",
		Address:            "1015 Folsom Street",
		Phone:              "123-123-1234",
		ImageLink:          "https://images.example.com/hop.jpg",
		FacebookLink:       "https://www.facebook.com/TheMusicalHop",
		Website:            "https://www.themusicalhop.com",
		Genres:             []string{"Jazz", "Reggae", "Swing", "Classical", "Folk"},
		SeekingTalent:      true,
		SeekingDescription: "We are on the lookout for a local artist to play every two weeks.",
	}
}

func TestVenueRepo_Create(t *testing.T) {
	r := repo.NewVenueRepo(testutil.NewTx(t))
	ctx := context.Background()

	input := venueFixture()
	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.NotZero(t, got.ID, "ID should be store-assigned")
	assert.Equal(t, input.Name, got.Name)
	assert.Equal(t, input.Address, got.Address)
	assert.Equal(t, input.Genres, got.Genres)
	assert.True(t, got.SeekingTalent)
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
}

func TestVenueRepo_Create_GenresWithSpaces(t *testing.T) {
	r := repo.NewVenueRepo(testutil.NewTx(t))
	ctx := context.Background()

	input := venueFixture()
	input.Genres = []string{"Hip Hop", "R&B", "Rock n Roll"}

	created, err := r.Create(ctx, input)
	require.NoError(t, err)

	got, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hip Hop", "R&B", "Rock n Roll"}, got.Genres)
}

func TestVenueRepo_Create_ValueTooLong(t *testing.T) {
	r := repo.NewVenueRepo(testutil.NewTx(t))
	ctx := context.Background()

	input := venueFixture()
	input.City = strings.Repeat("x", 200) // wider than VARCHAR(120)

	_, err := r.Create(ctx, input)

	assert.ErrorIs(t, err, domain.ErrConstraint)
}

func TestVenueRepo_GetByID_NotFound(t *testing.T) {
	r := repo.NewVenueRepo(testutil.NewTx(t))

	_, err := r.GetByID(context.Background(), -1)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVenueRepo_List_OrderedByID(t *testing.T) {
	r := repo.NewVenueRepo(testutil.NewTx(t))
	ctx := context.Background()

	first, err := r.Create(ctx, venueFixture())
	require.NoError(t, err)
	v2 := venueFixture()
	v2.Name = "Park Square Live Music & Coffee"
	second, err := r.Create(ctx, v2)
	require.NoError(t, err)

	venues, err := r.List(ctx)
	require.NoError(t, err)

	var ids []int64
	for _, v := range venues {
		ids = append(ids, v.ID)
	}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)
	assert.IsIncreasing(t, ids)
}

func TestVenueRepo_Search(t *testing.T) {
	r := repo.NewVenueRepo(testutil.NewTx(t))
	ctx := context.Background()

	hop, err := r.Create(ctx, venueFixture())
	require.NoError(t, err)
	v2 := venueFixture()
	v2.Name = "Park Square Live Music & Coffee"
	park, err := r.Create(ctx, v2)
	require.NoError(t, err)

	byHop, err := r.Search(ctx, "hop")
	require.NoError(t, err)
	assert.Equal(t, []int64{hop.ID}, venueIDs(byHop, hop.ID, park.ID))

	byMusic, err := r.Search(ctx, "Music")
	require.NoError(t, err)
	assert.Equal(t, []int64{hop.ID, park.ID}, venueIDs(byMusic, hop.ID, park.ID))
}

func TestVenueRepo_Search_WildcardsAreLiteral(t *testing.T) {
	r := repo.NewVenueRepo(testutil.NewTx(t))
	ctx := context.Background()

	v := venueFixture()
	v.Name = "100% Live"
	pct, err := r.Create(ctx, v)
	require.NoError(t, err)
	other, err := r.Create(ctx, venueFixture())
	require.NoError(t, err)

	got, err := r.Search(ctx, "%")
	require.NoError(t, err)
	assert.Equal(t, []int64{pct.ID}, venueIDs(got, pct.ID, other.ID))

	got, err = r.Search(ctx, "_")
	require.NoError(t, err)
	assert.Empty(t, venueIDs(got, pct.ID, other.ID))
}

func TestVenueRepo_Update_FullReplace(t *testing.T) {
	r := repo.NewVenueRepo(testutil.NewTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, venueFixture())
	require.NoError(t, err)

	created.Name = "The Dueling Pianos Bar"
	created.City = "New York"
	created.State = "NY"
	created.Phone = ""
	created.Genres = []string{"Classical"}
	created.SeekingTalent = false
	created.SeekingDescription = ""

	updated, err := r.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "The Dueling Pianos Bar", updated.Name)
	assert.Equal(t, "New York", updated.City)
	assert.Empty(t, updated.Phone)
	assert.Equal(t, []string{"Classical"}, updated.Genres)
	assert.False(t, updated.SeekingTalent)
	assert.Empty(t, updated.SeekingDescription)
}

func TestVenueRepo_Update_NotFound(t *testing.T) {
	r := repo.NewVenueRepo(testutil.NewTx(t))

	ghost := venueFixture()
	ghost.ID = -42

	_, err := r.Update(context.Background(), ghost)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVenueRepo_Delete_CascadesShows(t *testing.T) {
	tx := testutil.NewTx(t)
	venues := repo.NewVenueRepo(tx)
	artists := repo.NewArtistRepo(tx)
	shows := repo.NewShowRepo(tx)
	ctx := context.Background()

	v, err := venues.Create(ctx, venueFixture())
	require.NoError(t, err)
	a, err := artists.Create(ctx, artistFixture())
	require.NoError(t, err)
	s1, err := shows.Create(ctx, domain.Show{ArtistID: a.ID, VenueID: v.ID, StartTime: pastTime()})
	require.NoError(t, err)
	s2, err := shows.Create(ctx, domain.Show{ArtistID: a.ID, VenueID: v.ID, StartTime: futureTime()})
	require.NoError(t, err)

	require.NoError(t, venues.Delete(ctx, v.ID))

	_, err = venues.GetByID(ctx, v.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "venue should be gone after delete")
	for _, id := range []int64{s1.ID, s2.ID} {
		_, err = shows.GetByID(ctx, id)
		assert.ErrorIs(t, err, domain.ErrNotFound, "show %d should be cascaded", id)
	}
	_, err = artists.GetByID(ctx, a.ID)
	assert.NoError(t, err, "artist must survive venue deletion")
}

func TestVenueRepo_Delete_NotFound(t *testing.T) {
	r := repo.NewVenueRepo(testutil.NewTx(t))

	err := r.Delete(context.Background(), -7)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// venueIDs returns the ids from venues that are among keep, in result order.
// The shared test database may hold rows from other packages, so tests only
// look at the rows they created.
func venueIDs(venues []domain.Venue, keep ...int64) []int64 {
	ids := []int64{}
	for _, v := range venues {
		for _, k := range keep {
			if v.ID == k {
				ids = append(ids, v.ID)
			}
		}
	}
	return ids
}
