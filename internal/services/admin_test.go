package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington/activities/internal/models"
	"github.com/mergington/activities/internal/services"
)

func intp(n int) *int { return &n }

func strp(s string) *string { return &s }

func TestCreateActivity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	v, err := f.catalog.CreateActivity(ctx, services.NewActivity{
		Name:            "  Astronomy Club ",
		Description:     "Stargazing",
		Schedule:        "Fridays, 8:00 PM",
		MaxParticipants: intp(8),
		Category:        strp("technical"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Stargazing", v.Description)
	assert.Empty(t, v.Participants)

	got, err := f.catalog.GetActivity(ctx, "Astronomy Club")
	require.NoError(t, err)
	assert.Equal(t, 8, *got.MaxParticipants)
	assert.Equal(t, "technical", *got.Category)
}

func TestCreateActivity_BlankCategoryStaysNull(t *testing.T) {
	f := newFixture(t)

	v, err := f.catalog.CreateActivity(context.Background(), services.NewActivity{Name: "Garden Club", Category: strp(" ")})
	require.NoError(t, err)
	assert.Nil(t, v.Category)
}

func TestCreateActivity_Invalid(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.catalog.CreateActivity(ctx, services.NewActivity{Name: " "})
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	_, err = f.catalog.CreateActivity(ctx, services.NewActivity{Name: "Zero Club", MaxParticipants: intp(0)})
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	_, err = f.catalog.CreateActivity(ctx, services.NewActivity{Name: "Chess Club"})
	assert.ErrorIs(t, err, services.ErrActivityExists)
}

func TestDeleteActivity_CascadesEnrollments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	conf, err := f.catalog.DeleteActivity(ctx, "Chess Club")
	require.NoError(t, err)
	assert.Equal(t, "Deleted Chess Club and 2 enrollments", conf.Message)

	_, err = f.catalog.GetActivity(ctx, "Chess Club")
	assert.ErrorIs(t, err, services.ErrActivityNotFound)

	var orphans int64
	f.gdb.Model(&models.Participant{}).
		Where("activity_id NOT IN (?)", f.gdb.Model(&models.Activity{}).Select("id")).
		Count(&orphans)
	assert.Zero(t, orphans)

	_, err = f.catalog.DeleteActivity(ctx, "Chess Club")
	assert.ErrorIs(t, err, services.ErrActivityNotFound)
}

func TestRoster(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.ledger.Signup(ctx, "Chess Club", "new@mergington.edu")
	require.NoError(t, err)

	rows, err := f.catalog.Roster(ctx, "Chess Club")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "michael@mergington.edu", rows[0].Email)
	assert.Equal(t, "new@mergington.edu", rows[2].Email)
	assert.Equal(t, "Chess Club", rows[2].Activity)
	assert.False(t, rows[2].SignedUpAt.IsZero())

	_, err = f.catalog.Roster(ctx, "Nope")
	assert.ErrorIs(t, err, services.ErrActivityNotFound)
}

func TestCapacity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.catalog.CreateActivity(ctx, services.NewActivity{Name: "Open Study Hall"})
	require.NoError(t, err)
	_, err = f.ledger.Signup(ctx, "Open Study Hall", "a@mergington.edu")
	require.NoError(t, err)

	rows, err := f.catalog.Capacity(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 28)

	byName := map[string]services.CapacityRow{}
	for _, r := range rows {
		byName[r.Activity] = r
	}

	// Math Club: 2 of 10.
	math := byName["Math Club"]
	assert.EqualValues(t, 2, math.Enrolled)
	require.NotNil(t, math.Available)
	assert.Equal(t, 8, *math.Available)
	require.NotNil(t, math.FillPercent)
	assert.Equal(t, 20, *math.FillPercent)

	open := byName["Open Study Hall"]
	assert.EqualValues(t, 1, open.Enrolled)
	assert.Nil(t, open.Available)
	assert.Nil(t, open.FillPercent)

	for i := 1; i < len(rows); i++ {
		assert.LessOrEqual(t, rows[i-1].Activity, rows[i].Activity)
	}
}
