package db_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mergington/activities/internal/db"
	"github.com/mergington/activities/internal/models"
)

func openTemp(t *testing.T) *gorm.DB {
	t.Helper()
	log, _ := test.NewNullLogger()
	gdb, err := db.Open(filepath.Join(t.TempDir(), "test.db"), "silent", log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(gdb) })
	return gdb
}

// TestWALMode verifies that the DSN parameters in db.go enable WAL journal mode.
func TestWALMode(t *testing.T) {
	gdb := openTemp(t)

	var mode string
	gdb.Raw("PRAGMA journal_mode").Scan(&mode)
	assert.Equal(t, "wal", mode)

	var fk int
	gdb.Raw("PRAGMA foreign_keys").Scan(&fk)
	assert.Equal(t, 1, fk)
}

func TestOpen_CreatesIndexes(t *testing.T) {
	gdb := openTemp(t)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)

	found := indexNames(t, sqlDB, "participants")
	for _, want := range []string{"idx_participant_activity_email", "idx_participant_activity_id"} {
		assert.True(t, found[want], "index %q missing from participants; found: %v", want, found)
	}
}

func TestUniqueEnrollmentConstraint(t *testing.T) {
	gdb := openTemp(t)

	act := models.Activity{Name: "Chess Club"}
	require.NoError(t, gdb.Create(&act).Error)
	require.NoError(t, gdb.Create(&models.Participant{Email: "a@mergington.edu", ActivityID: act.ID}).Error)

	err := gdb.Create(&models.Participant{Email: "a@mergington.edu", ActivityID: act.ID}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestDeleteActivityCascades(t *testing.T) {
	gdb := openTemp(t)

	act := models.Activity{Name: "Chess Club"}
	require.NoError(t, gdb.Create(&act).Error)
	require.NoError(t, gdb.Create(&models.Participant{Email: "a@mergington.edu", ActivityID: act.ID}).Error)

	require.NoError(t, gdb.Delete(&act).Error)

	var n int64
	gdb.Model(&models.Participant{}).Count(&n)
	assert.Zero(t, n)
}

func TestSeed_EmptyDatabase(t *testing.T) {
	gdb := openTemp(t)
	log, _ := test.NewNullLogger()

	seeded, err := db.Seed(context.Background(), gdb, db.MergingtonCatalog, log)
	require.NoError(t, err)
	assert.True(t, seeded)

	var acts int64
	gdb.Model(&models.Activity{}).Count(&acts)
	assert.EqualValues(t, len(db.MergingtonCatalog), acts)

	want := 0
	for _, s := range db.MergingtonCatalog {
		want += len(s.Participants)
	}
	var parts int64
	gdb.Model(&models.Participant{}).Count(&parts)
	assert.EqualValues(t, want, parts)

	var robotics models.Activity
	require.NoError(t, gdb.Where("name = ?", "Robotics Club").First(&robotics).Error)
	assert.Nil(t, robotics.Category, "uncategorized activities keep a null category")

	var chess models.Activity
	require.NoError(t, gdb.Where("name = ?", "Chess Club").First(&chess).Error)
	require.NotNil(t, chess.Category)
	assert.Equal(t, "non-technical", *chess.Category)
	require.NotNil(t, chess.MaxParticipants)
	assert.Equal(t, 12, *chess.MaxParticipants)
}

func TestSeed_SkipsWhenPopulated(t *testing.T) {
	gdb := openTemp(t)
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	require.NoError(t, gdb.Create(&models.Activity{Name: "Existing Club"}).Error)

	seeded, err := db.Seed(context.Background(), gdb, db.MergingtonCatalog, log)
	require.NoError(t, err)
	assert.False(t, seeded)

	var acts int64
	gdb.Model(&models.Activity{}).Count(&acts)
	assert.EqualValues(t, 1, acts)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "activities present, seeding skipped", hook.LastEntry().Message)
}

func TestSeed_Idempotent(t *testing.T) {
	gdb := openTemp(t)
	log, _ := test.NewNullLogger()

	_, err := db.Seed(context.Background(), gdb, db.MergingtonCatalog, log)
	require.NoError(t, err)
	seeded, err := db.Seed(context.Background(), gdb, db.MergingtonCatalog, log)
	require.NoError(t, err)
	assert.False(t, seeded)

	var acts int64
	gdb.Model(&models.Activity{}).Count(&acts)
	assert.EqualValues(t, len(db.MergingtonCatalog), acts)
}

func indexNames(t *testing.T, sqlDB *sql.DB, table string) map[string]bool {
	t.Helper()
	rows, err := sqlDB.Query("PRAGMA index_list(" + table + ")")
	require.NoError(t, err)
	defer rows.Close()

	out := make(map[string]bool)
	for rows.Next() {
		var seq int
		var name string
		var unique bool
		var origin, partial string
		require.NoError(t, rows.Scan(&seq, &name, &unique, &origin, &partial))
		out[name] = true
	}
	return out
}
