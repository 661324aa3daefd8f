package postgres_test

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"courtside/models/postgres"
)

// openTestDB gives each test an in-memory database with the full schema
// migrated and foreign keys enforced.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	// One connection, or each pooled conn gets its own empty :memory: db
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&postgres.Player{},
		&postgres.Game{},
		&postgres.PlayerGame{},
		&postgres.Injury{},
	))
	return db
}

// installFakeClock replaces the model clock with one that advances a
// second per reading. Restored via t.Cleanup.
func installFakeClock(t *testing.T) {
	t.Helper()
	orig := postgres.Now
	current := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	postgres.Now = func() time.Time {
		current = current.Add(time.Second)
		return current
	}
	t.Cleanup(func() { postgres.Now = orig })
}

func strPtr(s string) *string { return &s }

func TestTimestampsOnCreate(t *testing.T) {
	installFakeClock(t)
	db := openTestDB(t)

	player := postgres.Player{Name: "Test Player"}
	require.NoError(t, db.Create(&player).Error)

	assert.NotEmpty(t, player.CreatedAt)
	assert.Equal(t, player.CreatedAt, player.UpdatedAt)
	// Sortable ISO-8601, no offset suffix
	_, err := time.Parse("2006-01-02T15:04:05.000000", player.CreatedAt)
	assert.NoError(t, err)
}

func TestTouchAdvancesUpdatedAtOnly(t *testing.T) {
	installFakeClock(t)
	db := openTestDB(t)

	player := postgres.Player{Name: "Test Player"}
	require.NoError(t, db.Create(&player).Error)

	created := player.CreatedAt
	updated := player.UpdatedAt

	player.Touch()

	assert.Equal(t, created, player.CreatedAt)
	assert.Greater(t, player.UpdatedAt, updated)

	// Another touch keeps strictly increasing
	prev := player.UpdatedAt
	player.Touch()
	assert.Greater(t, player.UpdatedAt, prev)
}

func TestRequiredFields(t *testing.T) {
	db := openTestDB(t)

	var missing *postgres.MissingFieldError

	err := db.Create(&postgres.Player{}).Error
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "name", missing.Field)

	err = db.Create(&postgres.Game{HomeTeam: "LAL", AwayTeam: "BOS"}).Error
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "date", missing.Field)

	err = db.Create(&postgres.Injury{PlayerID: 1}).Error
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "start", missing.Field)

	err = db.Create(&postgres.PlayerGame{PlayerID: 1}).Error
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "game_id", missing.Field)
}

func TestGameRejectsSameTeams(t *testing.T) {
	db := openTestDB(t)

	err := db.Create(&postgres.Game{Date: "2025-01-01", HomeTeam: "LAL", AwayTeam: "LAL"}).Error
	var invalid *postgres.ValidationError
	assert.ErrorAs(t, err, &invalid)
}

func TestPlayerExternalIDUnique(t *testing.T) {
	db := openTestDB(t)

	first := postgres.Player{Name: "A", ExternalID: strPtr("nba-23")}
	require.NoError(t, db.Create(&first).Error)

	dup := postgres.Player{Name: "B", ExternalID: strPtr("nba-23")}
	err := db.Create(&dup).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// NULL external ids never collide
	for _, name := range []string{"C", "D", "E"} {
		assert.NoError(t, db.Create(&postgres.Player{Name: name}).Error)
	}
}

func TestOneStatLinePerPlayerPerGame(t *testing.T) {
	db := openTestDB(t)

	player := postgres.Player{Name: "A"}
	other := postgres.Player{Name: "B"}
	game := postgres.Game{Date: "2025-01-01", HomeTeam: "X", AwayTeam: "Y"}
	require.NoError(t, db.Create(&player).Error)
	require.NoError(t, db.Create(&other).Error)
	require.NoError(t, db.Create(&game).Error)

	require.NoError(t, db.Create(&postgres.PlayerGame{PlayerID: player.ID, GameID: game.ID}).Error)

	err := db.Create(&postgres.PlayerGame{PlayerID: player.ID, GameID: game.ID}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// Changing the player makes the pair legal again
	assert.NoError(t, db.Create(&postgres.PlayerGame{PlayerID: other.ID, GameID: game.ID}).Error)
}

func TestShootingPercentages(t *testing.T) {
	pg := postgres.PlayerGame{FGMade: 7, FGAttempts: 10}

	got, ok := pg.FGPct()
	require.True(t, ok)
	assert.Equal(t, 0.7, got)

	// Zero attempts is undefined, not 0%
	pg = postgres.PlayerGame{FGMade: 0, FGAttempts: 0}
	_, ok = pg.FGPct()
	assert.False(t, ok)

	ft := postgres.PlayerGame{FTMade: 9, FTAttempts: 12}
	got, ok = ft.FTPct()
	require.True(t, ok)
	assert.Equal(t, 0.75, got)

	empty := postgres.PlayerGame{}
	_, ok = empty.FTPct()
	assert.False(t, ok)
}

func TestPercentagesFollowCounterMutations(t *testing.T) {
	pg := postgres.PlayerGame{FGMade: 5, FGAttempts: 10}

	got, _ := pg.FGPct()
	assert.Equal(t, 0.5, got)

	pg.FGMade = 6
	got, _ = pg.FGPct()
	assert.Equal(t, 0.6, got)
}
