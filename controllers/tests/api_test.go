package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"courtside/routes"
	"courtside/services/store"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	s := store.New(db)
	require.NoError(t, s.CreateSchema())

	router := gin.New()
	routes.SetupRoutes(router, s)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestPing(t *testing.T) {
	router := newTestRouter(t)
	w := doJSON(t, router, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", decode(t, w)["message"])
}

func TestPlayerCRUD(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/players", gin.H{
		"name": "LeBron James", "team": "LAL", "position": "F",
		"height_in": 81, "weight_lb": 250,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode(t, w)
	id := uint(created["id"].(float64))
	assert.Equal(t, true, created["active"])
	assert.NotEmpty(t, created["created_at"])

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/players/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "LeBron James", decode(t, w)["name"])

	w = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/players/%d", id), gin.H{"team": "MIA"})
	require.Equal(t, http.StatusOK, w.Code)
	patched := decode(t, w)
	assert.Equal(t, "MIA", patched["team"])
	assert.Equal(t, "LeBron James", patched["name"])

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/players/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/players/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreatePlayerErrors(t *testing.T) {
	router := newTestRouter(t)

	// Missing required field
	w := doJSON(t, router, http.MethodPost, "/players", gin.H{"team": "LAL"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Non-numeric input for a numeric column
	w = doJSON(t, router, http.MethodPost, "/players", gin.H{"name": "A", "height_in": "tall"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["error"], "height_in")

	// Duplicate external id
	w = doJSON(t, router, http.MethodPost, "/players", gin.H{"name": "A", "external_id": "nba-1"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, router, http.MethodPost, "/players", gin.H{"name": "B", "external_id": "nba-1"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestStatLinesWithDerivedPercentages(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/players", gin.H{"name": "A"})
	require.Equal(t, http.StatusCreated, w.Code)
	playerA := uint(decode(t, w)["id"].(float64))

	w = doJSON(t, router, http.MethodPost, "/players", gin.H{"name": "B"})
	require.Equal(t, http.StatusCreated, w.Code)
	playerB := uint(decode(t, w)["id"].(float64))

	w = doJSON(t, router, http.MethodPost, "/games", gin.H{
		"date": "2025-01-01", "home_team": "X", "away_team": "Y",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	game := uint(decode(t, w)["id"].(float64))

	w = doJSON(t, router, http.MethodPost, "/stats", gin.H{
		"player_id": playerA, "game_id": game,
		"points": 30, "fg_made": 10, "fg_attempts": 20,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	lineA := decode(t, w)
	assert.Equal(t, 0.5, lineA["fg_pct"])

	w = doJSON(t, router, http.MethodPost, "/stats", gin.H{
		"player_id": playerB, "game_id": game, "points": 28,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	lineB := decode(t, w)
	// No attempts: null, not zero
	assert.Nil(t, lineB["fg_pct"])
	assert.Nil(t, lineB["ft_pct"])

	// Second line for the same (player, game) pair is rejected
	w = doJSON(t, router, http.MethodPost, "/stats", gin.H{"player_id": playerA, "game_id": game})
	assert.Equal(t, http.StatusConflict, w.Code)

	// A line against a player that does not exist is rejected
	w = doJSON(t, router, http.MethodPost, "/stats", gin.H{"player_id": 999, "game_id": game})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/games/%d/stats", game), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var lines []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lines))
	assert.Len(t, lines, 2)

	// Deleting the game takes both lines with it
	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/games/%d", game), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/players/%d/stats", playerA), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lines))
	assert.Len(t, lines, 0)
}

func TestInjuryRoutes(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/players", gin.H{"name": "A"})
	require.Equal(t, http.StatusCreated, w.Code)
	player := uint(decode(t, w)["id"].(float64))

	w = doJSON(t, router, http.MethodPost, "/injuries", gin.H{
		"player_id": player, "start": "2025-01-05", "status": "questionable",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	injury := uint(decode(t, w)["id"].(float64))

	w = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/injuries/%d", injury), gin.H{
		"status": "out", "actual_end": "2025-01-20",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "out", decode(t, w)["status"])

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/players/%d/injuries", player), nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Listing injuries for a player that does not exist is a 404, not
	// an empty list
	w = doJSON(t, router, http.MethodGet, "/players/999/injuries", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGameValidation(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/games", gin.H{
		"date": "2025-01-01", "home_team": "LAL", "away_team": "LAL",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/games", gin.H{"home_team": "LAL", "away_team": "BOS"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
