package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	models "courtside/models/postgres"
	"courtside/services/store"
	"courtside/utils"
)

// StatLineResponse is a stat line plus its derived shooting percentages.
// The percentages are computed on every read and render as null when the
// player attempted no shots.
type StatLineResponse struct {
	models.PlayerGame
	FGPctValue *float64 `json:"fg_pct"`
	FTPctValue *float64 `json:"ft_pct"`
}

func toStatLineResponse(pg models.PlayerGame) StatLineResponse {
	resp := StatLineResponse{PlayerGame: pg}
	if v, ok := pg.FGPct(); ok {
		resp.FGPctValue = &v
	}
	if v, ok := pg.FTPct(); ok {
		resp.FTPctValue = &v
	}
	return resp
}

func toStatLineResponses(lines []models.PlayerGame) []StatLineResponse {
	out := make([]StatLineResponse, 0, len(lines))
	for _, pg := range lines {
		out = append(out, toStatLineResponse(pg))
	}
	return out
}

// CreateStatLine godoc
// @Summary Record a player's stat line for a game
// @Description One line per (player, game) pair; duplicates are rejected
// @Tags stats
// @Accept json
// @Produce json
// @Success 201 {object} controllers.StatLineResponse
// @Failure 400 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /stats [post]
func CreateStatLine(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var line models.PlayerGame
		if err := c.ShouldBindJSON(&line); err != nil {
			respondBindError(c, "PlayerGame", err)
			return
		}
		if err := s.CreateStatLine(&line); err != nil {
			respondStoreError(c, err)
			return
		}
		c.JSON(http.StatusCreated, toStatLineResponse(line))
	}
}

func GetStatLine(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		line, err := s.GetStatLine(id)
		if err != nil {
			respondStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, toStatLineResponse(*line))
	}
}

// GetPlayerStatLines lists a player's lines in insertion order.
func GetPlayerStatLines(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		if err := utils.PlayerExists(s.DB(), id); err != nil {
			respondStoreError(c, err)
			return
		}
		lines, err := s.ListPlayerStatLines(id)
		if err != nil {
			respondStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, toStatLineResponses(lines))
	}
}

// GetGameStatLines lists every line recorded against a game.
func GetGameStatLines(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		if err := utils.GameExists(s.DB(), id); err != nil {
			respondStoreError(c, err)
			return
		}
		lines, err := s.ListGameStatLines(id)
		if err != nil {
			respondStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, toStatLineResponses(lines))
	}
}

// UpdateStatLine applies stat corrections, touching the update stamp.
func UpdateStatLine(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		line, err := s.GetStatLine(id)
		if err != nil {
			respondStoreError(c, err)
			return
		}
		if err := c.ShouldBindJSON(line); err != nil {
			respondBindError(c, "PlayerGame", err)
			return
		}
		line.ID = id
		line.Touch()
		if err := s.SaveStatLine(line); err != nil {
			respondStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, toStatLineResponse(*line))
	}
}

func DeleteStatLine(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		if err := s.DeleteStatLine(id); err != nil {
			respondStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Stat line deleted"})
	}
}
