package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	models "courtside/models/postgres"
	"courtside/services/store"
)

// CreateGame godoc
// @Summary Create a contest
// @Tags games
// @Accept json
// @Produce json
// @Success 201 {object} postgres.Game
// @Failure 400 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /games [post]
func CreateGame(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var game models.Game
		if err := c.ShouldBindJSON(&game); err != nil {
			respondBindError(c, "Game", err)
			return
		}
		if err := s.CreateGame(&game); err != nil {
			respondStoreError(c, err)
			return
		}
		c.JSON(http.StatusCreated, game)
	}
}

func GetAllGames(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		games, err := s.ListGames()
		if err != nil {
			respondStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, games)
	}
}

func GetGame(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		game, err := s.GetGame(id)
		if err != nil {
			respondStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, game)
	}
}

// UpdateGame is how final scores land once a contest completes.
func UpdateGame(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		game, err := s.GetGame(id)
		if err != nil {
			respondStoreError(c, err)
			return
		}
		if err := c.ShouldBindJSON(game); err != nil {
			respondBindError(c, "Game", err)
			return
		}
		game.ID = id
		game.Touch()
		if err := s.SaveGame(game); err != nil {
			respondStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, game)
	}
}

// DeleteGame godoc
// @Summary Delete a game and its stat lines
// @Tags games
// @Produce json
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /games/{id} [delete]
func DeleteGame(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		if err := s.DeleteGame(id); err != nil {
			respondStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Game deleted"})
	}
}
