package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	models "courtside/models/postgres"
	"courtside/services/store"
)

// CreatePlayer godoc
// @Summary Create a roster entry
// @Tags players
// @Accept json
// @Produce json
// @Success 201 {object} postgres.Player
// @Failure 400 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /players [post]
func CreatePlayer(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var player models.Player
		if err := c.ShouldBindJSON(&player); err != nil {
			respondBindError(c, "Player", err)
			return
		}
		if err := s.CreatePlayer(&player); err != nil {
			respondStoreError(c, err)
			return
		}
		c.JSON(http.StatusCreated, player)
	}
}

// GetAllPlayers godoc
// @Summary List all roster entries
// @Tags players
// @Produce json
// @Success 200 {array} postgres.Player
// @Router /players [get]
func GetAllPlayers(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		players, err := s.ListPlayers()
		if err != nil {
			respondStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, players)
	}
}

// GetPlayer returns one player with its stat lines (insertion order) and
// injuries preloaded.
func GetPlayer(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		player, err := s.GetPlayer(id)
		if err != nil {
			respondStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, player)
	}
}

// UpdatePlayer binds the request body over the stored row, touches the
// update timestamp and saves.
func UpdatePlayer(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		player, err := s.GetPlayer(id)
		if err != nil {
			respondStoreError(c, err)
			return
		}
		if err := c.ShouldBindJSON(player); err != nil {
			respondBindError(c, "Player", err)
			return
		}
		player.ID = id
		player.Touch()
		if err := s.SavePlayer(player); err != nil {
			respondStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, player)
	}
}

// DeletePlayer godoc
// @Summary Delete a player and everything it owns
// @Description Removes the player plus all of its stat lines and injury records in one transaction
// @Tags players
// @Produce json
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /players/{id} [delete]
func DeletePlayer(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		if err := s.DeletePlayer(id); err != nil {
			respondStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Player deleted"})
	}
}
