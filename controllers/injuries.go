package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	models "courtside/models/postgres"
	"courtside/services/store"
	"courtside/utils"
)

// CreateInjury records a new status report for a player. There is no
// delete route: injury records only go away with their player.
func CreateInjury(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var injury models.Injury
		if err := c.ShouldBindJSON(&injury); err != nil {
			respondBindError(c, "Injury", err)
			return
		}
		if err := s.CreateInjury(&injury); err != nil {
			respondStoreError(c, err)
			return
		}
		c.JSON(http.StatusCreated, injury)
	}
}

func GetInjury(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		injury, err := s.GetInjury(id)
		if err != nil {
			respondStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, injury)
	}
}

// GetPlayerInjuries godoc
// @Summary List a player's injury records
// @Tags injuries
// @Produce json
// @Success 200 {array} postgres.Injury
// @Failure 404 {object} object{error=string}
// @Router /players/{id}/injuries [get]
func GetPlayerInjuries(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		if err := utils.PlayerExists(s.DB(), id); err != nil {
			respondStoreError(c, err)
			return
		}
		injuries, err := s.ListPlayerInjuries(id)
		if err != nil {
			respondStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, injuries)
	}
}

// UpdateInjury mutates the record as the injury resolves, typically the
// status and actual_end fields.
func UpdateInjury(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		injury, err := s.GetInjury(id)
		if err != nil {
			respondStoreError(c, err)
			return
		}
		if err := c.ShouldBindJSON(injury); err != nil {
			respondBindError(c, "Injury", err)
			return
		}
		injury.ID = id
		injury.Touch()
		if err := s.SaveInjury(injury); err != nil {
			respondStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, injury)
	}
}
