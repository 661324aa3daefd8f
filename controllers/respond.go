package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	models "courtside/models/postgres"
	"courtside/services/store"
)

// idParam parses the :id path segment, answering 400 itself on garbage.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// respondBindError maps a JSON binding failure to 400. Non-numeric input
// bound into a numeric column is reported as a type mismatch naming the
// field.
func respondBindError(c *gin.Context, entity string, err error) {
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) {
		mismatch := &models.TypeMismatchError{Entity: entity, Field: ute.Field, Value: ute.Value}
		c.JSON(http.StatusBadRequest, gin.H{"error": mismatch.Error()})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// respondStoreError maps the store taxonomy to status codes: missing
// rows to 404, constraint and concurrency rejections to 409, validation
// to 400, anything else to a generic 500.
func respondStoreError(c *gin.Context, err error) {
	var (
		notFound *store.NotFoundError
		unique   *store.UniqueConstraintError
		fk       *store.ForeignKeyError
		conflict *store.ConflictError
		missing  *models.MissingFieldError
		invalid  *models.ValidationError
	)
	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &unique), errors.As(err, &fk), errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &missing), errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
	}
}

// Ping godoc
// @Summary Liveness check
// @Produce json
// @Success 200 {object} object{message=string}
// @Router /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
