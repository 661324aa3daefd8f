package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakePgError struct {
	code string
}

func (e *fakePgError) Error() string    { return "pq: " + e.code }
func (e *fakePgError) SQLState() string { return e.code }

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate("Player", "external_id", "", nil))

	err := translate("Player", "external_id", "nba-1", gorm.ErrDuplicatedKey)
	var unique *UniqueConstraintError
	assert.ErrorAs(t, err, &unique)
	assert.Contains(t, err.Error(), "nba-1")

	err = translate("PlayerGame", "player_id, game_id", "", gorm.ErrForeignKeyViolated)
	var fk *ForeignKeyError
	assert.ErrorAs(t, err, &fk)

	// serialization_failure from the engine surfaces as a conflict
	err = translate("Player", "id", "", &fakePgError{code: "40001"})
	var conflict *ConflictError
	assert.ErrorAs(t, err, &conflict)

	// deadlock_detected too
	err = translate("Player", "id", "", &fakePgError{code: "40P01"})
	assert.ErrorAs(t, err, &conflict)

	// anything else passes through untouched
	sentinel := errors.New("disk on fire")
	assert.Equal(t, sentinel, translate("Player", "id", "", sentinel))
}
