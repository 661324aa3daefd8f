package postgres

import (
	"gorm.io/gorm"
)

/*
 * 'Injury' is one status report tied to a player. It is created when a
 * status is first seen on a feed and mutated (status, actual_end) as the
 * injury resolves; it is only ever deleted with its owning player.
 */
type Injury struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	PlayerID    uint    `gorm:"not null;index" json:"player_id"`
	Status      *string `gorm:"size:32" json:"status,omitempty"` // "out", "questionable", etc.
	Description *string `gorm:"type:text" json:"description,omitempty"`
	Start       string  `gorm:"size:32;not null" json:"start"`
	ExpectedEnd *string `gorm:"size:32" json:"expected_end,omitempty"`
	ActualEnd   *string `gorm:"size:32" json:"actual_end,omitempty"`
	Source      *string `gorm:"size:255" json:"source,omitempty"` // URL or feed identity
	Timestamps  `gorm:"embedded"`

	// Relationships
	Player *Player `gorm:"foreignKey:PlayerID" json:"-"`
}

func (Injury) TableName() string {
	return "injuries"
}

// Validate checks the required fields before the row is written.
// start/actual_end ordering is deliberately not checked here: both are
// free-text feed instants and callers own that validation.
func (i *Injury) Validate() error {
	switch {
	case i.PlayerID == 0:
		return &MissingFieldError{Entity: "Injury", Field: "player_id"}
	case i.Start == "":
		return &MissingFieldError{Entity: "Injury", Field: "start"}
	}
	return nil
}

func (i *Injury) BeforeCreate(tx *gorm.DB) error {
	i.stamp()
	return nil
}

func (i *Injury) BeforeSave(tx *gorm.DB) error {
	return i.Validate()
}
