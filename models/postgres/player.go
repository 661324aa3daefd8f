package postgres

import (
	"gorm.io/gorm"
)

/*
 * 'Player' is a roster entry. It owns the player's stat lines and injury
 * records: deleting a player removes both collections with it.
 */
type Player struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	ExternalID *string  `gorm:"size:64;uniqueIndex" json:"external_id,omitempty"`
	Name       string   `gorm:"size:100;not null" json:"name"`
	Team       *string  `gorm:"size:10" json:"team,omitempty"`
	Position   *string  `gorm:"size:10" json:"position,omitempty"`
	Active     *bool    `gorm:"not null" json:"active"`
	HeightIn   *float64 `json:"height_in,omitempty"`
	WeightLb   *float64 `json:"weight_lb,omitempty"`
	Timestamps `gorm:"embedded"`

	// Relationships
	Games    []PlayerGame `gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE" json:"games,omitempty"`
	Injuries []Injury     `gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE" json:"injuries,omitempty"`
}

func (Player) TableName() string {
	return "players"
}

// Validate checks the required fields before the row is written.
func (p *Player) Validate() error {
	if p.Name == "" {
		return &MissingFieldError{Entity: "Player", Field: "name"}
	}
	return nil
}

func (p *Player) BeforeCreate(tx *gorm.DB) error {
	p.stamp()
	// Pointer so an explicit false survives the insert; absent means active
	if p.Active == nil {
		active := true
		p.Active = &active
	}
	return nil
}

func (p *Player) BeforeSave(tx *gorm.DB) error {
	return p.Validate()
}
