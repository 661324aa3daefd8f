package postgres

import (
	"gorm.io/gorm"
)

/*
 * 'Game' is a single contest. Scores stay NULL until the game is final.
 * It owns the stat lines recorded against it.
 */
type Game struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	ExternalID *string `gorm:"size:64;uniqueIndex" json:"external_id,omitempty"`
	Season     *string `gorm:"size:20" json:"season,omitempty"`
	Date       string  `gorm:"size:32;not null" json:"date"`
	HomeTeam   string  `gorm:"size:10;not null" json:"home_team"`
	AwayTeam   string  `gorm:"size:10;not null" json:"away_team"`
	HomeScore  *int    `json:"home_score,omitempty"`
	AwayScore  *int    `json:"away_score,omitempty"`
	Timestamps `gorm:"embedded"`

	// Relationships
	PlayerGames []PlayerGame `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE" json:"player_games,omitempty"`
}

func (Game) TableName() string {
	return "games"
}

// Validate checks the required fields before the row is written.
func (g *Game) Validate() error {
	switch {
	case g.Date == "":
		return &MissingFieldError{Entity: "Game", Field: "date"}
	case g.HomeTeam == "":
		return &MissingFieldError{Entity: "Game", Field: "home_team"}
	case g.AwayTeam == "":
		return &MissingFieldError{Entity: "Game", Field: "away_team"}
	}
	return nil
}

func (g *Game) BeforeCreate(tx *gorm.DB) error {
	g.stamp()
	return nil
}

// GORM hook to ensure a team never plays itself
func (g *Game) BeforeSave(tx *gorm.DB) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if g.HomeTeam == g.AwayTeam {
		return &ValidationError{Entity: "Game", Reason: "home_team and away_team must differ"}
	}
	return nil
}
