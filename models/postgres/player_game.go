package postgres

import (
	"gorm.io/gorm"
)

/*
 * 'PlayerGame' is one player's statistical line for one game, the fact
 * table of the model. The named unique index keeps a player to at most
 * one line per game; both foreign keys cascade, so a line never outlives
 * its player or its game.
 */
type PlayerGame struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	GameID   uint `gorm:"not null;uniqueIndex:uq_player_game_once,priority:2" json:"game_id"`
	PlayerID uint `gorm:"not null;uniqueIndex:uq_player_game_once,priority:1" json:"player_id"`

	Minutes    *float64 `json:"minutes,omitempty"` // decimal minutes
	Points     int      `gorm:"not null;default:0" json:"points"`
	Assists    int      `gorm:"not null;default:0" json:"assists"`
	Rebounds   int      `gorm:"not null;default:0" json:"rebounds"`
	Steals     int      `gorm:"not null;default:0" json:"steals"`
	Blocks     int      `gorm:"not null;default:0" json:"blocks"`
	FGAttempts int      `gorm:"column:fg_attempts;not null;default:0" json:"fg_attempts"`
	FGMade     int      `gorm:"column:fg_made;not null;default:0" json:"fg_made"`
	FTAttempts int      `gorm:"column:ft_attempts;not null;default:0" json:"ft_attempts"`
	FTMade     int      `gorm:"column:ft_made;not null;default:0" json:"ft_made"`
	ThreesMade int      `gorm:"not null;default:0" json:"threes_made"`
	Turnovers  int      `gorm:"not null;default:0" json:"turnovers"`
	PlusMinus  *int     `json:"plus_minus,omitempty"` // may be negative
	Fouls      int      `gorm:"not null;default:0" json:"fouls"`
	Started    bool     `gorm:"not null;default:false" json:"started"`
	Timestamps `gorm:"embedded"`

	// Relationships
	Player *Player `gorm:"foreignKey:PlayerID" json:"-"`
	Game   *Game   `gorm:"foreignKey:GameID" json:"-"`
}

func (PlayerGame) TableName() string {
	return "player_games"
}

// Validate checks the required fields before the row is written.
func (pg *PlayerGame) Validate() error {
	switch {
	case pg.PlayerID == 0:
		return &MissingFieldError{Entity: "PlayerGame", Field: "player_id"}
	case pg.GameID == 0:
		return &MissingFieldError{Entity: "PlayerGame", Field: "game_id"}
	}
	return nil
}

func (pg *PlayerGame) BeforeCreate(tx *gorm.DB) error {
	pg.stamp()
	return nil
}

func (pg *PlayerGame) BeforeSave(tx *gorm.DB) error {
	return pg.Validate()
}

// FGPct returns the field-goal percentage as a ratio in [0,1]. The
// second return is false when no shots were attempted: zero attempts is
// not the same thing as shooting 0%.
func (pg *PlayerGame) FGPct() (float64, bool) {
	if pg.FGAttempts <= 0 {
		return 0, false
	}
	return float64(pg.FGMade) / float64(pg.FGAttempts), true
}

// FTPct is FGPct over the free-throw counters.
func (pg *PlayerGame) FTPct() (float64, bool) {
	if pg.FTAttempts <= 0 {
		return 0, false
	}
	return float64(pg.FTMade) / float64(pg.FTAttempts), true
}
