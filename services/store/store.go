package store

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	models "courtside/models/postgres"
)

/*
 * 'Store' is the persistence handle for the fantasy schema. It wraps a
 * caller-constructed *gorm.DB (no package-level singleton) and exposes
 * every read/write as an atomic unit of work. Constraint enforcement is
 * the database's job; the store validates required fields up front and
 * translates constraint rejections into the typed errors in errors.go.
 */
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for callers that need raw queries.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// CreateSchema creates or updates the four tables, including the unique
// indexes and ON DELETE CASCADE foreign keys declared on the models.
func (s *Store) CreateSchema() error {
	return s.db.AutoMigrate(
		&models.Player{},
		&models.Game{},
		&models.PlayerGame{},
		&models.Injury{},
	)
}

// DropSchema drops the tables, leaves before roots.
func (s *Store) DropSchema() error {
	return s.db.Migrator().DropTable(
		&models.PlayerGame{},
		&models.Injury{},
		&models.Game{},
		&models.Player{},
	)
}

// ---------------------------------------------------------------------
// Players

func (s *Store) CreatePlayer(p *models.Player) error {
	if err := p.Validate(); err != nil {
		return err
	}
	ext := ""
	if p.ExternalID != nil {
		ext = *p.ExternalID
	}
	return translate("Player", "external_id", ext, s.db.Create(p).Error)
}

func (s *Store) GetPlayer(id uint) (*models.Player, error) {
	var p models.Player
	err := s.db.
		Preload("Games", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Injuries").
		First(&p, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, &NotFoundError{Entity: "Player", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) ListPlayers() ([]models.Player, error) {
	var players []models.Player
	err := s.db.Order("id").Find(&players).Error
	return players, err
}

// SavePlayer persists a mutated player. Callers are expected to have
// called Touch after mutating it.
func (s *Store) SavePlayer(p *models.Player) error {
	ext := ""
	if p.ExternalID != nil {
		ext = *p.ExternalID
	}
	return translate("Player", "external_id", ext, s.db.Omit(clause.Associations).Save(p).Error)
}

// DeletePlayer removes a player and every stat line and injury it owns
// in one transaction, dependents before the parent, so no orphan is ever
// observable.
func (s *Store) DeletePlayer(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var p models.Player
		if err := tx.First(&p, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return &NotFoundError{Entity: "Player", ID: id}
			}
			return err
		}
		if err := tx.Where("player_id = ?", id).Delete(&models.PlayerGame{}).Error; err != nil {
			return translate("PlayerGame", "player_id", "", err)
		}
		if err := tx.Where("player_id = ?", id).Delete(&models.Injury{}).Error; err != nil {
			return translate("Injury", "player_id", "", err)
		}
		return translate("Player", "id", "", tx.Delete(&p).Error)
	})
}

// ---------------------------------------------------------------------
// Games

func (s *Store) CreateGame(g *models.Game) error {
	if err := g.Validate(); err != nil {
		return err
	}
	ext := ""
	if g.ExternalID != nil {
		ext = *g.ExternalID
	}
	return translate("Game", "external_id", ext, s.db.Create(g).Error)
}

func (s *Store) GetGame(id uint) (*models.Game, error) {
	var g models.Game
	err := s.db.
		Preload("PlayerGames", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&g, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, &NotFoundError{Entity: "Game", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *Store) ListGames() ([]models.Game, error) {
	var games []models.Game
	err := s.db.Order("id").Find(&games).Error
	return games, err
}

func (s *Store) SaveGame(g *models.Game) error {
	ext := ""
	if g.ExternalID != nil {
		ext = *g.ExternalID
	}
	return translate("Game", "external_id", ext, s.db.Omit(clause.Associations).Save(g).Error)
}

// DeleteGame removes a game and its stat lines in one transaction,
// dependents first.
func (s *Store) DeleteGame(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var g models.Game
		if err := tx.First(&g, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return &NotFoundError{Entity: "Game", ID: id}
			}
			return err
		}
		if err := tx.Where("game_id = ?", id).Delete(&models.PlayerGame{}).Error; err != nil {
			return translate("PlayerGame", "game_id", "", err)
		}
		return translate("Game", "id", "", tx.Delete(&g).Error)
	})
}

// ---------------------------------------------------------------------
// Injuries

func (s *Store) CreateInjury(i *models.Injury) error {
	if err := i.Validate(); err != nil {
		return err
	}
	return translate("Injury", "player_id", "", s.db.Create(i).Error)
}

func (s *Store) GetInjury(id uint) (*models.Injury, error) {
	var i models.Injury
	err := s.db.First(&i, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, &NotFoundError{Entity: "Injury", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (s *Store) ListPlayerInjuries(playerID uint) ([]models.Injury, error) {
	var injuries []models.Injury
	err := s.db.Where("player_id = ?", playerID).Order("id").Find(&injuries).Error
	return injuries, err
}

func (s *Store) SaveInjury(i *models.Injury) error {
	return translate("Injury", "player_id", "", s.db.Omit(clause.Associations).Save(i).Error)
}

// ---------------------------------------------------------------------
// Stat lines

func (s *Store) CreateStatLine(pg *models.PlayerGame) error {
	if err := pg.Validate(); err != nil {
		return err
	}
	return translate("PlayerGame", "player_id, game_id", "", s.db.Create(pg).Error)
}

func (s *Store) GetStatLine(id uint) (*models.PlayerGame, error) {
	var pg models.PlayerGame
	err := s.db.First(&pg, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, &NotFoundError{Entity: "PlayerGame", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &pg, nil
}

func (s *Store) ListPlayerStatLines(playerID uint) ([]models.PlayerGame, error) {
	var lines []models.PlayerGame
	err := s.db.Where("player_id = ?", playerID).Order("id").Find(&lines).Error
	return lines, err
}

func (s *Store) ListGameStatLines(gameID uint) ([]models.PlayerGame, error) {
	var lines []models.PlayerGame
	err := s.db.Where("game_id = ?", gameID).Order("id").Find(&lines).Error
	return lines, err
}

func (s *Store) SaveStatLine(pg *models.PlayerGame) error {
	return translate("PlayerGame", "player_id, game_id", "", s.db.Omit(clause.Associations).Save(pg).Error)
}

func (s *Store) DeleteStatLine(id uint) error {
	res := s.db.Delete(&models.PlayerGame{}, id)
	if res.Error != nil {
		return translate("PlayerGame", "id", "", res.Error)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "PlayerGame", ID: id}
	}
	return nil
}
