// Seeds a demo roster, one game and two stat lines.
package main

import (
	pgconfig "courtside/config/postgres"
	models "courtside/models/postgres"
	"courtside/services/store"
	"log"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func main() {
	godotenv.Load()

	db, err := pgconfig.ConnectGORM()
	if err != nil {
		log.Fatalf("Error connecting to PostgreSQL: %v", err)
	}

	s := store.New(db)

	lebron := &models.Player{
		Name:     "LeBron James",
		Team:     strPtr("LAL"),
		Position: strPtr("F"),
		HeightIn: floatPtr(81),
		WeightLb: floatPtr(250),
	}
	tatum := &models.Player{
		Name:     "Jayson Tatum",
		Team:     strPtr("BOS"),
		Position: strPtr("F"),
		HeightIn: floatPtr(80),
		WeightLb: floatPtr(210),
	}
	for _, p := range []*models.Player{lebron, tatum} {
		if err := s.CreatePlayer(p); err != nil {
			log.Fatalf("Error seeding player %s: %v", p.Name, err)
		}
	}

	game := &models.Game{
		Date:     time.Now().UTC().Format("2006-01-02"),
		HomeTeam: "LAL",
		AwayTeam: "BOS",
		Season:   strPtr("2025-26"),
	}
	if err := s.CreateGame(game); err != nil {
		log.Fatalf("Error seeding game: %v", err)
	}

	lines := []*models.PlayerGame{
		{PlayerID: lebron.ID, GameID: game.ID, Points: 30, Rebounds: 8, Assists: 9},
		{PlayerID: tatum.ID, GameID: game.ID, Points: 28, Rebounds: 7, Assists: 5},
	}
	for _, pg := range lines {
		if err := s.CreateStatLine(pg); err != nil {
			log.Fatalf("Error seeding stat line: %v", err)
		}
	}

	log.Println("Seeded demo data.")
}
