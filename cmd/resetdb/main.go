// Drops and recreates the schema. Destructive; development use only.
package main

import (
	pgconfig "courtside/config/postgres"
	"courtside/services/store"
	"log"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	godotenv.Load()

	db, err := pgconfig.ConnectGORM()
	if err != nil {
		log.Fatalf("Error connecting to PostgreSQL: %v", err)
	}

	s := store.New(db)

	if err := s.DropSchema(); err != nil {
		log.Fatalf("Error dropping schema: %v", err)
	}
	if err := s.CreateSchema(); err != nil {
		log.Fatalf("Error creating schema: %v", err)
	}

	log.Println("Database reset.")
}
