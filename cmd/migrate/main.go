package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/localbzz/clientops/ent/generated/migrate"
	"github.com/localbzz/clientops/internal/config"
	"github.com/localbzz/clientops/internal/database"
)

// Applies the schema to the configured database. The server does this on
// startup when AUTO_MIGRATE is set; this command covers deploys where the
// schema is applied out of band.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	handles, err := database.Open(database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer handles.Close()

	log.Printf("Migrating %s on %s:%d...", cfg.Database.DBName, cfg.Database.Host, cfg.Database.Port)
	if err := handles.Ent.Schema.Create(
		context.Background(),
		migrate.WithDropIndex(true),
		migrate.WithDropColumn(true),
		migrate.WithForeignKeys(true),
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("✅ Schema is up to date")
}
