// Command seed migrates the schema and loads the demo catalog into the
// configured MySQL database.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/kynarochlani2006/storefront-api/internal/catalog"
	"github.com/kynarochlani2006/storefront-api/internal/database"
	"github.com/kynarochlani2006/storefront-api/internal/store/mysql"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	ctx := context.Background()

	db, err := database.OpenDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	if err := catalog.Seed(ctx, mysql.New(db)); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}
}
