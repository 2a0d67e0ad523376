package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/kynarochlani2006/storefront-api/internal/auth"
	"github.com/kynarochlani2006/storefront-api/internal/catalog"
	"github.com/kynarochlani2006/storefront-api/internal/database"
	"github.com/kynarochlani2006/storefront-api/internal/handlers"
	"github.com/kynarochlani2006/storefront-api/internal/routes"
	"github.com/kynarochlani2006/storefront-api/internal/store"
	"github.com/kynarochlani2006/storefront-api/internal/store/memory"
	"github.com/kynarochlani2006/storefront-api/internal/store/mysql"
)

func main() {
	// 0. --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	ctx := context.Background()

	// 1. --- Storage ---
	// MySQL when a DSN is configured; otherwise an in-memory store so
	// the API runs with zero infrastructure. Memory mode loses
	// everything on restart and gets the demo catalog seeded.
	var st store.Store
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		db, err := database.OpenDBWithDSN(dsn)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := database.Migrate(ctx, db); err != nil {
			log.Fatalf("Failed to migrate schema: %v", err)
		}
		st = mysql.New(db)
	} else {
		log.Println("WARNING: DB_DSN not set, using in-memory store (data is lost on restart)")
		st = memory.New()
		if err := catalog.Seed(ctx, st); err != nil {
			log.Fatalf("Failed to seed catalog: %v", err)
		}
	}

	// 2. --- Application Setup ---
	app := &handlers.Handlers{
		Store:    st,
		Sessions: auth.NewSessions(st),
	}

	// 3. --- Router Setup ---
	router := routes.SetupRouter(app)

	// 4. --- Start Server ---
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("Starting storefront API server on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
