package main

import (
	"context"
	"database/sql"
	"log"

	"resumind-backend/internal/shared/config"
	"resumind-backend/internal/shared/server"
	"resumind-backend/internal/shared/storage/db"
	"resumind-backend/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	telemetry.SetNoiseFilter(telemetry.NewNoiseFilter(cfg.LogSuppress))

	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		ctx := context.Background()
		opts := db.OptionsFromEnv(db.DefaultServerOptions())
		conn, err := db.Connect(ctx, cfg.DatabaseURL, opts)
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else if err := db.RunMigrations(ctx, conn); err != nil {
			log.Printf("failed to run migrations, falling back to memory: %v", err)
			conn.Close()
		} else {
			sqlDB = conn
		}
	}

	r := server.NewRouter(cfg, sqlDB)

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
