package main

import (
	"database/sql"
	"os"

	"github.com/pcshop/storefront/internal/catalog/domain"
	"github.com/pcshop/storefront/pkg/database"
	"github.com/pcshop/storefront/pkg/logger"
)

// Backfills missing slugs for rows created before slugs were introduced.
// Safe to run repeatedly, rows with a slug are left untouched.
func main() {
	logger.Init("storefront-backfill", true)

	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "storefrontdb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	db, err := database.NewPostgresConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	for _, table := range []string{"categories", "companies", "products"} {
		updated, err := backfillTable(db, table)
		if err != nil {
			logger.Logger.Fatal().Err(err).Str("table", table).Msg("Backfill failed")
		}
		logger.Logger.Info().Str("table", table).Int("updated", updated).Msg("Backfill complete")
	}
}

func backfillTable(db *sql.DB, table string) (int, error) {
	rows, err := db.Query("SELECT id, name FROM " + table + " WHERE slug IS NULL OR slug = ''")
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	type row struct {
		id   int64
		name string
	}

	var pending []row
	for rows.Next() {
		var r row
		if err := rows.Scan(&r.id, &r.name); err != nil {
			return 0, err
		}
		pending = append(pending, r)
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}

	for _, r := range pending {
		if _, err := db.Exec("UPDATE "+table+" SET slug = $1 WHERE id = $2", domain.Slugify(r.name), r.id); err != nil {
			return 0, err
		}
	}

	return len(pending), nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
