// ===============================
// internal/database/migrations.go
// ===============================

package database

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
)

type Migration struct {
	Version string
	Query   string
}

func RunMigrations(db *sqlx.DB) error {
	log.Println("📄 Running media catalog migrations...")

	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			id SERIAL PRIMARY KEY,
			version VARCHAR(255) UNIQUE NOT NULL,
			applied_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	migrations := []Migration{
		{
			Version: "001_initial_catalog_schema",
			Query: `
				-- Ministry video catalog. Date columns stay as text:
				-- legacy rows carry blanks and mixed formats, and the
				-- service layer owns their interpretation.
				CREATE TABLE IF NOT EXISTS catalog_videos (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					title TEXT DEFAULT '',
					language VARCHAR(100) DEFAULT '',
					category VARCHAR(150) DEFAULT '',
					theme VARCHAR(150) DEFAULT '',
					entity_name VARCHAR(255) DEFAULT '',
					entity_region VARCHAR(150) DEFAULT '',
					media_url TEXT DEFAULT '',
					upload_date VARCHAR(50) DEFAULT ''
				);

				-- Date-indexed telecast series
				CREATE TABLE IF NOT EXISTS telecast_episodes (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					title TEXT DEFAULT '',
					media_url TEXT DEFAULT '',
					upload_date VARCHAR(50) DEFAULT '',
					telecast_date VARCHAR(50),
					series_code VARCHAR(100) DEFAULT ''
				);
			`,
		},
		{
			Version: "002_catalog_indexes",
			Query: `
				CREATE INDEX IF NOT EXISTS idx_catalog_category ON catalog_videos(category);
				CREATE INDEX IF NOT EXISTS idx_catalog_language ON catalog_videos(UPPER(TRIM(language)));
				CREATE INDEX IF NOT EXISTS idx_catalog_upload ON catalog_videos(upload_date DESC);
				CREATE INDEX IF NOT EXISTS idx_episodes_telecast ON telecast_episodes(telecast_date);
			`,
		},
	}

	for _, migration := range migrations {
		var count int
		err := db.Get(&count, "SELECT COUNT(*) FROM migrations WHERE version = $1", migration.Version)
		if err != nil {
			return fmt.Errorf("failed to check migration %s: %w", migration.Version, err)
		}
		if count > 0 {
			continue
		}

		log.Printf("   • Applying migration %s...", migration.Version)
		if _, err := db.Exec(migration.Query); err != nil {
			return fmt.Errorf("migration %s failed: %w", migration.Version, err)
		}
		if _, err := db.Exec("INSERT INTO migrations (version) VALUES ($1)", migration.Version); err != nil {
			return fmt.Errorf("failed to record migration %s: %w", migration.Version, err)
		}
	}

	log.Println("✅ Migrations completed")
	return nil
}
