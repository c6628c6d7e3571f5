package registry

import "database/sql"

// schemaVersion tracks the runs-table shape; bump and add a migration
// branch in createSchema if the shape ever changes.
const schemaVersion = 1

func createSchema(db *sql.DB) error {
	runsSQL := `
		CREATE TABLE IF NOT EXISTS runs (
			run_id           TEXT PRIMARY KEY,
			task_id          INTEGER NOT NULL,
			config_path      TEXT NOT NULL,
			started_at       TEXT NOT NULL,
			finished_at      TEXT,
			status           TEXT NOT NULL,
			final_theta_json TEXT
		)
	`
	if _, err := db.Exec(runsSQL); err != nil {
		return err
	}

	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_runs_status ON runs(status)`); err != nil {
		return err
	}
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_runs_task ON runs(task_id)`); err != nil {
		return err
	}

	metaSQL := `CREATE TABLE IF NOT EXISTS registry_meta (key TEXT PRIMARY KEY, value TEXT)`
	if _, err := db.Exec(metaSQL); err != nil {
		return err
	}
	_, err := db.Exec(`INSERT OR REPLACE INTO registry_meta (key, value) VALUES ('schema_version', ?)`, schemaVersion)

	return err
}
