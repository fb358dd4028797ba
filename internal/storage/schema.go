// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Nested document shapes (rungs, day logs, plans) live in JSON columns.
package storage

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS children (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		block_order TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS ladders (
		id TEXT PRIMARY KEY,
		child_id TEXT NOT NULL,
		title TEXT NOT NULL,
		stream TEXT NOT NULL,
		rungs TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS milestone_progress (
		child_id TEXT NOT NULL,
		ladder_id TEXT NOT NULL,
		rung_id TEXT NOT NULL,
		status TEXT NOT NULL,
		achieved_at TEXT,
		wins TEXT,
		PRIMARY KEY (child_id, ladder_id, rung_id)
	);

	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		child_id TEXT NOT NULL,
		date TEXT NOT NULL,
		stream_id TEXT NOT NULL,
		ladder_id TEXT NOT NULL,
		target_rung_order INTEGER NOT NULL,
		result TEXT NOT NULL,
		duration_seconds INTEGER,
		supports TEXT,
		notes TEXT,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS day_logs (
		id TEXT PRIMARY KEY,
		child_id TEXT,
		date TEXT NOT NULL,
		data TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS week_plans (
		start_date TEXT PRIMARY KEY,
		end_date TEXT NOT NULL,
		data TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS daily_plans (
		id TEXT PRIMARY KEY,
		child_id TEXT NOT NULL,
		date TEXT NOT NULL,
		data TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_ladders_child ON ladders(child_id);
	CREATE INDEX IF NOT EXISTS idx_sessions_child_date ON sessions(child_id, date DESC);
	CREATE INDEX IF NOT EXISTS idx_sessions_rung ON sessions(ladder_id, target_rung_order, created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_day_logs_child ON day_logs(child_id, date DESC);
	CREATE INDEX IF NOT EXISTS idx_daily_plans_child ON daily_plans(child_id, date DESC);
	`

	_, err := d.db.Exec(schema)
	return err
}
