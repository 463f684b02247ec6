package state

import "database/sql"

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS navigation_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			current_path TEXT NOT NULL,
			selected_name TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS play_stats (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			songs_played INTEGER NOT NULL DEFAULT 0
		);

		INSERT INTO play_stats (id, songs_played)
		VALUES (1, 0)
		ON CONFLICT(id) DO NOTHING;
	`)
	return err
}
