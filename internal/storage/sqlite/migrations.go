package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// Draw edges reference people, so people must be created before draw_edges.
const schema = `
CREATE TABLE IF NOT EXISTS events (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    passphrase_hash TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS people (
    id TEXT PRIMARY KEY,
    event_id TEXT NOT NULL,
    family_id TEXT NOT NULL,
    name TEXT NOT NULL,
    position INTEGER NOT NULL,
    FOREIGN KEY (event_id) REFERENCES events(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS draws (
    id TEXT PRIMARY KEY,
    event_id TEXT NOT NULL,
    attempts INTEGER NOT NULL,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (event_id) REFERENCES events(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS draw_edges (
    draw_id TEXT NOT NULL,
    giver_id TEXT NOT NULL,
    receiver_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    PRIMARY KEY (draw_id, giver_id),
    UNIQUE (draw_id, receiver_id),
    FOREIGN KEY (draw_id) REFERENCES draws(id) ON DELETE CASCADE,
    FOREIGN KEY (giver_id) REFERENCES people(id) ON DELETE CASCADE,
    FOREIGN KEY (receiver_id) REFERENCES people(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_people_event_id ON people(event_id);
CREATE INDEX IF NOT EXISTS idx_draws_event_id ON draws(event_id);
CREATE INDEX IF NOT EXISTS idx_draw_edges_draw_id ON draw_edges(draw_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
