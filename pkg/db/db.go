package db

import (
	"database/sql"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

const migrationsSQL = `
CREATE TABLE IF NOT EXISTS cards (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	mana             INTEGER NOT NULL,
	name             TEXT NOT NULL,
	rarity           TEXT NOT NULL,
	collection       TEXT NOT NULL,
	class            TEXT NOT NULL,
	type             TEXT NOT NULL,
	sub_type         TEXT,
	atk              INTEGER,
	hp               INTEGER,
	card_text        TEXT,
	keywords         TEXT,
	format           TEXT NOT NULL,
	rarity_order     INTEGER NOT NULL,
	collection_order INTEGER NOT NULL,
	class_order      INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_cards_collection ON cards(collection);
`

// InitDB runs migrations on the given DB connection using the embedded SQL.
func InitDB(db *sql.DB) error {
	stmts := strings.Split(migrationsSQL, ";")
	for _, s := range stmts {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}
