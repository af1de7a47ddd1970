package sheet

import (
	"context"
	"database/sql"

	"github.com/sphaleron/json2hmc/pkg/db"
	"github.com/sphaleron/json2hmc/pkg/hmc"

	_ "github.com/mattn/go-sqlite3"
)

// WriteSQLite stores records in the cards table of the SQLite database at
// path, creating it if needed.
func WriteSQLite(ctx context.Context, path string, records []hmc.Record) error {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := db.InitDB(conn); err != nil {
		return err
	}
	return db.ReplaceCards(ctx, conn, records)
}
