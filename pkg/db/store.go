package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/sphaleron/json2hmc/pkg/hmc"
)

// DBExecutor is an interface that allows methods to accept either *sql.DB or *sql.Tx
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

const cardColumns = `mana, name, rarity, collection, class, type, sub_type, atk, hp,
	card_text, keywords, format, rarity_order, collection_order, class_order`

// InsertCard appends one HMC row and returns its id.
func InsertCard(db DBExecutor, rec hmc.Record) (int64, error) {
	if strings.TrimSpace(rec.Name) == "" {
		return 0, fmt.Errorf("card name must be non-empty")
	}
	res, err := db.Exec(`INSERT INTO cards (`+cardColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Mana, rec.Name, rec.Rarity, rec.Collection, rec.Class, rec.Type,
		nullableString(rec.SubType), nullableInt(rec.Attack), nullableInt(rec.Health),
		nullableString(rec.CardText), nullableString(rec.Keywords), rec.Format,
		rec.RarityOrder, rec.CollectionOrder, rec.ClassOrder,
	)
	if err != nil {
		return 0, fmt.Errorf("insert card %q: %w", rec.Name, err)
	}
	return res.LastInsertId()
}

// ReplaceCards swaps the contents of the cards table for records inside one
// transaction. Ids follow the order of records.
func ReplaceCards(ctx context.Context, conn *sql.DB, records []hmc.Record) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // ignored if committed
	}()

	if _, err := tx.Exec(`DELETE FROM cards`); err != nil {
		return err
	}
	// Restart ids so a re-run produces the same table.
	if _, err := tx.Exec(`DELETE FROM sqlite_sequence WHERE name = 'cards'`); err != nil {
		return err
	}
	for _, rec := range records {
		if _, err := InsertCard(tx, rec); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %d cards: %w", len(records), err)
	}
	return nil
}

// CountCards returns the number of stored rows, optionally limited to one
// Collection.
func CountCards(db DBExecutor, collection string) (int, error) {
	var n int
	var err error
	if collection == "" {
		err = db.QueryRow(`SELECT COUNT(*) FROM cards`).Scan(&n)
	} else {
		err = db.QueryRow(`SELECT COUNT(*) FROM cards WHERE collection = ?`, collection).Scan(&n)
	}
	return n, err
}

// ListCards returns all stored rows in insertion order.
func ListCards(db DBExecutor) ([]hmc.Record, error) {
	rows, err := db.Query(`SELECT ` + cardColumns + ` FROM cards ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []hmc.Record
	for rows.Next() {
		var rec hmc.Record
		var subType, text, keywords sql.NullString
		var atk, hp sql.NullInt64
		if err := rows.Scan(&rec.Mana, &rec.Name, &rec.Rarity, &rec.Collection, &rec.Class, &rec.Type,
			&subType, &atk, &hp, &text, &keywords, &rec.Format,
			&rec.RarityOrder, &rec.CollectionOrder, &rec.ClassOrder); err != nil {
			return nil, err
		}
		rec.SubType = fromNullString(subType)
		rec.Attack = fromNullInt(atk)
		rec.Health = fromNullInt(hp)
		rec.CardText = fromNullString(text)
		rec.Keywords = fromNullString(keywords)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// nullableString returns nil for an absent column, else the value.
func nullableString(v *string) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func nullableInt(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func fromNullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func fromNullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}
