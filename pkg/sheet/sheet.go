// Package sheet writes HMC records in the column layout of the Hearthstone
// Master Collection spreadsheet.
package sheet

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sphaleron/json2hmc/pkg/hmc"
)

// Format is an output file format.
type Format string

const (
	FormatXLSX   Format = "xlsx"
	FormatCSV    Format = "csv"
	FormatSQLite Format = "sqlite"
)

// Headers is the HMC header row. Empty names are spacer columns; the columns
// between Class and Type and after Format are filled in by hand in HMC.
var Headers = []string{
	"", "Mana", "Name", "Rarity", "Collection", "Class", "Normal", "Golden",
	"1st Copy", "2nd Copy", "Type", "Sub-Type", "ATK", "HP", "Card Text",
	"Keywords", "Format", "N-SB-Lookup", "G-SB-Lookup", "Tier List", "",
	"#Rarity", "#Collection", "#Class",
}

// Row lays out rec in Headers order. Cells the record has no value for are nil.
func Row(rec hmc.Record) []any {
	row := make([]any, len(Headers))
	for i, h := range Headers {
		row[i] = cell(rec, h)
	}
	return row
}

func cell(rec hmc.Record, column string) any {
	switch column {
	case "Mana":
		return rec.Mana
	case "Name":
		return rec.Name
	case "Rarity":
		return rec.Rarity
	case "Collection":
		return rec.Collection
	case "Class":
		return rec.Class
	case "Type":
		return rec.Type
	case "Sub-Type":
		return derefString(rec.SubType)
	case "ATK":
		return derefInt(rec.Attack)
	case "HP":
		return derefInt(rec.Health)
	case "Card Text":
		return derefString(rec.CardText)
	case "Keywords":
		return derefString(rec.Keywords)
	case "Format":
		return rec.Format
	case "#Rarity":
		return rec.RarityOrder
	case "#Collection":
		return rec.CollectionOrder
	case "#Class":
		return rec.ClassOrder
	}
	return nil
}

func derefString(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

func derefInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

// NormalizeFormat coerces format names into known formats. An empty name
// is inferred from the extension of path.
func NormalizeFormat(name, path string) (Format, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		normalized = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
	switch normalized {
	case "xlsx", "excel":
		return FormatXLSX, nil
	case "csv":
		return FormatCSV, nil
	case "sqlite", "sqlite3", "db":
		return FormatSQLite, nil
	case "":
		return "", fmt.Errorf("cannot infer output format from %q", path)
	default:
		return "", fmt.Errorf("unsupported output format %q", normalized)
	}
}

// Write renders records to path in the given format, replacing any existing
// file (or table, for SQLite).
func Write(ctx context.Context, path string, format Format, records []hmc.Record) error {
	switch format {
	case FormatXLSX:
		return WriteXLSX(path, records)
	case FormatCSV:
		return WriteCSV(path, records)
	case FormatSQLite:
		return WriteSQLite(ctx, path, records)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
