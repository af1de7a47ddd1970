package sheet

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/sphaleron/json2hmc/pkg/hmc"
)

// WriteCSV writes the HMC table as comma separated values.
func WriteCSV(path string, records []hmc.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Headers); err != nil {
		return err
	}
	for _, rec := range records {
		if err := w.Write(csvRow(rec)); err != nil {
			return fmt.Errorf("row for %q: %w", rec.Name, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func csvRow(rec hmc.Record) []string {
	row := Row(rec)
	out := make([]string, len(row))
	for i, v := range row {
		switch v := v.(type) {
		case nil:
		case int:
			out[i] = strconv.Itoa(v)
		case string:
			out[i] = v
		default:
			out[i] = fmt.Sprint(v)
		}
	}
	return out
}
