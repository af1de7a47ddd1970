package sheet

import (
	"fmt"

	"github.com/sphaleron/json2hmc/pkg/hmc"
	"github.com/xuri/excelize/v2"
)

// SheetName matches the default worksheet name HMC was built with.
const SheetName = "Sheet"

// WriteXLSX writes a workbook with a header row followed by one row per record.
func WriteXLSX(path string, records []hmc.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	header := make([]any, len(Headers))
	for i, h := range Headers {
		if h != "" {
			header[i] = h
		}
	}
	if err := setRow(f, 1, header); err != nil {
		return err
	}
	for i, rec := range records {
		if err := setRow(f, i+2, Row(rec)); err != nil {
			return fmt.Errorf("row for %q: %w", rec.Name, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func setRow(f *excelize.File, n int, row []any) error {
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return err
	}
	return f.SetSheetRow(SheetName, cell, &row)
}
