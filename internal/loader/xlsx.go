package loader

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"stage-shift/internal/model"
	"stage-shift/pkg/utils"
)

// loadXLSX decodes one worksheet of an Excel workbook. Registration exports
// frequently carry broken optional styling metadata; in lenient mode rows
// that cannot be decoded are skipped with a warning instead of failing the
// whole load. Strict mode fails on the first bad row.
func loadXLSX(ctx context.Context, src model.Source, lenient bool) ([]model.GenericRecord, error) {
	f, err := openWorkbook(src.URL)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := src.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	iter, err := f.Rows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	defer iter.Close()

	var headers []string
	var rows []model.GenericRecord
	skipped := 0

	for iter.Next() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		cols, err := iter.Columns()
		if err != nil {
			if lenient {
				skipped++
				fmt.Printf("⚠️ Skipping unreadable row in sheet %q: %v\n", sheet, err)
				continue
			}
			return nil, fmt.Errorf("failed to read row in sheet %q: %w", sheet, err)
		}

		if headers == nil {
			if emptyRow(cols) {
				continue
			}
			headers = make([]string, len(cols))
			for i, h := range cols {
				headers[i] = cleanHeader(h)
			}
			continue
		}

		recMap := make(model.GenericRecord, len(headers))
		for i, h := range headers {
			if i < len(cols) {
				recMap[h] = utils.ParseValue(cols[i])
			}
		}
		rows = append(rows, recMap)
	}

	if skipped > 0 {
		fmt.Printf("⚠️ Lenient load of sheet %q skipped %d unreadable rows\n", sheet, skipped)
	}
	return rows, nil
}

func openWorkbook(pathOrURL string) (*excelize.File, error) {
	if strings.HasPrefix(pathOrURL, "http") {
		reader, err := open(pathOrURL)
		if err != nil {
			return nil, err
		}
		defer reader.Close()
		f, err := excelize.OpenReader(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to open workbook: %w", err)
		}
		return f, nil
	}
	f, err := excelize.OpenFile(pathOrURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	return f, nil
}

func emptyRow(cols []string) bool {
	for _, c := range cols {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
