package loader

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"stage-shift/internal/model"
	"stage-shift/pkg/utils"
)

// LoadSnapshot decodes one snapshot source into materialized rows. The label
// names the role the snapshot plays in the comparison ("previous" or
// "current") and is carried into every error message.
func LoadSnapshot(ctx context.Context, label string, src model.Source, opts model.Options) (model.Snapshot, error) {
	fmt.Printf("➡️ Loading %s snapshot: %s (%s)\n", label, src.URL, src.Type)

	var (
		rows []model.GenericRecord
		err  error
	)
	switch strings.ToLower(src.Type) {
	case "csv":
		rows, err = loadCSV(ctx, src.URL)
	case "json", "api":
		rows, err = loadJSON(ctx, src.URL)
	case "xlsx", "excel":
		rows, err = loadXLSX(ctx, src, opts.Lenient)
	default:
		err = fmt.Errorf("unknown source type: %s", src.Type)
	}
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to load %s snapshot: %w", label, err)
	}

	fmt.Printf("✅ Loaded %s snapshot: %d rows from %s\n", label, len(rows), src.URL)
	return model.Snapshot{Label: label, Rows: rows}, nil
}

// open returns a reader for a local path or an http(s) URL.
func open(pathOrURL string) (io.ReadCloser, error) {
	if strings.HasPrefix(pathOrURL, "http") {
		resp, err := http.Get(pathOrURL)
		if err != nil {
			return nil, fmt.Errorf("failed to GET %s: %w", pathOrURL, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("GET %s returned %s", pathOrURL, resp.Status)
		}
		return resp.Body, nil
	}
	file, err := os.Open(pathOrURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

func loadCSV(ctx context.Context, pathOrURL string) ([]model.GenericRecord, error) {
	reader, err := open(pathOrURL)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	csvReader := csv.NewReader(reader)
	csvReader.LazyQuotes = true

	headers, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i, h := range headers {
		headers[i] = cleanHeader(h)
	}

	var rows []model.GenericRecord
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		record, err := csvReader.Read()
		if err == io.EOF {
			return rows, nil
		} else if err != nil {
			return nil, fmt.Errorf("CSV read error: %w", err)
		}

		recMap := make(model.GenericRecord, len(headers))
		for i, h := range headers {
			if i < len(record) {
				recMap[h] = utils.ParseValue(record[i])
			}
		}
		rows = append(rows, recMap)
	}
}

func loadJSON(ctx context.Context, pathOrURL string) ([]model.GenericRecord, error) {
	reader, err := open(pathOrURL)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	bodyBytes, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON body: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var raw interface{}
	if err := json.Unmarshal(bodyBytes, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}

	switch data := raw.(type) {
	case []interface{}:
		rows := make([]model.GenericRecord, 0, len(data))
		for _, item := range data {
			if m, ok := item.(map[string]interface{}); ok {
				rows = append(rows, model.GenericRecord(m))
			}
		}
		return rows, nil
	case map[string]interface{}:
		return []model.GenericRecord{model.GenericRecord(data)}, nil
	default:
		return nil, fmt.Errorf("unexpected JSON structure")
	}
}

// cleanHeader trims whitespace and strips stray quotes from a column name.
func cleanHeader(h string) string {
	return strings.ReplaceAll(strings.TrimSpace(h), `"`, "")
}
