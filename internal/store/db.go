package store

import (
	"database/sql"
	"encoding/json"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"stage-shift/internal/model"
)

var db *sql.DB

// InitDB opens the sqlite database and creates the comparison tables.
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	tables := []string{
		`CREATE TABLE IF NOT EXISTS comparisons (
			id TEXT PRIMARY KEY,
			spec TEXT,
			status TEXT,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS comparison_errors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			job_id TEXT,
			error_message TEXT,
			created_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS comparison_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			job_id TEXT,
			stage TEXT,
			level TEXT,
			message TEXT,
			context TEXT,
			created_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS comparison_results (
			job_id TEXT PRIMARY KEY,
			result TEXT,
			created_at DATETIME
		);`,
	}
	for _, table := range tables {
		if _, err := db.Exec(table); err != nil {
			return err
		}
	}
	return nil
}

// SaveComparison stores a new comparison job in pending state.
func SaveComparison(jobID string, spec model.ComparisonJobSpec) error {
	specJSON, err := json.Marshal(spec)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = db.Exec(`INSERT INTO comparisons (id, spec, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		jobID, specJSON, "pending", now, now)
	return err
}

// UpdateComparisonStatus updates a job's status.
func UpdateComparisonStatus(jobID string, status string) error {
	now := time.Now().UTC()
	_, err := db.Exec(`UPDATE comparisons SET status = ?, updated_at = ? WHERE id = ?`, status, now, jobID)
	return err
}

// SaveComparisonError records an error for a job.
func SaveComparisonError(jobID string, err error) error {
	if err == nil {
		return nil
	}
	now := time.Now().UTC()
	_, e := db.Exec(`INSERT INTO comparison_errors (job_id, error_message, created_at) VALUES (?, ?, ?)`,
		jobID, err.Error(), now)
	return e
}

// GetComparisonErrors returns all recorded errors for a job, newest first.
func GetComparisonErrors(jobID string) ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT error_message, created_at FROM comparison_errors WHERE job_id = ? ORDER BY created_at DESC`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var errors []map[string]interface{}
	for rows.Next() {
		var message string
		var createdAt time.Time
		if err := rows.Scan(&message, &createdAt); err != nil {
			return nil, err
		}
		errors = append(errors, map[string]interface{}{
			"message":   message,
			"createdAt": createdAt,
		})
	}
	return errors, rows.Err()
}

// SaveComparisonLog records one structured log line for a job stage.
func SaveComparisonLog(jobID, stage, level, message string, context map[string]interface{}) error {
	contextJSON, err := json.Marshal(context)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	_, err = db.Exec(`INSERT INTO comparison_logs (job_id, stage, level, message, context, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		jobID, stage, level, message, contextJSON, now)
	return err
}

// GetComparisonLogs returns a job's log lines in order.
func GetComparisonLogs(jobID string, limit int) ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT stage, level, message, context, created_at FROM comparison_logs WHERE job_id = ? ORDER BY created_at ASC LIMIT ?`, jobID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []map[string]interface{}
	for rows.Next() {
		var stage, level, message, contextJSON string
		var createdAt time.Time
		if err := rows.Scan(&stage, &level, &message, &contextJSON, &createdAt); err != nil {
			return nil, err
		}
		var context map[string]interface{}
		if err := json.Unmarshal([]byte(contextJSON), &context); err != nil {
			context = nil
		}
		logs = append(logs, map[string]interface{}{
			"stage":     stage,
			"level":     level,
			"message":   message,
			"context":   context,
			"createdAt": createdAt,
		})
	}
	return logs, rows.Err()
}

// ListComparisons returns all comparison jobs with basic info.
func ListComparisons() ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT id, status, created_at, updated_at FROM comparisons ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []map[string]interface{}
	for rows.Next() {
		var id, status string
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&id, &status, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		jobs = append(jobs, map[string]interface{}{
			"id":        id,
			"status":    status,
			"createdAt": createdAt,
			"updatedAt": updatedAt,
		})
	}
	return jobs, rows.Err()
}

// GetComparison fetches one job's spec and status.
func GetComparison(jobID string) (string, model.ComparisonJobSpec, error) {
	var specJSON, status string
	err := db.QueryRow(`SELECT spec, status FROM comparisons WHERE id = ?`, jobID).Scan(&specJSON, &status)
	if err != nil {
		return "", model.ComparisonJobSpec{}, err
	}

	var spec model.ComparisonJobSpec
	if err := json.Unmarshal([]byte(specJSON), &spec); err != nil {
		return "", model.ComparisonJobSpec{}, err
	}
	return status, spec, nil
}

// SaveResult persists the full comparison result for a job, replacing any
// result from an earlier run of the same job.
func SaveResult(jobID string, result *model.ComparisonResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	_, err = db.Exec(`INSERT OR REPLACE INTO comparison_results (job_id, result, created_at) VALUES (?, ?, ?)`,
		jobID, resultJSON, now)
	return err
}

// GetResult fetches a job's comparison result. sql.ErrNoRows when the job
// has not completed yet.
func GetResult(jobID string) (*model.ComparisonResult, error) {
	var resultJSON string
	err := db.QueryRow(`SELECT result FROM comparison_results WHERE job_id = ?`, jobID).Scan(&resultJSON)
	if err != nil {
		return nil, err
	}

	var result model.ComparisonResult
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, err
	}
	return &result, nil
}
