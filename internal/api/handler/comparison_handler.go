package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"stage-shift/internal/model"
	"stage-shift/internal/pipeline"
	"stage-shift/internal/store"
	"stage-shift/pkg/utils"
)

var outputManager = utils.NewOutputManager("output")

// Init points exports and downloads at the configured output directory.
func Init(outputDir string) {
	outputManager = utils.NewOutputManager(outputDir)
}

// jobIDFromPath extracts the job ID between the API prefix and an optional
// suffix like "/results". Empty when the path does not fit.
func jobIDFromPath(path, suffix string) string {
	const prefix = "/api/v1/comparisons/"
	if !strings.HasPrefix(path, prefix) || !strings.HasSuffix(path, suffix) {
		return ""
	}
	return path[len(prefix) : len(path)-len(suffix)]
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

// CreateComparison creates and starts a new snapshot comparison job
// @Summary Create a comparison
// @Description Compare a previous and a current registrant snapshot and compute the stage transition tables
// @Tags comparisons
// @Accept json
// @Produce json
// @Param comparison body model.ComparisonJobSpec true "Comparison configuration"
// @Success 200 {object} map[string]interface{} "Comparison created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request payload"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /comparisons [post]
func CreateComparison(w http.ResponseWriter, r *http.Request) {
	var spec model.ComparisonJobSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if spec.Previous.URL == "" || spec.Current.URL == "" {
		http.Error(w, "Both previous and current sources are required", http.StatusBadRequest)
		return
	}

	jobID := uuid.New().String()
	if err := store.SaveComparison(jobID, spec); err != nil {
		http.Error(w, "Failed to save comparison", http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), utils.ParseDuration(spec.JobTimeout))
	go func() {
		defer cancel()
		if err := pipeline.Run(ctx, jobID, spec, outputManager); err != nil {
			fmt.Printf("❌ Comparison job %s failed: %v\n", jobID, err)
		}
	}()

	writeJSON(w, map[string]interface{}{
		"message":   "Comparison created successfully!",
		"jobID":     jobID,
		"status":    "pending",
		"createdAt": time.Now().UTC(),
	})
}

// ListComparisons retrieves all comparison jobs
// @Summary List comparisons
// @Description Get all comparison jobs with their current status
// @Tags comparisons
// @Produce json
// @Success 200 {array} map[string]interface{} "List of comparisons"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /comparisons [get]
func ListComparisons(w http.ResponseWriter, r *http.Request) {
	jobs, err := store.ListComparisons()
	if err != nil {
		http.Error(w, "Failed to fetch comparisons", http.StatusInternalServerError)
		return
	}
	writeJSON(w, jobs)
}

// GetComparison retrieves one comparison job
// @Summary Get comparison
// @Description Retrieve the spec and status of one comparison job
// @Tags comparisons
// @Produce json
// @Param id path string true "Comparison ID"
// @Success 200 {object} map[string]interface{} "Comparison details"
// @Failure 404 {object} map[string]interface{} "Comparison not found"
// @Router /comparisons/{id} [get]
func GetComparison(w http.ResponseWriter, r *http.Request) {
	jobID := jobIDFromPath(r.URL.Path, "")
	if jobID == "" {
		http.Error(w, "Job ID is required", http.StatusBadRequest)
		return
	}

	status, spec, err := store.GetComparison(jobID)
	if err != nil {
		http.Error(w, "Comparison not found", http.StatusNotFound)
		return
	}
	writeJSON(w, map[string]interface{}{
		"id":     jobID,
		"spec":   spec,
		"status": status,
	})
}

// GetComparisonResults retrieves the three result tables for a job
// @Summary Get comparison results
// @Description Retrieve the summary, transition pair list and transition matrix of a completed comparison
// @Tags comparisons
// @Produce json
// @Param id path string true "Comparison ID"
// @Success 200 {object} map[string]interface{} "Comparison results"
// @Failure 404 {object} map[string]interface{} "Results not available"
// @Router /comparisons/{id}/results [get]
func GetComparisonResults(w http.ResponseWriter, r *http.Request) {
	jobID := jobIDFromPath(r.URL.Path, "/results")
	if jobID == "" {
		http.Error(w, "Job ID is required", http.StatusBadRequest)
		return
	}

	result, err := store.GetResult(jobID)
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, "Results not available yet", http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, "Failed to retrieve results", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]interface{}{
		"job_id": jobID,
		"result": result,
	})
}

// GetComparisonSummary retrieves just the registration summary table
// @Summary Get comparison summary
// @Description Retrieve the headline metrics of a completed comparison
// @Tags comparisons
// @Produce json
// @Param id path string true "Comparison ID"
// @Success 200 {object} map[string]interface{} "Registration summary"
// @Failure 404 {object} map[string]interface{} "Results not available"
// @Router /comparisons/{id}/summary [get]
func GetComparisonSummary(w http.ResponseWriter, r *http.Request) {
	jobID := jobIDFromPath(r.URL.Path, "/summary")
	if jobID == "" {
		http.Error(w, "Job ID is required", http.StatusBadRequest)
		return
	}

	result, err := store.GetResult(jobID)
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, "Results not available yet", http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, "Failed to retrieve results", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]interface{}{
		"job_id":  jobID,
		"summary": result.Summary,
	})
}

// GetComparisonErrors retrieves all errors recorded for a job
// @Summary Get comparison errors
// @Description Retrieve every error recorded while running a comparison job
// @Tags comparisons
// @Produce json
// @Param id path string true "Comparison ID"
// @Success 200 {object} map[string]interface{} "Comparison errors"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /comparisons/{id}/errors [get]
func GetComparisonErrors(w http.ResponseWriter, r *http.Request) {
	jobID := jobIDFromPath(r.URL.Path, "/errors")
	if jobID == "" {
		http.Error(w, "Job ID is required", http.StatusBadRequest)
		return
	}

	jobErrors, err := store.GetComparisonErrors(jobID)
	if err != nil {
		http.Error(w, "Failed to retrieve errors", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]interface{}{
		"job_id": jobID,
		"errors": jobErrors,
		"count":  len(jobErrors),
	})
}

// GetComparisonLogs retrieves a job's stage logs
// @Summary Get comparison logs
// @Description Retrieve the per-stage log lines of a comparison job
// @Tags comparisons
// @Produce json
// @Param id path string true "Comparison ID"
// @Param limit query int false "Maximum log lines" default(100)
// @Success 200 {object} map[string]interface{} "Comparison logs"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /comparisons/{id}/logs [get]
func GetComparisonLogs(w http.ResponseWriter, r *http.Request) {
	jobID := jobIDFromPath(r.URL.Path, "/logs")
	if jobID == "" {
		http.Error(w, "Job ID is required", http.StatusBadRequest)
		return
	}

	limit := 100
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	logs, err := store.GetComparisonLogs(jobID, limit)
	if err != nil {
		http.Error(w, "Failed to retrieve logs", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]interface{}{
		"job_id": jobID,
		"logs":   logs,
		"count":  len(logs),
	})
}

// RetryComparison re-runs a comparison job with its stored spec
// @Summary Retry comparison
// @Description Re-run a comparison job with the same configuration
// @Tags comparisons
// @Produce json
// @Param id path string true "Comparison ID"
// @Success 200 {object} map[string]interface{} "Retry initiated"
// @Failure 404 {object} map[string]interface{} "Comparison not found"
// @Router /comparisons/{id}/retry [post]
func RetryComparison(w http.ResponseWriter, r *http.Request) {
	jobID := jobIDFromPath(r.URL.Path, "/retry")
	if jobID == "" {
		http.Error(w, "Job ID is required", http.StatusBadRequest)
		return
	}

	_, spec, err := store.GetComparison(jobID)
	if err != nil {
		http.Error(w, "Comparison not found", http.StatusNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), utils.ParseDuration(spec.JobTimeout))
	go func() {
		defer cancel()
		if err := pipeline.Run(ctx, jobID, spec, outputManager); err != nil {
			fmt.Printf("❌ Retry of comparison %s failed: %v\n", jobID, err)
		}
	}()

	writeJSON(w, map[string]interface{}{
		"message": "Retry initiated",
		"job_id":  jobID,
		"status":  "retrying",
	})
}

// DownloadExport serves one exported report file
// @Summary Download export
// @Description Download one exported report file of a comparison job
// @Tags comparisons
// @Produce octet-stream
// @Param id path string true "Comparison ID"
// @Param file path string true "Export file name"
// @Success 200 {file} file "Report file"
// @Failure 404 {object} map[string]interface{} "File not found"
// @Router /download/{id}/{file} [get]
func DownloadExport(w http.ResponseWriter, r *http.Request) {
	const prefix = "/api/v1/download/"
	rest := strings.TrimPrefix(r.URL.Path, prefix)
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		http.Error(w, "Job ID and file name are required", http.StatusBadRequest)
		return
	}

	// Base names only, so the path can never escape the job directory.
	path := filepath.Join(outputManager.BaseOutputDir, filepath.Base(parts[0]), filepath.Base(parts[1]))
	if _, err := os.Stat(path); err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	http.ServeFile(w, r, path)
}
