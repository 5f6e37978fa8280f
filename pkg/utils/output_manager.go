package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputManager organizes exported report files under per-job directories.
type OutputManager struct {
	BaseOutputDir string
}

// NewOutputManager creates a new output manager rooted at baseOutputDir.
func NewOutputManager(baseOutputDir string) *OutputManager {
	return &OutputManager{BaseOutputDir: baseOutputDir}
}

// CreateJobOutputDir creates the directory for one job's exports.
func (om *OutputManager) CreateJobOutputDir(jobID string) (string, error) {
	jobDir := filepath.Join(om.BaseOutputDir, jobID)
	if err := os.MkdirAll(jobDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create job output directory: %w", err)
	}
	return jobDir, nil
}

// GetOutputFilePath generates the full path for one export file. The
// filename is stripped of any path separators first.
func (om *OutputManager) GetOutputFilePath(jobID, fileName string) (string, error) {
	jobDir, err := om.CreateJobOutputDir(jobID)
	if err != nil {
		return "", err
	}
	return filepath.Join(jobDir, filepath.Base(fileName)), nil
}

// GetDownloadURL generates the API download URL for an export file.
func (om *OutputManager) GetDownloadURL(jobID, fileName string) string {
	return fmt.Sprintf("/api/v1/download/%s/%s", jobID, filepath.Base(fileName))
}

// GetFileType maps a file extension to a report type label.
func (om *OutputManager) GetFileType(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		return "csv"
	case ".json":
		return "json"
	case ".xlsx", ".xls":
		return "excel"
	default:
		return "unknown"
	}
}
