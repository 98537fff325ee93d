package report

import (
	"encoding/json"
	"os"
	"path/filepath"

	"isorefine/refine"
)

// DataFileName matches the artifact the rendering host expects.
const DataFileName = "multiqc_isoseq_refine_report.json"

// WriteDataFile serializes the merged records into dir as the report
// data artifact and returns its path.
func WriteDataFile(dir string, records map[string]refine.MergedRecord) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	buf, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, DataFileName)
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
