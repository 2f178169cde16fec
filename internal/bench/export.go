package bench

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// SaveResults writes the run to <dir>/benchmark_<timestamp>.json and a
// CSV sibling, returning both paths.
func SaveResults(dir string, results []Result) (string, string, error) {
	if len(results) == 0 {
		return "", "", fmt.Errorf("no results to save")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	stamp := time.Now().Format("20060102_150405")
	jsonPath := filepath.Join(dir, fmt.Sprintf("benchmark_%s.json", stamp))
	csvPath := filepath.Join(dir, fmt.Sprintf("benchmark_%s.csv", stamp))

	if err := writeJSON(jsonPath, results); err != nil {
		return "", "", err
	}
	if err := writeCSV(csvPath, results); err != nil {
		return "", "", err
	}

	return jsonPath, csvPath, nil
}

func writeJSON(path string, results []Result) error {
	data, err := json.MarshalIndent(results, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func writeCSV(path string, results []Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"timestamp", "scenario_id", "category", "provider", "latency",
		"score", "pattern_score", "pattern_verdict", "detailed_reasoning", "raw_output",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range results {
		row := []string{
			r.Timestamp.Format(time.RFC3339),
			r.ScenarioID,
			r.Category,
			r.Provider,
			r.Latency,
			r.Score,
			strconv.Itoa(r.PatternScore),
			r.PatternVerdict,
			r.Reasoning,
			r.RawOutput,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
