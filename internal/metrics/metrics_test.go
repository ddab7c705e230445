package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteTextfile(t *testing.T) {
	ScenarioRuns.WithLabelValues("success").Inc()

	path := filepath.Join(t.TempDir(), "fincalc.prom")
	if err := WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read metrics file: %v", err)
	}
	if !strings.Contains(string(data), `scenario_runs_total{status="success"}`) {
		t.Errorf("metrics file does not contain scenario_runs_total:\n%s", data)
	}
}
