package scenario

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/cloud-ru/fincalc-go/internal/calculations"
	"github.com/cloud-ru/fincalc-go/internal/config"
	"github.com/cloud-ru/fincalc-go/internal/logging"
	"github.com/cloud-ru/fincalc-go/internal/tools"
)

const sample = `
runs:
  - name: mortgage
    tool: amortization_schedule
    params:
      principal: 200000
      annual_rate_percent: 6
      term_months: 360
  - name: car lease
    tool: lease_total
    params:
      lease_term_months: 36
      monthly_payment: 400
      down_payment: 5000
      ancillary_costs: 3700
  - tool: depreciated_value
    params:
      initial_value: 30000
      annual_rate_fraction: 0.15
      years: 5
  - name: broken
    tool: depreciated_value
    params:
      initial_value: -1
      annual_rate_fraction: 0.15
      years: 5
  - name: typo
    tool: lease_totl
`

func newRunner(t *testing.T, buf *bytes.Buffer) *Runner {
	t.Helper()
	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	tracer := noop.NewTracerProvider().Tracer("test")
	return NewRunner(tools.Registry(cfg, tracer), tracer, logging.NewWithWriter(buf, "DEBUG"))
}

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)
	require.Len(t, f.Runs, 5)

	assert.Equal(t, "mortgage", f.Runs[0].Name)
	assert.Equal(t, "depreciated_value-3", f.Runs[2].Name)
	assert.NotNil(t, f.Runs[4].Params)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("runs: []"))
	assert.Error(t, err)

	_, err = Parse([]byte("runs:\n  - name: no tool\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("runs: [unterminated"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, f.Runs, 5)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRunnerRun(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)

	var logs bytes.Buffer
	report := newRunner(t, &logs).Run(context.Background(), f)

	_, err = uuid.Parse(report.RunID)
	assert.NoError(t, err)
	require.Len(t, report.Results, 5)
	assert.Equal(t, 2, report.Failed)

	schedule, ok := report.Results[0].Output.(*calculations.ScheduleResult)
	require.True(t, ok, "unexpected output %T", report.Results[0].Output)
	assert.Len(t, schedule.Schedule, 360)

	lease := report.Results[1].Output.(tools.AmountResult)
	assert.Equal(t, 23100.0, lease.Amount)

	assert.Equal(t, "13311.16", report.Results[2].Output.(tools.AmountResult).Formatted)

	assert.NotEmpty(t, report.Results[3].Error)
	assert.Nil(t, report.Results[3].Output)
	assert.Contains(t, report.Results[4].Error, "unknown tool")

	assert.Contains(t, logs.String(), report.RunID)
}
