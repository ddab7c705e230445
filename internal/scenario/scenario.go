package scenario

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gopkg.in/yaml.v2"

	"github.com/cloud-ru/fincalc-go/internal/metrics"
	"github.com/cloud-ru/fincalc-go/internal/tools"
)

// Run - один расчет из файла сценария
type Run struct {
	Name   string                 `yaml:"name"`
	Tool   string                 `yaml:"tool"`
	Params map[string]interface{} `yaml:"params"`
}

// File - набор расчетов
type File struct {
	Runs []Run `yaml:"runs"`
}

// Result - результат одного расчета
type Result struct {
	Name   string      `json:"name"`
	Tool   string      `json:"tool"`
	Output interface{} `json:"output,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// Report - результаты всего файла
type Report struct {
	RunID   string   `json:"run_id"`
	Results []Result `json:"results"`
	Failed  int      `json:"failed"`
}

// Load читает файл сценария с диска
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return Parse(data)
}

// Parse разбирает YAML сценария
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if len(f.Runs) == 0 {
		return nil, fmt.Errorf("scenario contains no runs")
	}
	for i, run := range f.Runs {
		if run.Tool == "" {
			return nil, fmt.Errorf("run #%d: tool is required", i+1)
		}
		if f.Runs[i].Name == "" {
			f.Runs[i].Name = fmt.Sprintf("%s-%d", run.Tool, i+1)
		}
		if f.Runs[i].Params == nil {
			f.Runs[i].Params = map[string]interface{}{}
		}
	}
	return &f, nil
}

// Runner выполняет расчеты сценария через реестр инструментов
type Runner struct {
	tools  map[string]tools.ToolHandler
	tracer trace.Tracer
	logger *slog.Logger
}

// NewRunner создает Runner
func NewRunner(registry map[string]tools.ToolHandler, tracer trace.Tracer, logger *slog.Logger) *Runner {
	return &Runner{tools: registry, tracer: tracer, logger: logger}
}

// Run выполняет все расчеты по порядку. Ошибка одного расчета попадает
// в его результат и не прерывает остальные.
func (r *Runner) Run(ctx context.Context, f *File) *Report {
	report := &Report{
		RunID:   uuid.New().String(),
		Results: make([]Result, 0, len(f.Runs)),
	}

	ctx, span := r.tracer.Start(ctx, "scenario")
	defer span.End()
	span.SetAttributes(
		attribute.String("run_id", report.RunID),
		attribute.Int("runs", len(f.Runs)),
	)

	logger := r.logger.With("run_id", report.RunID)

	for _, run := range f.Runs {
		result := Result{Name: run.Name, Tool: run.Tool}

		handler, ok := r.tools[run.Tool]
		if !ok {
			result.Error = fmt.Sprintf("unknown tool: %s", run.Tool)
		} else if out, err := handler(ctx, run.Params); err != nil {
			result.Error = err.Error()
		} else {
			result.Output = out
		}

		if result.Error != "" {
			report.Failed++
			metrics.ScenarioRuns.WithLabelValues("error").Inc()
			logger.Warn("расчет завершился ошибкой", "name", run.Name, "tool", run.Tool, "error", result.Error)
		} else {
			metrics.ScenarioRuns.WithLabelValues("success").Inc()
			logger.Debug("расчет выполнен", "name", run.Name, "tool", run.Tool)
		}

		report.Results = append(report.Results, result)
	}

	span.SetAttributes(attribute.Int("failed", report.Failed))
	logger.Info("сценарий выполнен", "runs", len(f.Runs), "failed", report.Failed)

	return report
}
