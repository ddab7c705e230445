package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ToolCalls счетчик вызовов инструментов
	ToolCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tool_calls_total",
			Help: "Общее количество вызовов инструментов",
		},
		[]string{"tool_name", "status"},
	)

	// CalculationErrors счетчик ошибок расчетов
	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculation_errors_total",
			Help: "Количество ошибок расчетов",
		},
		[]string{"tool_name", "error_type"},
	)

	// SchedulePeriods распределение длины построенных графиков
	SchedulePeriods = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "schedule_periods",
			Help:    "Количество периодов в построенных графиках",
			Buckets: []float64{1, 12, 36, 60, 120, 240, 360, 600},
		},
		[]string{"tool_name"},
	)

	// ScenarioRuns счетчик прогонов из файлов сценариев
	ScenarioRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scenario_runs_total",
			Help: "Прогоны расчетов из файлов сценариев",
		},
		[]string{"status"},
	)
)

// WriteTextfile сохраняет текущие метрики в файл в текстовом формате Prometheus
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
