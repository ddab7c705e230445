package tools

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cloud-ru/fincalc-go/internal/calculations"
)

// floatParam извлекает числовой параметр. Принимаются числа любых типов,
// которые дают JSON и YAML декодеры, а также строки с числом.
func floatParam(params map[string]interface{}, name string) (float64, error) {
	raw, ok := params[name]
	if !ok || raw == nil {
		return 0, fmt.Errorf("invalid parameter: %s: %w", name, calculations.ErrMissingInput)
	}

	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid parameter: %s: %q: %w", name, v, calculations.ErrMissingInput)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("invalid parameter: %s: unsupported type %T: %w", name, raw, calculations.ErrMissingInput)
	}
}

// optionalFloatParam возвращает defaultValue, если параметр не передан
func optionalFloatParam(params map[string]interface{}, name string, defaultValue float64) (float64, error) {
	if raw, ok := params[name]; !ok || raw == nil {
		return defaultValue, nil
	}
	return floatParam(params, name)
}

// intParam извлекает целочисленный параметр (количество месяцев, лет, периодов)
func intParam(params map[string]interface{}, name string) (int, error) {
	f, err := floatParam(params, name)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid parameter: %s: %w", name, calculations.ErrMissingInput)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("invalid parameter: %s: ожидается целое число, получено %g: %w", name, f, calculations.ErrOutOfRangeInput)
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("invalid parameter: %s: %w", name, calculations.ErrOutOfRangeInput)
	}
	return int(f), nil
}

// ancillaryParam возвращает сопутствующие расходы: либо готовую сумму
// ancillary_costs, либо сумму insurance + maintenance + fuel.
func ancillaryParam(params map[string]interface{}) (float64, error) {
	if raw, ok := params["ancillary_costs"]; ok && raw != nil {
		return floatParam(params, "ancillary_costs")
	}

	var costs calculations.AncillaryCosts
	var err error
	if costs.Insurance, err = optionalFloatParam(params, "insurance", 0); err != nil {
		return 0, err
	}
	if costs.Maintenance, err = optionalFloatParam(params, "maintenance", 0); err != nil {
		return 0, err
	}
	if costs.Fuel, err = optionalFloatParam(params, "fuel", 0); err != nil {
		return 0, err
	}
	return costs.Total(), nil
}
