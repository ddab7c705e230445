package validators

import (
	"fmt"

	"github.com/cloud-ru/fincalc-go/internal/calculations"
	"github.com/cloud-ru/fincalc-go/internal/config"
	"github.com/cloud-ru/fincalc-go/pkg/utils"
)

// ValidatePositiveNumber проверяет, что число конечное и в допустимом диапазоне
func ValidatePositiveNumber(name string, value float64, minInclusive, maxInclusive float64) error {
	if !utils.IsFinite(value) {
		return fmt.Errorf("%s: значение не является конечным числом: %w", name, calculations.ErrMissingInput)
	}
	if value < minInclusive {
		return fmt.Errorf("%s: значение должно быть ≥ %g: %w", name, minInclusive, calculations.ErrOutOfRangeInput)
	}
	if value > maxInclusive {
		return fmt.Errorf("%s: значение слишком велико (>%g): %w", name, maxInclusive, calculations.ErrOutOfRangeInput)
	}
	return nil
}

// ValidateIntRange проверяет, что целое число в допустимом диапазоне
func ValidateIntRange(name string, value int, minInclusive, maxInclusive int) error {
	if value < minInclusive || value > maxInclusive {
		return fmt.Errorf("%s: значение должно быть в диапазоне [%d; %d]: %w", name, minInclusive, maxInclusive, calculations.ErrOutOfRangeInput)
	}
	return nil
}

// CheckPrincipal проверяет сумму кредита
func CheckPrincipal(cfg *config.Config, principal float64) error {
	return ValidatePositiveNumber("principal", principal, 1e-9, cfg.MaxPrincipal)
}

// CheckRate проверяет годовую ставку в процентах
func CheckRate(cfg *config.Config, rate float64) error {
	return ValidatePositiveNumber("annual_rate_percent", rate, 0.0, cfg.MaxRate)
}

// CheckMonths проверяет срок в месяцах
func CheckMonths(cfg *config.Config, months int) error {
	return ValidateIntRange("term_months", months, 1, cfg.MaxMonths)
}

// CheckYears проверяет срок амортизации в годах
func CheckYears(cfg *config.Config, years int) error {
	return ValidateIntRange("years", years, 0, cfg.MaxYears)
}

// CheckAssetValue проверяет стоимость актива
func CheckAssetValue(cfg *config.Config, value float64) error {
	return ValidatePositiveNumber("initial_value", value, 0.0, cfg.MaxAssetValue)
}

// CheckExtraPrincipal проверяет дополнительное погашение
func CheckExtraPrincipal(cfg *config.Config, extra float64) error {
	return ValidatePositiveNumber("extra_principal", extra, 0.0, cfg.MaxPrincipal)
}
