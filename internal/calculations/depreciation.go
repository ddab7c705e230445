package calculations

// DepreciatedValue рассчитывает остаточную стоимость актива при уменьшении
// на фиксированную долю каждый год. Множитель (1 - r) применяется years раз
// подряд, без math.Pow, чтобы результат совпадал с пошаговым накоплением.
func DepreciatedValue(params DepreciationParameters) (float64, error) {
	if err := validateDepreciation(params); err != nil {
		return 0, err
	}

	value := params.InitialValue
	factor := 1.0 - params.AnnualRateFraction
	for y := 0; y < params.Years; y++ {
		value *= factor
	}
	return value, nil
}

// DepreciationSchedule возвращает стоимость актива по годам
func DepreciationSchedule(params DepreciationParameters) ([]DepreciationYear, error) {
	if err := validateDepreciation(params); err != nil {
		return nil, err
	}

	schedule := make([]DepreciationYear, 0, min(params.Years, maxPrealloc))
	value := params.InitialValue
	factor := 1.0 - params.AnnualRateFraction

	for y := 1; y <= params.Years; y++ {
		start := value
		value *= factor
		schedule = append(schedule, DepreciationYear{
			Year:       y,
			StartValue: start,
			Decay:      start - value,
			EndValue:   value,
		})
	}

	return schedule, nil
}

func validateDepreciation(params DepreciationParameters) error {
	if err := requireFinite("initial_value", params.InitialValue); err != nil {
		return err
	}
	if err := requireFinite("annual_rate_fraction", params.AnnualRateFraction); err != nil {
		return err
	}
	if params.InitialValue < 0 {
		return outOfRange("initial_value", "значение должно быть ≥ 0")
	}
	if params.AnnualRateFraction < 0 || params.AnnualRateFraction > 1 {
		return outOfRange("annual_rate_fraction", "ставка задается долей в диапазоне [0; 1]")
	}
	if params.Years < 0 {
		return outOfRange("years", "значение должно быть ≥ 0")
	}
	return nil
}
