package calculations

// AmortizationSchedule строит график погашения аннуитетного кредита.
//
// График заканчивается досрочно в первом периоде, где остаток долга становится
// равным нулю, поэтому его длина не превышает TermMonths. В последнем периоде
// основной долг гасится полностью, остаток всегда закрывается ровно в 0.
func AmortizationSchedule(params LoanParameters) ([]AmortizationEntry, error) {
	if err := validateLoan(params); err != nil {
		return nil, err
	}

	n := params.TermMonths
	r := MonthlyRate(params.AnnualRatePercent)

	payment, err := LevelPayment(params.Principal, r, n)
	if err != nil {
		return nil, err
	}

	schedule := make([]AmortizationEntry, 0, min(n, maxPrealloc))
	remaining := params.Principal
	cumI := 0.0
	cumP := 0.0

	for m := 1; m <= n; m++ {
		interest := remaining * r
		principalComponent := payment - interest + params.ExtraPrincipal
		monthly := payment + params.ExtraPrincipal

		if m == n || principalComponent > remaining {
			principalComponent = remaining
			monthly = principalComponent + interest
		}

		remaining -= principalComponent
		if remaining < 0 {
			remaining = 0.0
		}
		cumI += interest
		cumP += principalComponent

		schedule = append(schedule, AmortizationEntry{
			Period:              m,
			Payment:             monthly,
			PrincipalPortion:    principalComponent,
			InterestPortion:     interest,
			RemainingBalance:    remaining,
			CumulativeInterest:  cumI,
			CumulativePrincipal: cumP,
		})

		if remaining == 0 {
			break
		}
	}

	return schedule, nil
}

// AnnuitySchedule строит график и сводку по нему
func AnnuitySchedule(params LoanParameters) (*ScheduleResult, error) {
	schedule, err := AmortizationSchedule(params)
	if err != nil {
		return nil, err
	}

	// Параметры уже проверены, ошибка здесь невозможна
	payment, _ := LevelPayment(params.Principal, MonthlyRate(params.AnnualRatePercent), params.TermMonths)

	return &ScheduleResult{
		Summary:  SummarizeSchedule(params, payment, schedule),
		Schedule: schedule,
	}, nil
}

// SummarizeSchedule считает итоговые суммы по готовому графику
func SummarizeSchedule(params LoanParameters, levelPayment float64, schedule []AmortizationEntry) ScheduleSummary {
	totalPaid := 0.0
	totalInterest := 0.0
	for _, e := range schedule {
		totalPaid += e.Payment
		totalInterest += e.InterestPortion
	}

	return ScheduleSummary{
		Principal:         params.Principal,
		AnnualRatePercent: params.AnnualRatePercent,
		TermMonths:        params.TermMonths,
		LevelPayment:      levelPayment,
		Periods:           len(schedule),
		EndedEarly:        len(schedule) < params.TermMonths,
		TotalPaid:         totalPaid,
		TotalInterest:     totalInterest,
	}
}

func validateLoan(params LoanParameters) error {
	if err := requireFinite("principal", params.Principal); err != nil {
		return err
	}
	if err := requireFinite("annual_rate_percent", params.AnnualRatePercent); err != nil {
		return err
	}
	if err := requireFinite("extra_principal", params.ExtraPrincipal); err != nil {
		return err
	}
	if params.Principal <= 0 {
		return outOfRange("principal", "значение должно быть > 0")
	}
	if params.AnnualRatePercent <= 0 {
		return outOfRange("annual_rate_percent", "значение должно быть > 0")
	}
	if params.TermMonths <= 0 {
		return outOfRange("term_months", "значение должно быть ≥ 1")
	}
	if params.ExtraPrincipal < 0 {
		return outOfRange("extra_principal", "значение должно быть ≥ 0")
	}
	return nil
}
