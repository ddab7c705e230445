package calculations

import (
	"math"
)

// LevelPayment рассчитывает аннуитетный платеж, который за periods равных
// платежей полностью гасит principal при ставке periodicRate за период.
func LevelPayment(principal, periodicRate float64, periods int) (float64, error) {
	if err := requireFinite("principal", principal); err != nil {
		return 0, err
	}
	if err := requireFinite("periodic_rate", periodicRate); err != nil {
		return 0, err
	}
	if principal <= 0 {
		return 0, outOfRange("principal", "значение должно быть > 0")
	}
	if periodicRate < 0 {
		return 0, outOfRange("periodic_rate", "значение должно быть ≥ 0")
	}
	if periods <= 0 {
		return 0, outOfRange("periods", "значение должно быть ≥ 1")
	}
	return levelPayment(principal, periodicRate, float64(periods)), nil
}

// levelPayment - формула без проверок, нулевая ставка обрабатывается отдельно.
// Знаменатель 1 - (1+r)^-n считается через Log1p/Expm1: при малых r прямое
// вычисление теряет точность, а при 1+r == 1 дает деление на ноль.
func levelPayment(principal, periodicRate, periods float64) float64 {
	if periodicRate == 0 {
		return principal / periods
	}
	return principal * periodicRate / -math.Expm1(-periods*math.Log1p(periodicRate))
}

// MonthlyRate переводит годовую ставку в процентах в месячную долю
func MonthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 100.0 / 12.0
}

// TotalInterestPaid рассчитывает общую переплату по процентам за весь срок
func TotalInterestPaid(loanAmount, annualRatePercent float64, termMonths int) (float64, error) {
	if err := requireFinite("loan_amount", loanAmount); err != nil {
		return 0, err
	}
	if err := requireFinite("annual_rate_percent", annualRatePercent); err != nil {
		return 0, err
	}

	payment, err := LevelPayment(loanAmount, MonthlyRate(annualRatePercent), termMonths)
	if err != nil {
		return 0, err
	}

	return payment*float64(termMonths) - loanAmount, nil
}
