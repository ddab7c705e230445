package calculations

// LeaseTotal рассчитывает полную стоимость лизинга.
// Проверок нет: любые числовые значения принимаются как есть.
func LeaseTotal(lease LeaseScenario) float64 {
	return lease.MonthlyPayment*lease.TermMonths + lease.DownPayment + lease.AncillaryCosts
}

// BuyTotal рассчитывает полную стоимость покупки в кредит: сумма всех
// аннуитетных платежей по (CarPrice - DownPayment) плюс первоначальный взнос
// и сопутствующие расходы. Ставка задается годовой долей, а не процентами.
func BuyTotal(buy BuyScenario) float64 {
	return financedPayments(buy) + buy.DownPayment + buy.AncillaryCosts
}

func buyMonthlyPayment(buy BuyScenario) float64 {
	return levelPayment(buy.CarPrice-buy.DownPayment, buy.AnnualRateFraction/12.0, buy.LoanTermMonths)
}

func financedPayments(buy BuyScenario) float64 {
	return buyMonthlyPayment(buy) * buy.LoanTermMonths
}

// CompareLeaseBuy сравнивает лизинг и покупку. Обе суммы считаются
// независимо друг от друга и без округления.
func CompareLeaseBuy(lease LeaseScenario, buy BuyScenario) LeaseBuyComparison {
	leaseTotal := LeaseTotal(lease)
	buyTotal := BuyTotal(buy)
	diff := leaseTotal - buyTotal

	// Определяем, какой вариант выгоднее
	var cheaper string
	var difference float64
	if diff > 0 {
		cheaper = OptionBuy
		difference = diff
	} else if diff < 0 {
		cheaper = OptionLease
		difference = -diff
	} else {
		cheaper = OptionEqual
		difference = 0.0
	}

	return LeaseBuyComparison{
		TotalLeaseCost:    leaseTotal,
		TotalBuyCost:      buyTotal,
		FinancedAmount:    buy.CarPrice - buy.DownPayment,
		BuyMonthlyPayment: buyMonthlyPayment(buy),
		Cheaper:           cheaper,
		Difference:        difference,
	}
}
