package calculations

// maxPrealloc ограничивает начальную емкость графиков, дальше срез растет через append
const maxPrealloc = 1200

// LoanParameters описывает параметры аннуитетного кредита
type LoanParameters struct {
	Principal         float64 `json:"principal" yaml:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent" yaml:"annual_rate_percent"`
	TermMonths        int     `json:"term_months" yaml:"term_months"`
	// ExtraPrincipal - дополнительное ежемесячное погашение основного долга
	ExtraPrincipal float64 `json:"extra_principal,omitempty" yaml:"extra_principal"`
}

// AmortizationEntry представляет один период графика погашения
type AmortizationEntry struct {
	Period              int     `json:"period"`
	Payment             float64 `json:"payment"`
	PrincipalPortion    float64 `json:"principal_portion"`
	InterestPortion     float64 `json:"interest_portion"`
	RemainingBalance    float64 `json:"remaining_balance"`
	CumulativeInterest  float64 `json:"cumulative_interest"`
	CumulativePrincipal float64 `json:"cumulative_principal"`
}

// ScheduleSummary представляет сводку по графику погашения
type ScheduleSummary struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TermMonths        int     `json:"term_months"`
	LevelPayment      float64 `json:"level_payment"`
	Periods           int     `json:"periods"`
	EndedEarly        bool    `json:"ended_early"`
	TotalPaid         float64 `json:"total_paid"`
	TotalInterest     float64 `json:"total_interest"`
}

// ScheduleResult представляет результат построения графика
type ScheduleResult struct {
	Summary  ScheduleSummary     `json:"summary"`
	Schedule []AmortizationEntry `json:"schedule"`
}

// DepreciationParameters описывает параметры амортизации актива
type DepreciationParameters struct {
	InitialValue       float64 `json:"initial_value" yaml:"initial_value"`
	AnnualRateFraction float64 `json:"annual_rate_fraction" yaml:"annual_rate_fraction"`
	Years              int     `json:"years" yaml:"years"`
}

// DepreciationYear представляет один год графика амортизации
type DepreciationYear struct {
	Year       int     `json:"year"`
	StartValue float64 `json:"start_value"`
	Decay      float64 `json:"decay"`
	EndValue   float64 `json:"end_value"`
}

// AncillaryCosts - сопутствующие расходы на автомобиль
type AncillaryCosts struct {
	Insurance   float64 `json:"insurance" yaml:"insurance"`
	Maintenance float64 `json:"maintenance" yaml:"maintenance"`
	Fuel        float64 `json:"fuel" yaml:"fuel"`
}

// Total возвращает сумму сопутствующих расходов
func (a AncillaryCosts) Total() float64 {
	return a.Insurance + a.Maintenance + a.Fuel
}

// LeaseScenario описывает сценарий лизинга
type LeaseScenario struct {
	TermMonths     float64 `json:"term_months"`
	MonthlyPayment float64 `json:"monthly_payment"`
	DownPayment    float64 `json:"down_payment"`
	AncillaryCosts float64 `json:"ancillary_costs"`
}

// BuyScenario описывает сценарий покупки в кредит
type BuyScenario struct {
	CarPrice           float64 `json:"car_price"`
	DownPayment        float64 `json:"down_payment"`
	AnnualRateFraction float64 `json:"annual_rate_fraction"`
	LoanTermMonths     float64 `json:"loan_term_months"`
	AncillaryCosts     float64 `json:"ancillary_costs"`
}

// Варианты в сравнении лизинга и покупки
const (
	OptionLease = "lease"
	OptionBuy   = "buy"
	OptionEqual = "equal"
)

// LeaseBuyComparison представляет результат сравнения лизинга и покупки
type LeaseBuyComparison struct {
	TotalLeaseCost    float64 `json:"total_lease_cost"`
	TotalBuyCost      float64 `json:"total_buy_cost"`
	FinancedAmount    float64 `json:"financed_amount"`
	BuyMonthlyPayment float64 `json:"buy_monthly_payment"`
	Cheaper           string  `json:"cheaper"`
	Difference        float64 `json:"difference"`
}
