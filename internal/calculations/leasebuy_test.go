package calculations

import (
	"math"
	"testing"
)

func TestLeaseTotal(t *testing.T) {
	ancillary := AncillaryCosts{Insurance: 2000, Maintenance: 900, Fuel: 800}
	lease := LeaseScenario{TermMonths: 36, MonthlyPayment: 400, DownPayment: 5000, AncillaryCosts: ancillary.Total()}

	if got := LeaseTotal(lease); got != 23100 {
		t.Errorf("LeaseTotal() = %f, want 23100", got)
	}
}

func TestLeaseTotalAcceptsAnyNumbers(t *testing.T) {
	got := LeaseTotal(LeaseScenario{TermMonths: -2, MonthlyPayment: 100, DownPayment: 0, AncillaryCosts: 0})
	if got != -200 {
		t.Errorf("LeaseTotal() = %f, want -200", got)
	}
}

func TestBuyTotal(t *testing.T) {
	tests := []struct {
		name      string
		buy       BuyScenario
		want      float64
		tolerance float64
	}{
		{
			name: "financed purchase",
			buy: BuyScenario{
				CarPrice:           30000,
				DownPayment:        5000,
				AnnualRateFraction: 0.06,
				LoanTermMonths:     60,
				AncillaryCosts:     3700,
			},
			// 483.32 * 60 + 5000 + 3700
			want:      37699.20,
			tolerance: 0.5,
		},
		{
			name: "zero rate",
			buy: BuyScenario{
				CarPrice:           24000,
				DownPayment:        0,
				AnnualRateFraction: 0,
				LoanTermMonths:     48,
				AncillaryCosts:     1000,
			},
			want: 25000,
		},
		{
			name: "paid in cash",
			buy: BuyScenario{
				CarPrice:           20000,
				DownPayment:        20000,
				AnnualRateFraction: 0.05,
				LoanTermMonths:     36,
				AncillaryCosts:     500,
			},
			want: 20500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuyTotal(tt.buy)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("BuyTotal() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestBuyTotalZeroTermIsNotFinite(t *testing.T) {
	got := BuyTotal(BuyScenario{CarPrice: 20000, DownPayment: 0, AnnualRateFraction: 0, LoanTermMonths: 0})
	if !math.IsNaN(got) && !math.IsInf(got, 0) {
		t.Errorf("expected non-finite total for zero term, got %f", got)
	}
}

func TestCompareLeaseBuy(t *testing.T) {
	lease := LeaseScenario{TermMonths: 36, MonthlyPayment: 400, DownPayment: 5000, AncillaryCosts: 3700}
	buy := BuyScenario{CarPrice: 30000, DownPayment: 5000, AnnualRateFraction: 0.06, LoanTermMonths: 60, AncillaryCosts: 3700}

	result := CompareLeaseBuy(lease, buy)

	if result.TotalLeaseCost != LeaseTotal(lease) {
		t.Errorf("lease total %f differs from LeaseTotal %f", result.TotalLeaseCost, LeaseTotal(lease))
	}
	if result.TotalBuyCost != BuyTotal(buy) {
		t.Errorf("buy total %f differs from BuyTotal %f", result.TotalBuyCost, BuyTotal(buy))
	}
	if result.Cheaper != OptionLease {
		t.Errorf("expected lease to be cheaper, got %s", result.Cheaper)
	}
	if math.Abs(result.Difference-(result.TotalBuyCost-result.TotalLeaseCost)) > 1e-9 {
		t.Errorf("difference %f inconsistent with totals", result.Difference)
	}
	if result.FinancedAmount != 25000 {
		t.Errorf("expected financed amount 25000, got %f", result.FinancedAmount)
	}
	if math.Abs(result.BuyMonthlyPayment-483.32) > 0.01 {
		t.Errorf("expected monthly payment ≈ 483.32, got %f", result.BuyMonthlyPayment)
	}

	same := CompareLeaseBuy(
		LeaseScenario{TermMonths: 10, MonthlyPayment: 100},
		BuyScenario{CarPrice: 1000, LoanTermMonths: 10},
	)
	if same.Cheaper != OptionEqual || same.Difference != 0 {
		t.Errorf("expected equal options, got %s (%f)", same.Cheaper, same.Difference)
	}
}
