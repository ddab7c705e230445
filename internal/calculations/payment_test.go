package calculations

import (
	"errors"
	"math"
	"testing"
)

func TestLevelPayment(t *testing.T) {
	tests := []struct {
		name         string
		principal    float64
		periodicRate float64
		periods      int
		want         float64
		tolerance    float64
		wantError    error
	}{
		{
			name:         "monthly mortgage",
			principal:    200000,
			periodicRate: 0.005,
			periods:      360,
			want:         1199.10,
			tolerance:    0.01,
		},
		{
			name:         "zero rate splits evenly",
			principal:    100000,
			periodicRate: 0,
			periods:      10,
			want:         10000,
		},
		{
			name:         "single period",
			principal:    1000,
			periodicRate: 0.01,
			periods:      1,
			want:         1010,
			tolerance:    1e-8,
		},
		{
			name:         "zero principal",
			principal:    0,
			periodicRate: 0.01,
			periods:      12,
			wantError:    ErrOutOfRangeInput,
		},
		{
			name:         "negative rate",
			principal:    1000,
			periodicRate: -0.01,
			periods:      12,
			wantError:    ErrOutOfRangeInput,
		},
		{
			name:         "zero periods",
			principal:    1000,
			periodicRate: 0.01,
			periods:      0,
			wantError:    ErrOutOfRangeInput,
		},
		{
			name:         "infinite rate",
			principal:    1000,
			periodicRate: math.Inf(1),
			periods:      12,
			wantError:    ErrMissingInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LevelPayment(tt.principal, tt.periodicRate, tt.periods)
			if tt.wantError != nil {
				if !errors.Is(err, tt.wantError) {
					t.Errorf("LevelPayment() error = %v, want %v", err, tt.wantError)
				}
				return
			}
			if err != nil {
				t.Fatalf("LevelPayment() unexpected error = %v", err)
			}
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("LevelPayment() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestLevelPaymentZeroRateIsExact(t *testing.T) {
	for _, n := range []int{1, 3, 7, 12, 360} {
		principal := 12345.67
		got, err := LevelPayment(principal, 0, n)
		if err != nil {
			t.Fatalf("LevelPayment() error = %v", err)
		}
		if got != principal/float64(n) {
			t.Errorf("LevelPayment(%v, 0, %d) = %v, want %v", principal, n, got, principal/float64(n))
		}
	}
}

func TestTotalInterestPaid(t *testing.T) {
	got, err := TotalInterestPaid(200000, 6, 360)
	if err != nil {
		t.Fatalf("TotalInterestPaid() error = %v", err)
	}
	// 1199.10 * 360 - 200000
	if math.Abs(got-231676.38) > 1.0 {
		t.Errorf("TotalInterestPaid() = %f, want ≈ 231676.38", got)
	}

	zero, err := TotalInterestPaid(1200, 0, 12)
	if err != nil {
		t.Fatalf("TotalInterestPaid() error = %v", err)
	}
	if zero != 0 {
		t.Errorf("expected no interest at zero rate, got %f", zero)
	}

	if _, err := TotalInterestPaid(math.NaN(), 6, 12); !errors.Is(err, ErrMissingInput) {
		t.Errorf("expected ErrMissingInput, got %v", err)
	}
	if _, err := TotalInterestPaid(1000, 6, 0); !errors.Is(err, ErrOutOfRangeInput) {
		t.Errorf("expected ErrOutOfRangeInput, got %v", err)
	}

	var inputErr *InputError
	if _, err := TotalInterestPaid(-5, 6, 12); !errors.As(err, &inputErr) || inputErr.Field != "principal" {
		t.Errorf("expected InputError on principal, got %v", err)
	}
}

func TestLevelPaymentSmallRate(t *testing.T) {
	principal := 200000.0
	periods := 360
	evenSplit := principal / float64(periods)

	for _, rate := range []float64{1e-9, 1e-12, 1e-15, 1e-17, 1e-300} {
		got, err := LevelPayment(principal, rate, periods)
		if err != nil {
			t.Fatalf("LevelPayment(r=%g) error = %v", rate, err)
		}
		if math.IsInf(got, 0) || math.IsNaN(got) {
			t.Fatalf("LevelPayment(r=%g) = %v, want finite", rate, got)
		}
		// M ≈ P/n * (1 + r(n+1)/2) при малых r
		want := evenSplit * (1 + rate*float64(periods+1)/2)
		if math.Abs(got-want) > 1e-9*evenSplit {
			t.Errorf("LevelPayment(r=%g) = %.10f, want ≈ %.10f", rate, got, want)
		}
	}
}
