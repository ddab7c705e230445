package tools

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/cloud-ru/fincalc-go/internal/calculations"
	"github.com/cloud-ru/fincalc-go/internal/config"
	"github.com/cloud-ru/fincalc-go/internal/metrics"
	"github.com/cloud-ru/fincalc-go/internal/validators"
	"github.com/cloud-ru/fincalc-go/pkg/utils"
)

// ToolHandler представляет обработчик инструмента
type ToolHandler func(ctx context.Context, params map[string]interface{}) (interface{}, error)

// Названия инструментов
const (
	ToolLevelPayment         = "level_payment"
	ToolAmortizationSchedule = "amortization_schedule"
	ToolTotalInterest        = "total_interest"
	ToolDepreciatedValue     = "depreciated_value"
	ToolDepreciationSchedule = "depreciation_schedule"
	ToolLeaseTotal           = "lease_total"
	ToolBuyTotal             = "buy_total"
	ToolCompareLeaseBuy      = "compare_lease_buy"
)

// ErrCalculation - расчет завершился нечисловым результатом
var ErrCalculation = errors.New("calculation error")

// AmountResult - денежная сумма с полной точностью и для отображения
type AmountResult struct {
	Amount    float64 `json:"amount"`
	Formatted string  `json:"formatted"`
}

// DepreciationResult - итог амортизации с графиком по годам
type DepreciationResult struct {
	FinalValue AmountResult                    `json:"final_value"`
	Rate       string                          `json:"rate"`
	Schedule   []calculations.DepreciationYear `json:"schedule"`
}

func newAmount(value float64) AmountResult {
	return AmountResult{Amount: value, Formatted: utils.FormatCurrency(value)}
}

// Registry возвращает все инструменты по имени
func Registry(cfg *config.Config, tracer trace.Tracer) map[string]ToolHandler {
	return map[string]ToolHandler{
		ToolLevelPayment:         LevelPaymentHandler(cfg, tracer),
		ToolAmortizationSchedule: AmortizationScheduleHandler(cfg, tracer),
		ToolTotalInterest:        TotalInterestHandler(cfg, tracer),
		ToolDepreciatedValue:     DepreciatedValueHandler(cfg, tracer),
		ToolDepreciationSchedule: DepreciationScheduleHandler(cfg, tracer),
		ToolLeaseTotal:           LeaseTotalHandler(tracer),
		ToolBuyTotal:             BuyTotalHandler(tracer),
		ToolCompareLeaseBuy:      CompareLeaseBuyHandler(tracer),
	}
}

func validationFailed(span trace.Span, toolName string, err error) error {
	span.SetAttributes(attribute.String("error", "validation_error"))
	span.SetStatus(codes.Error, err.Error())
	metrics.ToolCalls.WithLabelValues(toolName, "validation_error").Inc()
	metrics.CalculationErrors.WithLabelValues(toolName, "validation").Inc()
	return fmt.Errorf("неверные параметры: %w", err)
}

func calculationFailed(span trace.Span, toolName string, err error) error {
	span.SetAttributes(attribute.String("error", "calculation_error"))
	span.SetStatus(codes.Error, err.Error())
	metrics.ToolCalls.WithLabelValues(toolName, "error").Inc()
	metrics.CalculationErrors.WithLabelValues(toolName, "calculation").Inc()
	return fmt.Errorf("ошибка при выполнении расчета: %w", err)
}

// engineFailed разделяет ошибки входных данных и ошибки расчета
func engineFailed(span trace.Span, toolName string, err error) error {
	if errors.Is(err, calculations.ErrMissingInput) || errors.Is(err, calculations.ErrOutOfRangeInput) {
		return validationFailed(span, toolName, err)
	}
	return calculationFailed(span, toolName, err)
}

func succeeded(span trace.Span, toolName string) {
	span.SetAttributes(attribute.Bool("success", true))
	metrics.ToolCalls.WithLabelValues(toolName, "success").Inc()
}

func firstError(checks ...error) error {
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}

// requireFinite отклоняет NaN и бесконечности в результате нестрогих расчетов
func requireFinite(name string, value float64) error {
	if !utils.IsFinite(value) {
		return fmt.Errorf("%s: результат не является конечным числом: %w", name, ErrCalculation)
	}
	return nil
}

// LevelPaymentHandler рассчитывает аннуитетный платеж по ставке за период
func LevelPaymentHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := ToolLevelPayment

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		principal, err := floatParam(params, "principal")
		if err != nil {
			return nil, validationFailed(span, toolName, err)
		}
		periodicRate, err := floatParam(params, "periodic_rate")
		if err != nil {
			return nil, validationFailed(span, toolName, err)
		}
		periods, err := intParam(params, "periods")
		if err != nil {
			return nil, validationFailed(span, toolName, err)
		}

		span.SetAttributes(
			attribute.Float64("principal", principal),
			attribute.Float64("periodic_rate", periodicRate),
			attribute.Int("periods", periods),
		)

		if err := firstError(
			validators.CheckPrincipal(cfg, principal),
			validators.ValidatePositiveNumber("periodic_rate", periodicRate, 0.0, calculations.MonthlyRate(cfg.MaxRate)),
			validators.CheckMonths(cfg, periods),
		); err != nil {
			return nil, validationFailed(span, toolName, err)
		}

		payment, err := calculations.LevelPayment(principal, periodicRate, periods)
		if err != nil {
			return nil, engineFailed(span, toolName, err)
		}

		if err := requireFinite("payment", payment); err != nil {
			return nil, calculationFailed(span, toolName, err)
		}

		span.SetAttributes(attribute.Float64("payment", payment))
		succeeded(span, toolName)

		return newAmount(payment), nil
	}
}

// AmortizationScheduleHandler строит график погашения аннуитетного кредита
func AmortizationScheduleHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := ToolAmortizationSchedule

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		principal, err := floatParam(params, "principal")
		if err != nil {
			return nil, validationFailed(span, toolName, err)
		}
		annualRatePercent, err := floatParam(params, "annual_rate_percent")
		if err != nil {
			return nil, validationFailed(span, toolName, err)
		}
		months, err := intParam(params, "term_months")
		if err != nil {
			return nil, validationFailed(span, toolName, err)
		}
		extra, err := optionalFloatParam(params, "extra_principal", 0)
		if err != nil {
			return nil, validationFailed(span, toolName, err)
		}

		span.SetAttributes(
			attribute.Float64("principal", principal),
			attribute.Float64("annual_rate_percent", annualRatePercent),
			attribute.Int("term_months", months),
			attribute.Float64("extra_principal", extra),
		)

		if err := firstError(
			validators.CheckPrincipal(cfg, principal),
			validators.CheckRate(cfg, annualRatePercent),
			validators.CheckMonths(cfg, months),
			validators.CheckExtraPrincipal(cfg, extra),
		); err != nil {
			return nil, validationFailed(span, toolName, err)
		}

		result, err := calculations.AnnuitySchedule(calculations.LoanParameters{
			Principal:         principal,
			AnnualRatePercent: annualRatePercent,
			TermMonths:        months,
			ExtraPrincipal:    extra,
		})
		if err != nil {
			return nil, engineFailed(span, toolName, err)
		}

		metrics.SchedulePeriods.WithLabelValues(toolName).Observe(float64(result.Summary.Periods))
		span.SetAttributes(
			attribute.Float64("level_payment", result.Summary.LevelPayment),
			attribute.Float64("total_paid", result.Summary.TotalPaid),
			attribute.Int("periods", result.Summary.Periods),
		)
		succeeded(span, toolName)

		return result, nil
	}
}

// TotalInterestHandler рассчитывает переплату по процентам
func TotalInterestHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := ToolTotalInterest

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		loanAmount, err := floatParam(params, "loan_amount")
		if err != nil {
			return nil, validationFailed(span, toolName, err)
		}
		annualRatePercent, err := floatParam(params, "annual_rate_percent")
		if err != nil {
			return nil, validationFailed(span, toolName, err)
		}
		months, err := intParam(params, "term_months")
		if err != nil {
			return nil, validationFailed(span, toolName, err)
		}

		span.SetAttributes(
			attribute.Float64("loan_amount", loanAmount),
			attribute.Float64("annual_rate_percent", annualRatePercent),
			attribute.Int("term_months", months),
		)

		if err := firstError(
			validators.CheckPrincipal(cfg, loanAmount),
			validators.CheckRate(cfg, annualRatePercent),
			validators.CheckMonths(cfg, months),
		); err != nil {
			return nil, validationFailed(span, toolName, err)
		}

		interest, err := calculations.TotalInterestPaid(loanAmount, annualRatePercent, months)
		if err != nil {
			return nil, engineFailed(span, toolName, err)
		}

		if err := requireFinite("total_interest", interest); err != nil {
			return nil, calculationFailed(span, toolName, err)
		}

		span.SetAttributes(attribute.Float64("total_interest", interest))
		succeeded(span, toolName)

		return newAmount(interest), nil
	}
}

func depreciationParams(cfg *config.Config, span trace.Span, params map[string]interface{}) (calculations.DepreciationParameters, error) {
	var p calculations.DepreciationParameters
	var err error

	if p.InitialValue, err = floatParam(params, "initial_value"); err != nil {
		return p, err
	}
	if p.AnnualRateFraction, err = floatParam(params, "annual_rate_fraction"); err != nil {
		return p, err
	}
	if p.Years, err = intParam(params, "years"); err != nil {
		return p, err
	}

	span.SetAttributes(
		attribute.Float64("initial_value", p.InitialValue),
		attribute.Float64("annual_rate_fraction", p.AnnualRateFraction),
		attribute.Int("years", p.Years),
	)

	return p, firstError(
		validators.CheckAssetValue(cfg, p.InitialValue),
		validators.CheckYears(cfg, p.Years),
	)
}

// DepreciatedValueHandler рассчитывает остаточную стоимость актива
func DepreciatedValueHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := ToolDepreciatedValue

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		p, err := depreciationParams(cfg, span, params)
		if err != nil {
			return nil, validationFailed(span, toolName, err)
		}

		value, err := calculations.DepreciatedValue(p)
		if err != nil {
			return nil, engineFailed(span, toolName, err)
		}

		span.SetAttributes(attribute.Float64("final_value", value))
		succeeded(span, toolName)

		return newAmount(value), nil
	}
}

// DepreciationScheduleHandler строит график амортизации по годам
func DepreciationScheduleHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := ToolDepreciationSchedule

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		p, err := depreciationParams(cfg, span, params)
		if err != nil {
			return nil, validationFailed(span, toolName, err)
		}

		schedule, err := calculations.DepreciationSchedule(p)
		if err != nil {
			return nil, engineFailed(span, toolName, err)
		}

		final := p.InitialValue
		if len(schedule) > 0 {
			final = schedule[len(schedule)-1].EndValue
		}

		metrics.SchedulePeriods.WithLabelValues(toolName).Observe(float64(len(schedule)))
		span.SetAttributes(attribute.Float64("final_value", final))
		succeeded(span, toolName)

		return &DepreciationResult{
			FinalValue: newAmount(final),
			Rate:       utils.FormatPercent(p.AnnualRateFraction),
			Schedule:   schedule,
		}, nil
	}
}

func leaseParams(params map[string]interface{}, downKey, paymentKey string) (calculations.LeaseScenario, error) {
	var lease calculations.LeaseScenario
	var err error

	if lease.TermMonths, err = floatParam(params, "lease_term_months"); err != nil {
		return lease, err
	}
	if lease.MonthlyPayment, err = floatParam(params, paymentKey); err != nil {
		return lease, err
	}
	if lease.DownPayment, err = floatParam(params, downKey); err != nil {
		return lease, err
	}
	if lease.AncillaryCosts, err = ancillaryParam(params); err != nil {
		return lease, err
	}
	return lease, nil
}

func buyParams(params map[string]interface{}, downKey string) (calculations.BuyScenario, error) {
	var buy calculations.BuyScenario
	var err error

	if buy.CarPrice, err = floatParam(params, "car_price"); err != nil {
		return buy, err
	}
	if buy.DownPayment, err = floatParam(params, downKey); err != nil {
		return buy, err
	}
	if buy.AnnualRateFraction, err = floatParam(params, "annual_rate_fraction"); err != nil {
		return buy, err
	}
	if buy.LoanTermMonths, err = floatParam(params, "loan_term_months"); err != nil {
		return buy, err
	}
	if buy.AncillaryCosts, err = ancillaryParam(params); err != nil {
		return buy, err
	}
	return buy, nil
}

// LeaseTotalHandler рассчитывает полную стоимость лизинга.
// Ограничения конфигурации здесь не применяются, нужны только числа.
func LeaseTotalHandler(tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := ToolLeaseTotal

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		lease, err := leaseParams(params, "down_payment", "monthly_payment")
		if err != nil {
			return nil, validationFailed(span, toolName, err)
		}

		total := calculations.LeaseTotal(lease)
		if err := requireFinite("total_lease_cost", total); err != nil {
			return nil, calculationFailed(span, toolName, err)
		}

		span.SetAttributes(attribute.Float64("total_lease_cost", total))
		succeeded(span, toolName)

		return newAmount(total), nil
	}
}

// BuyTotalHandler рассчитывает полную стоимость покупки в кредит
func BuyTotalHandler(tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := ToolBuyTotal

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		buy, err := buyParams(params, "down_payment")
		if err != nil {
			return nil, validationFailed(span, toolName, err)
		}

		total := calculations.BuyTotal(buy)
		if err := requireFinite("total_buy_cost", total); err != nil {
			return nil, calculationFailed(span, toolName, err)
		}

		span.SetAttributes(attribute.Float64("total_buy_cost", total))
		succeeded(span, toolName)

		return newAmount(total), nil
	}
}

// CompareLeaseBuyHandler сравнивает лизинг и покупку при одинаковых
// сопутствующих расходах
func CompareLeaseBuyHandler(tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := ToolCompareLeaseBuy

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		lease, err := leaseParams(params, "lease_down_payment", "monthly_lease_payment")
		if err != nil {
			return nil, validationFailed(span, toolName, err)
		}
		buy, err := buyParams(params, "buy_down_payment")
		if err != nil {
			return nil, validationFailed(span, toolName, err)
		}

		result := calculations.CompareLeaseBuy(lease, buy)
		if err := firstError(
			requireFinite("total_lease_cost", result.TotalLeaseCost),
			requireFinite("total_buy_cost", result.TotalBuyCost),
		); err != nil {
			return nil, calculationFailed(span, toolName, err)
		}

		span.SetAttributes(
			attribute.Float64("total_lease_cost", result.TotalLeaseCost),
			attribute.Float64("total_buy_cost", result.TotalBuyCost),
			attribute.String("cheaper", result.Cheaper),
		)
		succeeded(span, toolName)

		return result, nil
	}
}
