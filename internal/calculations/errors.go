package calculations

import (
	"errors"
	"fmt"

	"github.com/cloud-ru/fincalc-go/pkg/utils"
)

var (
	// ErrMissingInput - обязательное значение отсутствует или не является числом
	ErrMissingInput = errors.New("missing input")
	// ErrOutOfRangeInput - значение вне допустимого диапазона
	ErrOutOfRangeInput = errors.New("out of range input")
)

// InputError описывает ошибку входного параметра
type InputError struct {
	Field  string
	Kind   error
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *InputError) Unwrap() error {
	return e.Kind
}

func missing(field string) error {
	return &InputError{Field: field, Kind: ErrMissingInput, Reason: "значение отсутствует или не является конечным числом"}
}

func outOfRange(field, reason string) error {
	return &InputError{Field: field, Kind: ErrOutOfRangeInput, Reason: reason}
}

// requireFinite возвращает ErrMissingInput для NaN и бесконечностей
func requireFinite(field string, value float64) error {
	if !utils.IsFinite(value) {
		return missing(field)
	}
	return nil
}
