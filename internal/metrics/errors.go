package metrics

import (
	"errors"
	"fmt"
)

// ErrInvalidMetricsInput é retornado quando algum campo do PeriodInput é negativo ou não finito
var ErrInvalidMetricsInput = errors.New("invalid metrics input")

// InvalidInputError identifica o campo e o valor que falharam na validação
type InvalidInputError struct {
	Err   error
	Field string
	Value float64
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: field %s has value %v", e.Err.Error(), e.Field, e.Value)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Err
}

func newInvalidInputError(field string, value float64) *InvalidInputError {
	return &InvalidInputError{
		Err:   ErrInvalidMetricsInput,
		Field: field,
		Value: value,
	}
}
