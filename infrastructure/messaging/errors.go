package messaging

import "errors"

// Permanent embrulha err para que a mensagem seja descartada sem voltar para a fila
func Permanent(err error) error {
	return &permanentError{err: err}
}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }

func (e *permanentError) Unwrap() []error { return []error{ErrPermanent, e.err} }

func isPermanent(err error) bool {
	return errors.Is(err, ErrPermanent)
}
