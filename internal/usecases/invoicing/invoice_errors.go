package invoicing

import (
	"errors"
	"fmt"
)

var (
	ErrInvoiceNotFound         = errors.New("fatura não encontrada")
	ErrClientNotFound          = errors.New("cliente não encontrado")
	ErrProjectNotFound         = errors.New("projeto não encontrado")
	ErrProjectClientMismatch   = errors.New("projeto não pertence ao cliente da fatura")
	ErrInvalidDates            = errors.New("vencimento anterior à emissão")
	ErrInvalidStatusTransition = errors.New("transição de status não permitida")
	ErrInvoiceNotEditable      = errors.New("apenas faturas em rascunho podem ser alteradas")
	ErrInvalidRequest          = errors.New("requisição inválida")
	ErrDatabaseOperation       = errors.New("erro ao realizar operação no banco de dados")
	ErrGenerateID              = errors.New("erro ao gerar ID")
)

// InvoiceError é um erro com contexto adicional para faturas
type InvoiceError struct {
	Err       error
	Code      string
	InvoiceID string
	Details   string
}

func (e *InvoiceError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *InvoiceError) Unwrap() error {
	return e.Err
}

func NewInvoiceError(err error, code string, details string) *InvoiceError {
	return &InvoiceError{Err: err, Code: code, Details: details}
}

func NewInvoiceErrorWithID(err error, code string, invoiceID string, details string) *InvoiceError {
	return &InvoiceError{Err: err, Code: code, InvoiceID: invoiceID, Details: details}
}
