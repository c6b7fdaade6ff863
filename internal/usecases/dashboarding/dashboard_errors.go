package dashboarding

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPeriod         = errors.New("período inválido")
	ErrInvalidRequest        = errors.New("requisição inválida")
	ErrInvalidMetricsInput   = errors.New("entrada de métricas inválida")
	ErrCorruptedMetricsInput = errors.New("dados do período inconsistentes")
	ErrUserNotFound          = errors.New("usuário não encontrado")
	ErrTargetNotFound        = errors.New("meta do período não encontrada")
	ErrDatabaseOperation     = errors.New("erro ao realizar operação no banco de dados")
)

// DashboardError é um erro com contexto adicional para o dashboard
type DashboardError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	UserID  int    // Usuário envolvido (quando aplicável)
	Period  string // Período envolvido (quando aplicável)
	Field   string // Campo do PeriodInput rejeitado pelo cálculo
	Details string // Detalhes adicionais
}

func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *DashboardError) Unwrap() error {
	return e.Err
}

func NewDashboardError(err error, code string, details string) *DashboardError {
	return &DashboardError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewPeriodDashboardError(err error, code string, userID int, period string, details string) *DashboardError {
	return &DashboardError{
		Err:     err,
		Code:    code,
		UserID:  userID,
		Period:  period,
		Details: details,
	}
}
