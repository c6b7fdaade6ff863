package timetracking

import (
	"errors"
	"fmt"
)

var (
	ErrTimeEntryNotFound   = errors.New("registro de tempo não encontrado")
	ErrProjectNotFound     = errors.New("projeto não encontrado")
	ErrTimerAlreadyRunning = errors.New("já existe um timer em execução")
	ErrNoRunningTimer      = errors.New("nenhum timer em execução")
	ErrInvalidDuration     = errors.New("duração inválida")
	ErrInvalidRequest      = errors.New("requisição inválida")
	ErrDatabaseOperation   = errors.New("erro ao realizar operação no banco de dados")
	ErrGenerateID          = errors.New("erro ao gerar ID")
)

// TimeEntryError é um erro com contexto adicional para registros de tempo
type TimeEntryError struct {
	Err     error
	Code    string
	EntryID string
	Details string
}

func (e *TimeEntryError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *TimeEntryError) Unwrap() error {
	return e.Err
}

func NewTimeEntryError(err error, code string, details string) *TimeEntryError {
	return &TimeEntryError{Err: err, Code: code, Details: details}
}

func NewTimeEntryErrorWithID(err error, code string, entryID string, details string) *TimeEntryError {
	return &TimeEntryError{Err: err, Code: code, EntryID: entryID, Details: details}
}
