package projecting

import (
	"errors"
	"fmt"
)

var (
	ErrProjectNotFound   = errors.New("projeto não encontrado")
	ErrClientNotFound    = errors.New("cliente não encontrado")
	ErrInvalidRequest    = errors.New("requisição inválida")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
	ErrGenerateID        = errors.New("erro ao gerar ID")
)

// ProjectError é um erro com contexto adicional para projetos
type ProjectError struct {
	Err       error
	Code      string
	ProjectID string
	Details   string
}

func (e *ProjectError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ProjectError) Unwrap() error {
	return e.Err
}

func NewProjectError(err error, code string, details string) *ProjectError {
	return &ProjectError{Err: err, Code: code, Details: details}
}

func NewProjectErrorWithID(err error, code string, projectID string, details string) *ProjectError {
	return &ProjectError{Err: err, Code: code, ProjectID: projectID, Details: details}
}
