package mailer

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Message é o e-mail já renderizado, pronto para envio direto ou pela fila
type Message struct {
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	HTML    string `json:"html" validate:"required"`
}

func (m Message) Validate() error {
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("e-mail inválido: %w", err)
	}
	return nil
}

// Sender entrega uma mensagem. Implementado por SMTPSender e QueueSender.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
