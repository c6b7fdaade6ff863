package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/orbit-api/internal/config"
	"github.com/vfg2006/orbit-api/pkg/log"
	"github.com/wneessen/go-mail"
)

type SMTPSender struct {
	cfg config.SMTP
}

func NewSMTPSender(cfg config.SMTP) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) client() (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(15 * time.Second),
	}
	if s.cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.User),
			mail.WithPassword(s.cfg.Password),
		)
	}

	return mail.NewClient(s.cfg.Host, opts...)
}

// Send entrega a mensagem via SMTP abrindo uma conexão por envio
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	m := mail.NewMsg()
	if err := m.FromFormat(s.cfg.FromName, s.cfg.From); err != nil {
		return fmt.Errorf("remetente inválido: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("destinatário inválido: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTML)

	c, err := s.client()
	if err != nil {
		return fmt.Errorf("criar cliente SMTP: %w", err)
	}

	if err := c.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("enviar e-mail: %w", err)
	}

	log.ForContext(ctx).WithField("user_email", msg.To).Info("E-mail enviado via SMTP")
	return nil
}
