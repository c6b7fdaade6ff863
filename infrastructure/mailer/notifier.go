package mailer

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/vfg2006/orbit-api/internal/config"
)

const (
	subjectVerification  = "Verify your email"
	subjectResetPassword = "Reset your password"
)

type linkEmail struct {
	To    string `validate:"required,email"`
	Token string `validate:"required"`
	URL   string `validate:"required,url"`
}

// Notifier monta os e-mails transacionais de autenticação e os entrega pelo Sender configurado
type Notifier struct {
	sender          Sender
	appName         string
	frontendURL     string
	verificationTTL time.Duration
	resetTTL        time.Duration
}

func NewNotifier(sender Sender, app config.App, auth config.Auth) *Notifier {
	return &Notifier{
		sender:          sender,
		appName:         app.Name,
		frontendURL:     strings.TrimRight(app.FrontendURL, "/"),
		verificationTTL: auth.VerificationTTL,
		resetTTL:        auth.ResetTTL,
	}
}

func (n *Notifier) SendVerificationEmail(ctx context.Context, to, name, token string) error {
	return n.sendLink(ctx, templateVerification, subjectVerification, "/verify-email", n.verificationTTL, to, name, token)
}

func (n *Notifier) SendResetPasswordEmail(ctx context.Context, to, name, token string) error {
	return n.sendLink(ctx, templateResetPassword, subjectResetPassword, "/reset-password", n.resetTTL, to, name, token)
}

func (n *Notifier) sendLink(ctx context.Context, tmpl, subject, path string, ttl time.Duration, to, name, token string) error {
	link := linkEmail{
		To:    to,
		Token: token,
		URL:   n.frontendURL + path + "?token=" + url.QueryEscape(token),
	}
	if err := validate.Struct(link); err != nil {
		return fmt.Errorf("dados do e-mail inválidos: %w", err)
	}

	html, err := render(tmpl, linkEmailData{
		AppName:   n.appName,
		Name:      name,
		URL:       link.URL,
		Token:     token,
		ExpiresIn: humanizeTTL(ttl),
	})
	if err != nil {
		return fmt.Errorf("renderizar template %s: %w", tmpl, err)
	}

	return n.sender.Send(ctx, Message{To: to, Subject: subject, HTML: html})
}

func humanizeTTL(d time.Duration) string {
	switch {
	case d >= time.Hour && d%time.Hour == 0:
		h := int(d / time.Hour)
		if h == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", h)
	case d >= time.Minute:
		return fmt.Sprintf("%d minutes", int(d/time.Minute))
	default:
		return d.String()
	}
}
