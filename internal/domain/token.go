package domain

import "time"

type TokenKind string

const (
	TokenEmailVerification TokenKind = "email_verification"
	TokenPasswordReset     TokenKind = "password_reset"
)

// VerificationToken guarda apenas o hash do token enviado por e-mail
type VerificationToken struct {
	UserID    int
	Kind      TokenKind
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (t *VerificationToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
