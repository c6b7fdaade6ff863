package mailer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/orbit-api/infrastructure/messaging"
	"github.com/vfg2006/orbit-api/internal/config"
)

type fakeSender struct {
	sent []Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, msg Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

type fakePublisher struct {
	bodies [][]byte
	err    error
}

func (f *fakePublisher) Publish(_ context.Context, body []byte) error {
	if f.err != nil {
		return f.err
	}
	f.bodies = append(f.bodies, body)
	return nil
}

func newTestNotifier(sender Sender) *Notifier {
	return NewNotifier(sender,
		config.App{Name: "Orbit", FrontendURL: "http://localhost:3000/"},
		config.Auth{VerificationTTL: 30 * time.Minute, ResetTTL: time.Hour},
	)
}

func TestNotifierSendVerificationEmail(t *testing.T) {
	sender := &fakeSender{}
	n := newTestNotifier(sender)

	err := n.SendVerificationEmail(context.Background(), "alex@example.com", "Alex", "tok123")
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, "alex@example.com", msg.To)
	assert.Equal(t, "Verify your email", msg.Subject)
	assert.Contains(t, msg.HTML, "http://localhost:3000/verify-email?token=tok123")
	assert.Contains(t, msg.HTML, "Verify Email")
	assert.Contains(t, msg.HTML, "Token: tok123")
	assert.Contains(t, msg.HTML, "30 minutes")
}

func TestNotifierSendResetPasswordEmail(t *testing.T) {
	sender := &fakeSender{}
	n := newTestNotifier(sender)

	err := n.SendResetPasswordEmail(context.Background(), "alex@example.com", "Alex", "abc")
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, "Reset your password", msg.Subject)
	assert.Contains(t, msg.HTML, "http://localhost:3000/reset-password?token=abc")
	assert.Contains(t, msg.HTML, "1 hour")
}

func TestNotifierRejectsInvalidInput(t *testing.T) {
	sender := &fakeSender{}
	n := newTestNotifier(sender)

	err := n.SendVerificationEmail(context.Background(), "não-é-email", "Alex", "tok")
	require.Error(t, err)

	err = n.SendVerificationEmail(context.Background(), "alex@example.com", "Alex", "")
	require.Error(t, err)

	assert.Empty(t, sender.sent)
}

func TestNotifierPropagatesSenderError(t *testing.T) {
	boom := errors.New("smtp fora do ar")
	n := newTestNotifier(&fakeSender{err: boom})

	err := n.SendVerificationEmail(context.Background(), "alex@example.com", "Alex", "tok")
	assert.ErrorIs(t, err, boom)
}

func TestQueueSenderRoundTrip(t *testing.T) {
	pub := &fakePublisher{}
	q := NewQueueSender(pub)

	msg := Message{To: "alex@example.com", Subject: "Verify your email", HTML: "<p>oi</p>"}
	require.NoError(t, q.Send(context.Background(), msg))
	require.Len(t, pub.bodies, 1)

	decoded, err := DecodeMessage(pub.bodies[0])
	require.NoError(t, err)
	assert.Equal(t, msg, decoded)
}

func TestQueueSenderValidatesBeforePublishing(t *testing.T) {
	pub := &fakePublisher{}
	q := NewQueueSender(pub)

	err := q.Send(context.Background(), Message{To: "alex@example.com"})
	require.Error(t, err)
	assert.Empty(t, pub.bodies)
}

func TestDecodeMessageRejectsGarbage(t *testing.T) {
	_, err := DecodeMessage([]byte("{não é json"))
	require.Error(t, err)

	_, err = DecodeMessage([]byte(`{"to":"x","subject":"s","html":"h"}`))
	require.Error(t, err)
}

func TestDeliveryHandler(t *testing.T) {
	body := []byte(`{"to":"alex@example.com","subject":"Verify your email","html":"<p>oi</p>"}`)

	t.Run("Entrega a mensagem", func(t *testing.T) {
		sender := &fakeSender{}
		err := NewDeliveryHandler(sender)(context.Background(), body)

		require.NoError(t, err)
		require.Len(t, sender.sent, 1)
		assert.Equal(t, "alex@example.com", sender.sent[0].To)
	})

	t.Run("Mensagem ilegível é descartada", func(t *testing.T) {
		sender := &fakeSender{}
		err := NewDeliveryHandler(sender)(context.Background(), []byte("{"))

		assert.ErrorIs(t, err, messaging.ErrPermanent)
		assert.Empty(t, sender.sent)
	})

	t.Run("Falha de SMTP volta para a fila", func(t *testing.T) {
		sender := &fakeSender{err: errors.New("smtp indisponível")}
		err := NewDeliveryHandler(sender)(context.Background(), body)

		require.Error(t, err)
		assert.NotErrorIs(t, err, messaging.ErrPermanent)
	})
}

func TestHumanizeTTL(t *testing.T) {
	assert.Equal(t, "30 minutes", humanizeTTL(30*time.Minute))
	assert.Equal(t, "1 hour", humanizeTTL(time.Hour))
	assert.Equal(t, "2 hours", humanizeTTL(2*time.Hour))
	assert.Equal(t, "90 minutes", humanizeTTL(90*time.Minute))
}
