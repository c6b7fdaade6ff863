package messaging

import (
	"context"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
)

type fakeAcknowledger struct {
	acked    bool
	nacked   bool
	requeued bool
}

func (f *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	f.acked = true
	return nil
}

func (f *fakeAcknowledger) Nack(tag uint64, multiple, requeue bool) error {
	f.nacked = true
	f.requeued = requeue
	return nil
}

func (f *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	return f.Nack(tag, false, requeue)
}

func TestDispatch(t *testing.T) {
	tests := []struct {
		name          string
		handlerErr    error
		expectAck     bool
		expectNack    bool
		expectRequeue bool
	}{
		{name: "Sucesso confirma a mensagem", expectAck: true},
		{name: "Erro permanente descarta", handlerErr: Permanent(errors.New("payload inválido")), expectNack: true},
		{name: "Erro transitório devolve para a fila", handlerErr: errors.New("smtp indisponível"), expectNack: true, expectRequeue: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ack := &fakeAcknowledger{}
			var received []byte

			dispatch(context.Background(), amqp.Delivery{Acknowledger: ack, Body: []byte(`{"to":"a@b.com"}`)},
				func(ctx context.Context, body []byte) error {
					received = body
					return tt.handlerErr
				})

			assert.Equal(t, `{"to":"a@b.com"}`, string(received))
			assert.Equal(t, tt.expectAck, ack.acked)
			assert.Equal(t, tt.expectNack, ack.nacked)
			assert.Equal(t, tt.expectRequeue, ack.requeued)
		})
	}
}

func TestPermanentKeepsCause(t *testing.T) {
	cause := errors.New("json inválido")
	err := Permanent(cause)

	assert.True(t, errors.Is(err, ErrPermanent))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "json inválido", err.Error())
}
