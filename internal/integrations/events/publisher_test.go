package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
	ctxErr   error
	deadline bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.ctxErr = ctx.Err()
	_, w.deadline = ctx.Deadline()
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := NewPublisherWithWriter(w)
	fixed := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return fixed }

	err := p.Publish(context.Background(), AppointmentEvent{
		Type:          TypeAppointmentCreated,
		AppointmentID: "a-1",
		ProviderID:    "p-1",
		ServiceID:     "corte",
		Date:          "2024-03-04",
		Time:          "10:00",
		Status:        "Pendente",
	})
	require.NoError(t, err)
	require.Len(t, w.messages, 1)

	msg := w.messages[0]
	assert.Equal(t, []byte("p-1"), msg.Key)
	require.Len(t, msg.Headers, 2)
	assert.Equal(t, "event_type", msg.Headers[1].Key)
	assert.Equal(t, []byte(TypeAppointmentCreated), msg.Headers[1].Value)

	var decoded AppointmentEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.NotEmpty(t, decoded.ID)
	assert.Equal(t, string(msg.Headers[0].Value), decoded.ID)
	assert.Equal(t, fixed, decoded.OccurredAt)
	assert.Equal(t, "10:00", decoded.Time)
}

func TestPublisher_WriteError(t *testing.T) {
	p := NewPublisherWithWriter(&fakeWriter{err: errors.New("broker unavailable")})

	err := p.Publish(context.Background(), AppointmentEvent{Type: TypeAppointmentStatusChanged, AppointmentID: "a-1"})
	assert.ErrorIs(t, err, ErrPublish)
}

func TestPublisher_DetachedFromRequestContext(t *testing.T) {
	w := &fakeWriter{}
	p := NewPublisherWithWriter(w)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Publish(ctx, AppointmentEvent{Type: TypeAppointmentCreated, AppointmentID: "a-1", ProviderID: "p-1"})
	require.NoError(t, err)
	require.Len(t, w.messages, 1)
	assert.NoError(t, w.ctxErr)
	assert.True(t, w.deadline)
}

func TestNewPublisher_WriterConfig(t *testing.T) {
	p := NewPublisher([]string{"localhost:9092"}, "barber.appointments")
	defer p.Close()

	w, ok := p.writer.(*kafka.Writer)
	require.True(t, ok)
	assert.Equal(t, "barber.appointments", w.Topic)
	assert.Equal(t, 10*time.Millisecond, w.BatchTimeout)
	assert.Equal(t, kafka.RequireOne, w.RequiredAcks)
	assert.False(t, w.Async)
	assert.IsType(t, &kafka.Hash{}, w.Balancer)
}

func TestPublisher_Close(t *testing.T) {
	w := &fakeWriter{}
	require.NoError(t, NewPublisherWithWriter(w).Close())
	assert.True(t, w.closed)
}

func TestNopPublisher(t *testing.T) {
	var p NopPublisher
	assert.NoError(t, p.Publish(context.Background(), AppointmentEvent{}))
	assert.NoError(t, p.Close())
}
