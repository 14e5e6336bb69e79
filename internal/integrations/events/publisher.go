package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	// batchTimeout ограничивает ожидание неполного батча синхронным writer
	batchTimeout = 10 * time.Millisecond
	// publishTimeout ограничивает одну публикацию
	publishTimeout = 5 * time.Second
)

// Writer часть *kafka.Writer, используемая издателем
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher публикует события о записях в Kafka
// Ключ сообщения - ID барбера, поэтому события одного барбера попадают в одну партицию по порядку
type Publisher struct {
	writer Writer
	now    func() time.Time
}

// NewPublisher создает издателя с kafka.Writer на указанный топик
func NewPublisher(brokers []string, topic string) *Publisher {
	return NewPublisherWithWriter(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           batchTimeout,
		WriteTimeout:           publishTimeout,
	})
}

// NewPublisherWithWriter создает издателя поверх произвольного writer
func NewPublisherWithWriter(w Writer) *Publisher {
	return &Publisher{writer: w, now: time.Now}
}

// Publish отправляет событие. ID и время события заполняются, если не заданы
// Публикация не зависит от отмены ctx запроса и ограничена publishTimeout
func (p *Publisher) Publish(ctx context.Context, event AppointmentEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = p.now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMarshal, err)
	}

	msg := kafka.Message{
		Key:   []byte(event.ProviderID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(event.ID)},
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := p.writer.WriteMessages(pubCtx, msg); err != nil {
		return fmt.Errorf("%w: type=%s appointment=%s: %v", ErrPublish, event.Type, event.AppointmentID, err)
	}

	return nil
}

// Close закрывает writer
func (p *Publisher) Close() error {
	return p.writer.Close()
}

// NopPublisher издатель для конфигурации без Kafka
type NopPublisher struct{}

// Publish ничего не делает
func (NopPublisher) Publish(context.Context, AppointmentEvent) error { return nil }

// Close ничего не делает
func (NopPublisher) Close() error { return nil }
