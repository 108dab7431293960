package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/dtroode/volunteer-server/internal/logger"
	"github.com/dtroode/volunteer-server/internal/model"
)

// Writer is the part of *kafka.Writer the notifier uses.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// CodeMessage is the payload published for the mail sender.
type CodeMessage struct {
	Email    string    `json:"email"`
	Code     string    `json:"code"`
	IssuedAt time.Time `json:"issued_at"`
}

var _ model.CodeNotifier = (*Kafka)(nil)

// Kafka publishes confirmation codes to a topic consumed by the mail sender.
type Kafka struct {
	writer Writer
	logger *logger.Logger
	now    func() time.Time
}

func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
}

func NewKafka(writer Writer, logger *logger.Logger) *Kafka {
	return &Kafka{
		writer: writer,
		logger: logger,
		now:    time.Now,
	}
}

// DeliverCode publishes the code keyed by email so codes for one account stay ordered.
func (n *Kafka) DeliverCode(ctx context.Context, identifier, code string) error {
	data, err := json.Marshal(CodeMessage{
		Email:    identifier,
		Code:     code,
		IssuedAt: n.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal code message: %w", err)
	}

	if err := n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(identifier),
		Value: data,
	}); err != nil {
		n.logger.Error("Notifier: failed to publish confirmation code",
			"email", identifier,
			"error", err.Error())
		return fmt.Errorf("failed to publish confirmation code: %w", err)
	}

	n.logger.Debug("Notifier: confirmation code published",
		"email", identifier)

	return nil
}

func (n *Kafka) Close() error {
	return n.writer.Close()
}
