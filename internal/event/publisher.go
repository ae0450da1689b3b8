package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lshigami/atcprep/config"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

type Publisher interface {
	PublishSubmission(ctx context.Context, e SubmissionEvent) error
	Close() error
}

// EventPublisher sends events to a RabbitMQ topic exchange. With no AMQP URL
// configured it is disabled and every publish is a no-op.
type EventPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	enabled  bool
}

func NewEventPublisher(cfg *config.Config) (Publisher, error) {
	if cfg.Events.AMQPURL == "" {
		log.Warn().Msg("AMQP_URL is empty, event publishing is disabled")
		return &EventPublisher{enabled: false}, nil
	}

	conn, err := amqp.Dial(cfg.Events.AMQPURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}
	if err := ch.ExchangeDeclare(cfg.Events.Exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", cfg.Events.Exchange, err)
	}

	log.Info().Str("exchange", cfg.Events.Exchange).Msg("Event publisher connected")
	return &EventPublisher{conn: conn, channel: ch, exchange: cfg.Events.Exchange, enabled: true}, nil
}

func (p *EventPublisher) PublishSubmission(ctx context.Context, e SubmissionEvent) error {
	if !p.enabled {
		log.Debug().Str("type", string(e.Type)).Msg("Event publishing is disabled, skipping")
		return nil
	}

	body, err := e.ToJSON()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.channel.PublishWithContext(ctx, p.exchange, string(e.Type), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", e.Type, err)
	}

	log.Info().Str("type", string(e.Type)).Str("submissionID", e.SubmissionID).Msg("Published submission event")
	return nil
}

func (p *EventPublisher) Close() error {
	if !p.enabled {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.channel.Close(); err != nil {
		log.Warn().Err(err).Msg("Error closing RabbitMQ channel")
	}
	return p.conn.Close()
}
