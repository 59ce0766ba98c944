package rabbitmq_adapter

import (
	"context"
	"fmt"
	"listing-service/internal/core/port"

	amqp "github.com/rabbitmq/amqp091-go"
)

// PublisherConfig конфигурация для производителя событий
type PublisherConfig struct {
	URL             string
	ExchangeName    string
	ExchangeType    string // direct, fanout, topic
	DurableExchange bool
}

// Publisher - тонкая обертка над каналом AMQP: одно соединение,
// один канал, один обменник на все события сервиса.
type Publisher struct {
	config     PublisherConfig
	connection *amqp.Connection
	channel    *amqp.Channel
	logger     port.LoggerPort
}

func NewPublisher(cfg PublisherConfig, logger port.LoggerPort) (*Publisher, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("producer: rabbitmq URL is required")
	}
	if cfg.ExchangeName == "" || cfg.ExchangeType == "" {
		return nil, fmt.Errorf("producer: exchange name and type are required")
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("producer: failed to dial RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("producer: failed to open a channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.ExchangeName,
		cfg.ExchangeType,
		cfg.DurableExchange,
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("producer: failed to declare exchange '%s': %w", cfg.ExchangeName, err)
	}

	logger.Debug("Successfully connected and channel opened", port.Fields{
		"exchange": cfg.ExchangeName,
	})

	return &Publisher{
		config:     cfg,
		connection: conn,
		channel:    ch,
		logger:     logger,
	}, nil
}

// Publish публикует сообщение
func (p *Publisher) Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error {
	if p.channel == nil || p.connection == nil || p.connection.IsClosed() {
		return fmt.Errorf("producer: not connected or channel/connection is closed")
	}

	err := p.channel.PublishWithContext(
		ctx,
		p.config.ExchangeName,
		routingKey,
		false, // mandatory
		false, // immediate
		msg,
	)
	if err != nil {
		return fmt.Errorf("producer: failed to publish message: %w", err)
	}
	return nil
}

// Close закрывает канал и соединение производителя
func (p *Publisher) Close() error {
	p.logger.Debug("Producer: Closing...", nil)
	var firstErr error

	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			p.logger.Error("Error closing channel", err, nil)
			firstErr = err
		}
		p.channel = nil
	}
	if p.connection != nil {
		if err := p.connection.Close(); err != nil {
			p.logger.Error("Error closing connection", err, nil)
			if firstErr == nil {
				firstErr = err
			}
		}
		p.connection = nil
	}

	p.logger.Info("Producer closed.", nil)
	return firstErr
}
