package notify

import (
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"

	"stayhaven/internal/config"
)

// Notifier publishes email-notification messages for the external mail
// worker. Delivery is best-effort: callers log publish failures and move on.
type Notifier interface {
	InquiryReceived(msg InquiryMessage) error
	Close() error
}

// InquiryMessage is the payload the mail worker renders into the
// "new inquiry" email for the back office.
type InquiryMessage struct {
	InquiryID string `json:"inquiryId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Sender    string `json:"sender"`
}

type AMQPNotifier struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	cfg     *config.Config
}

func NewAMQPNotifier(cfg *config.Config) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(cfg.AMQP.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open AMQP channel: %w", err)
	}

	_, err = channel.QueueDeclare(
		cfg.AMQP.MailQueue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", cfg.AMQP.MailQueue, err)
	}

	return &AMQPNotifier{conn: conn, channel: channel, cfg: cfg}, nil
}

func (n *AMQPNotifier) InquiryReceived(msg InquiryMessage) error {
	msg.Sender = n.cfg.AMQP.MailSender

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	err = n.channel.Publish(
		"",
		n.cfg.AMQP.MailQueue,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	return nil
}

func (n *AMQPNotifier) Close() error {
	if n.channel != nil {
		n.channel.Close()
	}
	if n.conn != nil {
		return n.conn.Close()
	}
	return nil
}
