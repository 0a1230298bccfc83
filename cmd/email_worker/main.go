package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/shopcart-api/config"
	"github.com/oksasatya/shopcart-api/pkg/helpers"
	"github.com/oksasatya/shopcart-api/pkg/mailer"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-email-worker", cfg.Env)

	if !cfg.MailSendEnabled {
		logger.Info("MAIL_SEND_ENABLED=false; email worker disabled (no real emails will be sent)")
		return
	}
	if cfg.RabbitMQURL == "" || cfg.RabbitMQEmailQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}
	if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" || cfg.MailgunSender == "" {
		log.Fatal("Mailgun not configured")
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	// prefetch for fair dispatch between workers
	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}
	if _, err := helpers.DeclareQueue(ch, cfg.RabbitMQEmailQueue); err != nil {
		log.Fatalf("queue declare: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQEmailQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	mg := mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender, cfg.MailgunAPIBase)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	w := &worker{logger: logger, sender: mg, retryDelay: 5 * time.Second}
	go func() {
		defer close(done)
		for msg := range msgs {
			w.handle(ctx, msg)
		}
	}()

	logger.WithField("queue", cfg.RabbitMQEmailQueue).Info("email worker listening")
	select {
	case <-stop:
	case <-done:
		logger.Warn("delivery channel closed")
		return
	}
	logger.Info("shutting down...")
	cancel()
	_ = ch.Close()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}

type worker struct {
	logger     *logrus.Logger
	sender     mailer.Sender
	retryDelay time.Duration
}

// handle acks delivered jobs and drops undeliverable ones. A failed send is
// requeued once after retryDelay; a redelivered job that fails again is
// rejected so it reaches the dead-letter exchange when one is bound.
func (w *worker) handle(ctx context.Context, msg amqp.Delivery) {
	var job mailer.EmailJob
	if err := json.Unmarshal(msg.Body, &job); err != nil {
		w.logger.WithError(err).Warn("bad message")
		_ = msg.Nack(false, false)
		return
	}
	entry := w.logger.WithFields(logrus.Fields{"to": job.To, "template": job.Template, "redelivered": msg.Redelivered})

	c, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	err := mailer.Deliver(c, w.sender, job)
	switch {
	case err == nil:
		entry.Info("email sent")
		_ = msg.Ack(false)
	case errors.Is(err, mailer.ErrBadJob):
		entry.WithError(err).Warn("dropping email job")
		_ = msg.Nack(false, false)
	case msg.Redelivered:
		entry.WithError(err).Error("send failed again, rejecting")
		_ = msg.Nack(false, false)
	default:
		entry.WithError(err).Error("send failed, retrying")
		select {
		case <-ctx.Done():
		case <-time.After(w.retryDelay):
		}
		_ = msg.Nack(false, true)
	}
}
