package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/shopcart-api/pkg/mailer"
	tpl "github.com/oksasatya/shopcart-api/pkg/mailer/templates"
)

// ResetNotice describes a freshly issued reset link.
type ResetNotice struct {
	Email     string
	Link      string
	ExpiresAt time.Time
	TTL       time.Duration
}

// ResetNotifier delivers reset links to whoever relays them to the shopper.
type ResetNotifier interface {
	NotifyReset(ctx context.Context, n ResetNotice) error
}

// LogNotifier writes reset links to the operator log.
type LogNotifier struct {
	Logger *logrus.Logger
}

func (n LogNotifier) NotifyReset(ctx context.Context, notice ResetNotice) error {
	n.Logger.WithFields(logrus.Fields{
		"to":         notice.Email,
		"link":       notice.Link,
		"expires_at": notice.ExpiresAt.UTC().Format(time.RFC3339),
	}).Info("password reset link issued")
	return nil
}

// JobPublisher enqueues JSON messages, e.g. helpers.RabbitPublisher.
type JobPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// QueueNotifier enqueues a forgot_password email job for the email worker.
type QueueNotifier struct {
	Pub         JobPublisher
	CompanyName string
	SupportURL  string
}

func (n QueueNotifier) NotifyReset(ctx context.Context, notice ResetNotice) error {
	data := tpl.NewForgotPasswordData(
		n.CompanyName,
		notice.Email,
		notice.Link,
		tpl.WithTime(time.Now()),
		tpl.WithExpiresAt(notice.ExpiresAt),
		tpl.WithExpiresIn(notice.TTL),
		tpl.WithSupportURL(n.SupportURL),
	)
	job := mailer.NewTemplateJob(notice.Email, tpl.ForgotPassword, tpl.ToMap(data))
	return n.Pub.PublishJSON(ctx, job)
}

// MultiNotifier fans a notice out to every notifier, returning the first error.
type MultiNotifier []ResetNotifier

func (m MultiNotifier) NotifyReset(ctx context.Context, notice ResetNotice) error {
	var first error
	for _, n := range m {
		if err := n.NotifyReset(ctx, notice); err != nil && first == nil {
			first = err
		}
	}
	return first
}
