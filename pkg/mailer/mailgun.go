package mailer

import (
	"context"
	"time"

	mg "github.com/mailgun/mailgun-go/v4"
)

// Mailgun sends email through the Mailgun API.
type Mailgun struct {
	client  *mg.MailgunImpl
	Sender  string
	Timeout time.Duration
}

// NewMailgun builds a client for domain. apiBase selects a region such as
// mg.APIBaseEU; empty keeps the US endpoint.
func NewMailgun(domain, apiKey, sender, apiBase string) *Mailgun {
	client := mg.NewMailgun(domain, apiKey)
	if apiBase != "" {
		client.SetAPIBase(apiBase)
	}
	return &Mailgun{client: client, Sender: sender, Timeout: 10 * time.Second}
}

// Send delivers one message. html is optional and sent as the HTML part when set.
func (m *Mailgun) Send(ctx context.Context, to, subject, text, html string) error {
	msg := m.client.NewMessage(m.Sender, subject, text, to)
	if html != "" {
		msg.SetHtml(html)
	}
	c, cancel := context.WithTimeout(ctx, m.Timeout)
	defer cancel()
	_, _, err := m.client.Send(c, msg)
	return err
}
