package templates

import (
	"strconv"
	"strings"
	"time"
)

// Option pattern
type Option func(*EmailData)

func WithTime(t time.Time) Option {
	return func(d *EmailData) { d.Time = t.UTC().Format("02 January 2006, 15:04") }
}

func WithExpiresIn(ttl time.Duration) Option {
	return func(d *EmailData) { d.ExpiresIn = humanDuration(ttl) }
}

func WithExpiresAt(t time.Time) Option {
	return func(d *EmailData) { d.ExpiresAt = t.UTC() }
}

func WithSupportURL(url string) Option {
	return func(d *EmailData) { d.SupportURL = strings.TrimSpace(url) }
}

// NewForgotPasswordData builds the data for the forgot_password template.
func NewForgotPasswordData(companyName, email, resetURL string, opts ...Option) EmailData {
	d := EmailData{CompanyName: companyName, Email: email, ResetURL: resetURL}
	for _, o := range opts {
		o(&d)
	}
	return d
}

func humanDuration(d time.Duration) string {
	switch {
	case d >= time.Hour && d%time.Hour == 0:
		if d == time.Hour {
			return "1 hour"
		}
		return strconv.Itoa(int(d/time.Hour)) + " hours"
	case d >= time.Minute:
		return strconv.Itoa(int(d/time.Minute)) + " minutes"
	default:
		return d.String()
	}
}
