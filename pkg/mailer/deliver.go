package mailer

import (
	"context"
	"errors"
	"fmt"

	tpl "github.com/oksasatya/shopcart-api/pkg/mailer/templates"
)

// Sender delivers one rendered email. *Mailgun implements it.
type Sender interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

// ErrBadJob marks jobs that can never be delivered, so they should not be retried.
var ErrBadJob = errors.New("bad email job")

// Compose returns the subject and bodies for job, rendering its template when one is named.
func Compose(job EmailJob) (subject, text, html string, err error) {
	if job.To == "" {
		return "", "", "", fmt.Errorf("%w: missing recipient", ErrBadJob)
	}
	if job.Template == "" {
		if job.Subject == "" || (job.Text == "" && job.HTML == "") {
			return "", "", "", fmt.Errorf("%w: missing subject or body", ErrBadJob)
		}
		return job.Subject, job.Text, job.HTML, nil
	}
	subject, text, html, err = tpl.Render(job.Template, job.Data)
	if err != nil {
		return "", "", "", fmt.Errorf("%w: render %s: %v", ErrBadJob, job.Template, err)
	}
	if job.Subject != "" {
		subject = job.Subject
	}
	return subject, text, html, nil
}

// Deliver composes job and hands it to s.
func Deliver(ctx context.Context, s Sender, job EmailJob) error {
	subject, text, html, err := Compose(job)
	if err != nil {
		return err
	}
	return s.Send(ctx, job.To, subject, text, html)
}
