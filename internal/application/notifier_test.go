package application

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/shopcart-api/pkg/mailer"
	tpl "github.com/oksasatya/shopcart-api/pkg/mailer/templates"
)

type capturePublisher struct {
	jobs []any
	err  error
}

func (p *capturePublisher) PublishJSON(ctx context.Context, body any) error {
	p.jobs = append(p.jobs, body)
	return p.err
}

func sampleNotice() ResetNotice {
	return ResetNotice{
		Email:     "a@x.com",
		Link:      "http://front/reset.html?token=abc",
		ExpiresAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		TTL:       time.Hour,
	}
}

func TestLogNotifierWritesLink(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(&logrus.JSONFormatter{})

	require.NoError(t, LogNotifier{Logger: l}.NotifyReset(context.Background(), sampleNotice()))
	assert.Contains(t, buf.String(), "http://front/reset.html?token=abc")
	assert.Contains(t, buf.String(), "a@x.com")
}

func TestQueueNotifierEnqueuesTemplateJob(t *testing.T) {
	pub := &capturePublisher{}
	n := QueueNotifier{Pub: pub, CompanyName: "Acme"}

	require.NoError(t, n.NotifyReset(context.Background(), sampleNotice()))
	require.Len(t, pub.jobs, 1)

	job, ok := pub.jobs[0].(mailer.EmailJob)
	require.True(t, ok)
	assert.Equal(t, "a@x.com", job.To)
	assert.Equal(t, tpl.ForgotPassword, job.Template)
	assert.Equal(t, "http://front/reset.html?token=abc", job.Data["ResetURL"])
	assert.Equal(t, "1 hour", job.Data["ExpiresIn"])
}

func TestMultiNotifierReturnsFirstError(t *testing.T) {
	boom := errors.New("queue down")
	rec := &recordingNotifier{}
	m := MultiNotifier{QueueNotifier{Pub: &capturePublisher{err: boom}}, rec}

	err := m.NotifyReset(context.Background(), sampleNotice())
	assert.ErrorIs(t, err, boom)
	assert.Len(t, rec.notices, 1)
}
