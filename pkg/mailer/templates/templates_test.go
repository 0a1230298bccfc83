package templates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderForgotPassword(t *testing.T) {
	data := NewForgotPasswordData("Acme", "a@x.com", "http://front/reset.html?token=abc",
		WithExpiresIn(time.Hour),
		WithTime(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)),
	)

	subject, text, html, err := Render(ForgotPassword, ToMap(data))
	require.NoError(t, err)
	assert.Equal(t, "Reset your Acme password", subject)
	assert.Contains(t, text, "http://front/reset.html?token=abc")
	assert.Contains(t, text, "1 hour")
	assert.Contains(t, html, `href="http://front/reset.html?token=abc"`)
}

func TestRenderDefaultsCompany(t *testing.T) {
	subject, _, _, err := Render(ForgotPassword, ToMap(NewForgotPasswordData("", "a@x.com", "u")))
	require.NoError(t, err)
	assert.Equal(t, "Reset your Shopcart password", subject)
}

func TestHumanDuration(t *testing.T) {
	assert.Equal(t, "1 hour", humanDuration(time.Hour))
	assert.Equal(t, "2 hours", humanDuration(2*time.Hour))
	assert.Equal(t, "30 minutes", humanDuration(30*time.Minute))
}
