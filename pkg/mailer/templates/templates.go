package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmpl "html/template"
	"strings"
	texttpl "text/template"
	"time"
)

//go:embed *.tmpl
var FS embed.FS

// Template names
const (
	ForgotPassword = "forgot_password"
)

// EmailData holds the fields available to every template.
type EmailData struct {
	Email       string    `json:"Email"`
	CompanyName string    `json:"CompanyName"`
	SupportURL  string    `json:"SupportURL"`
	ResetURL    string    `json:"ResetURL"`
	ExpiresAt   time.Time `json:"ExpiresAt"`
	ExpiresIn   string    `json:"ExpiresIn"`
	Time        string    `json:"Time"`
}

// ToMap converts EmailData to the generic map carried by an EmailJob.
func ToMap(d EmailData) map[string]any {
	return map[string]any{
		"Email":       d.Email,
		"CompanyName": d.CompanyName,
		"SupportURL":  d.SupportURL,
		"ResetURL":    d.ResetURL,
		"ExpiresAt":   d.ExpiresAt.Format(time.RFC3339),
		"ExpiresIn":   d.ExpiresIn,
		"Time":        d.Time,
	}
}

// defaultFn supports pipe usage: {{ .Value | default "Fallback" }}
func defaultFn(fallback any, value any) any {
	if s, ok := value.(string); value == nil || (ok && strings.TrimSpace(s) == "") {
		return fallback
	}
	return value
}

func baseFuncs() map[string]any {
	return map[string]any{
		"upper":   strings.ToUpper,
		"default": defaultFn,
	}
}

var (
	htmlFuncMap = htmpl.FuncMap(baseFuncs())
	textFuncMap = texttpl.FuncMap(baseFuncs())
)

// renderFile loads and renders a single template file from the embedded FS.
func renderFile(filename string, isHTML bool, data any) (string, error) {
	var (
		buf bytes.Buffer
		err error
	)
	if isHTML {
		tpl, e := htmpl.New(filename).Funcs(htmlFuncMap).ParseFS(FS, filename)
		if e != nil {
			return "", fmt.Errorf("parse html %q: %w", filename, e)
		}
		err = tpl.Execute(&buf, data)
	} else {
		tpl, e := texttpl.New(filename).Funcs(textFuncMap).ParseFS(FS, filename)
		if e != nil {
			return "", fmt.Errorf("parse text %q: %w", filename, e)
		}
		err = tpl.Execute(&buf, data)
	}
	if err != nil {
		return "", fmt.Errorf("exec %q: %w", filename, err)
	}
	return buf.String(), nil
}

// Render renders <name>.subject.tmpl, <name>.text.tmpl and <name>.html.tmpl.
func Render(name string, data any) (subject string, text string, html string, err error) {
	subject, err = renderFile(name+".subject.tmpl", false, data)
	if err != nil {
		return "", "", "", err
	}
	text, err = renderFile(name+".text.tmpl", false, data)
	if err != nil {
		return "", "", "", err
	}
	html, err = renderFile(name+".html.tmpl", true, data)
	if err != nil {
		return "", "", "", err
	}
	return strings.TrimSpace(subject), text, html, nil
}
