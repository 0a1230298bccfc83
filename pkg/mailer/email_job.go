package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Either Template (with Data) or Subject plus Text/HTML is set.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // e.g. "forgot_password"
	Data     map[string]any `json:"data,omitempty"`
}

// NewTemplateJob builds a job rendered by the worker from the named template.
func NewTemplateJob(to, template string, data map[string]any) EmailJob {
	return EmailJob{To: to, Template: template, Data: data}
}
