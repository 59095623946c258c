package notifications

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"

	"nextu/internal/shared/config"
	"nextu/pkg/logger"
)

type EmailService interface {
	Send(notification *Notification) error
}

type smtpEmailService struct {
	cfg       config.EmailConfig
	templates map[NotificationType]*template.Template
	log       *logger.Logger
}

func NewEmailService(cfg config.EmailConfig, log *logger.Logger) (EmailService, error) {
	templates, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}
	return &smtpEmailService{
		cfg:       cfg,
		templates: templates,
		log:       log,
	}, nil
}

func (es *smtpEmailService) Send(notification *Notification) error {
	if es.cfg.SMTPHost == "" {
		return fmt.Errorf("smtp host is not configured")
	}

	tmpl, ok := es.templates[notification.Type]
	if !ok {
		return fmt.Errorf("no email template for notification type %s", notification.Type)
	}

	data := map[string]interface{}{
		"RecipientName": notification.RecipientName,
		"Subject":       notification.Subject,
	}
	for k, v := range notification.TemplateData {
		data[k] = v
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email body: %w", err)
	}

	msg := es.buildMessage(notification, body.String())
	addr := fmt.Sprintf("%s:%d", es.cfg.SMTPHost, es.cfg.SMTPPort)

	var auth smtp.Auth
	if es.cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", es.cfg.SMTPUsername, es.cfg.SMTPPassword, es.cfg.SMTPHost)
	}

	if err := smtp.SendMail(addr, auth, es.cfg.FromEmail, []string{notification.RecipientEmail}, msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", notification.RecipientEmail, err)
	}

	if es.log != nil {
		es.log.Info("email delivered",
			"notification_id", notification.ID.String(),
			"type", string(notification.Type),
			"recipient", notification.RecipientEmail,
		)
	}
	return nil
}

func (es *smtpEmailService) buildMessage(notification *Notification, htmlBody string) []byte {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s <%s>\r\n", es.cfg.FromName, es.cfg.FromEmail))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", notification.RecipientEmail))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", notification.Subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(htmlBody)
	return []byte(sb.String())
}

func parseTemplates() (map[NotificationType]*template.Template, error) {
	sources := map[NotificationType]string{
		NotificationTypeEventApproved: `
<html><body>
<p>Hi {{.RecipientName}},</p>
<p>Your event <strong>{{.EventTitle}}</strong> has been approved and is now published.</p>
<p>Residents can see it in the activity schedule.</p>
<p>— Next U</p>
</body></html>`,
		NotificationTypeEventRejected: `
<html><body>
<p>Hi {{.RecipientName}},</p>
<p>Your event <strong>{{.EventTitle}}</strong> was not approved.</p>
<p>Reason: {{.Reason}}</p>
<p>You can revise the event and submit it again.</p>
<p>— Next U</p>
</body></html>`,
		NotificationTypeMembershipApproved: `
<html><body>
<p>Hi {{.RecipientName}},</p>
<p>Your membership request for the <strong>{{.PackageName}}</strong> package has been approved.</p>
<p>Welcome to Next U! Our team will reach out with the next steps.</p>
<p>— Next U</p>
</body></html>`,
		NotificationTypeMembershipRejected: `
<html><body>
<p>Hi {{.RecipientName}},</p>
<p>We are sorry, your membership request for the <strong>{{.PackageName}}</strong> package could not be approved.</p>
{{if .Reason}}<p>Note: {{.Reason}}</p>{{end}}
<p>— Next U</p>
</body></html>`,
		NotificationTypeAnnouncement: `
<html><body>
<p>Hi {{.RecipientName}},</p>
<p>{{.Message}}</p>
<p>— Next U</p>
</body></html>`,
	}

	templates := make(map[NotificationType]*template.Template, len(sources))
	for notType, src := range sources {
		tmpl, err := template.New(string(notType)).Parse(src)
		if err != nil {
			return nil, fmt.Errorf("template %s: %w", notType, err)
		}
		templates[notType] = tmpl
	}
	return templates, nil
}
