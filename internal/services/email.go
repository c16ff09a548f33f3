package services

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/obaspub/scholarsite/backend/internal/config"
	"github.com/obaspub/scholarsite/backend/internal/models"
	"github.com/obaspub/scholarsite/backend/pkg/logger"
)

// EmailService delivers lead alerts and daily digests to the site's
// contact address over SMTP.
type EmailService struct {
	config *config.EmailConfig
}

func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{config: cfg}
}

// SendLeadAlert notifies the editing team about a new lead. Disabled or
// incomplete SMTP configuration makes this a silent no-op.
func (s *EmailService) SendLeadAlert(lead *models.Lead, expectedResponse string, recipients []string) error {
	if !s.config.Enabled || s.config.Host == "" || len(recipients) == 0 {
		return nil
	}

	subject := fmt.Sprintf("[Obas Publications] New inquiry from %s", lead.Name)
	body := s.buildLeadAlertBody(lead, expectedResponse)
	return s.send(recipients, subject, body)
}

// SendDailyDigest sends a summary of the day's leads.
func (s *EmailService) SendDailyDigest(date string, leads []models.Lead, recipients []string) error {
	if !s.config.Enabled || s.config.Host == "" || len(recipients) == 0 {
		return nil
	}

	subject := fmt.Sprintf("[Obas Publications] Daily lead digest for %s (%d new)", date, len(leads))
	body := s.buildDigestBody(date, leads)
	return s.send(recipients, subject, body)
}

func (s *EmailService) buildLeadAlertBody(lead *models.Lead, expectedResponse string) string {
	var sb strings.Builder

	sb.WriteString("<html><body style=\"font-family: Arial, sans-serif;\">")
	sb.WriteString("<h2>New Contact Inquiry</h2>")
	sb.WriteString("<table style=\"border-collapse: collapse; margin-bottom: 20px;\">")

	rows := []struct{ label, value string }{
		{"Name", lead.Name},
		{"Email", lead.Email},
		{"Service Interest", lead.ServiceInterest},
		{"Received", lead.Date},
		{"Respond By", expectedResponse},
	}

	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("<tr><td style=\"padding: 8px; border: 1px solid #ddd; font-weight: bold;\">%s</td><td style=\"padding: 8px; border: 1px solid #ddd;\">%s</td></tr>", r.label, r.value))
	}
	sb.WriteString("</table>")

	sb.WriteString("<h3>Message</h3>")
	sb.WriteString(fmt.Sprintf("<div style=\"background: #f9f9f9; padding: 16px; border-radius: 4px; white-space: pre-wrap;\">%s</div>", lead.Message))

	sb.WriteString("</body></html>")
	return sb.String()
}

func (s *EmailService) buildDigestBody(date string, leads []models.Lead) string {
	var sb strings.Builder

	sb.WriteString("<html><body style=\"font-family: Arial, sans-serif;\">")
	sb.WriteString(fmt.Sprintf("<h2>Lead Digest for %s</h2>", date))

	if len(leads) == 0 {
		sb.WriteString("<p>No new inquiries today.</p>")
	} else {
		sb.WriteString("<table style=\"border-collapse: collapse;\">")
		sb.WriteString("<tr><th style=\"padding: 8px; border: 1px solid #ddd;\">Name</th><th style=\"padding: 8px; border: 1px solid #ddd;\">Email</th><th style=\"padding: 8px; border: 1px solid #ddd;\">Service</th></tr>")
		for _, lead := range leads {
			sb.WriteString(fmt.Sprintf("<tr><td style=\"padding: 8px; border: 1px solid #ddd;\">%s</td><td style=\"padding: 8px; border: 1px solid #ddd;\">%s</td><td style=\"padding: 8px; border: 1px solid #ddd;\">%s</td></tr>",
				lead.Name, lead.Email, lead.ServiceInterest))
		}
		sb.WriteString("</table>")
	}

	sb.WriteString("</body></html>")
	return sb.String()
}

func (s *EmailService) send(to []string, subject, body string) error {
	from := s.config.From
	if from == "" {
		from = s.config.Username
	}

	headers := map[string]string{
		"From":         from,
		"To":           strings.Join(to, ","),
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=UTF-8",
	}

	var message strings.Builder
	for k, v := range headers {
		message.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}
	message.WriteString("\r\n")
	message.WriteString(body)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	var auth smtp.Auth
	if s.config.Username != "" && s.config.Password != "" {
		auth = smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	}

	var err error
	if s.config.UseTLS {
		err = s.sendTLS(addr, auth, from, to, message.String())
	} else {
		err = smtp.SendMail(addr, auth, from, to, []byte(message.String()))
	}

	if err != nil {
		logger.Error().Err(err).Msg("failed to send email")
		return err
	}

	logger.Info().Strs("to", to).Str("subject", subject).Msg("email sent")
	return nil
}

func (s *EmailService) sendTLS(addr string, auth smtp.Auth, from string, to []string, message string) error {
	tlsConfig := &tls.Config{
		ServerName: s.config.Host,
	}

	conn, err := tls.Dial("tcp", addr, tlsConfig)
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		return err
	}
	defer client.Close()

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return err
		}
	}

	if err := client.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write([]byte(message)); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	return client.Quit()
}
