package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"

	"github.com/awash-hr/job-portal/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

// Mailer sends the portal's notices to employees. Callers treat delivery as
// best effort: the change that triggered a notice is already committed.
type Mailer interface {
	SendApplicationReceived(to string, data ApplicationReceived) error
	SendPromotionRecorded(to string, data PromotionRecorded) error
}

type mailerImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewMailer parses the embedded templates. With no SMTP host configured the
// mailer renders but never sends.
func NewMailer(cfg config.SMTPConfig) (Mailer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &mailerImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type ApplicationReceived struct {
	EmployeeName  string
	JobTitle      string
	VacancyNumber string
	AppliedAt     string
}

// SendApplicationReceived confirms a submitted application to the applicant
func (s *mailerImpl) SendApplicationReceived(to string, data ApplicationReceived) error {
	body, err := s.render("application_received.html", data)
	if err != nil {
		return err
	}
	return s.sendHTML(to, fmt.Sprintf("Application received: %s", data.VacancyNumber), body)
}

type PromotionRecorded struct {
	EmployeeName string
	OldGrade     string
	NewGrade     string
	PromotedAt   string
	EligibleFrom string
}

// SendPromotionRecorded tells an employee about their new grade
func (s *mailerImpl) SendPromotionRecorded(to string, data PromotionRecorded) error {
	body, err := s.render("promotion_recorded.html", data)
	if err != nil {
		return err
	}
	return s.sendHTML(to, "Promotion recorded", body)
}

func (s *mailerImpl) render(name string, data any) (string, error) {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, name, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return body.String(), nil
}

func (s *mailerImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	if err := smtp.SendMail(addr, auth, from, []string{to}, []byte(headers+htmlBody)); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	slog.Info("Email sent successfully", "to", to, "subject", subject)
	return nil
}
