package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/ayushfaujdar/oodio-solutions/models"
)

// Notifier sends a best-effort operator notification for a contact
// submission. The submission is already stored when this runs; a send
// failure is logged by the caller and never changes the HTTP outcome.
type Notifier interface {
	NotifyContact(submission models.ContactSubmission) error
}

// SMTPConfig holds the mail-account settings, passed in from app config.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	To       string
}

// SMTPNotifier emails each contact submission to the operator address.
type SMTPNotifier struct {
	cfg SMTPConfig
}

func NewSMTPNotifier(cfg SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg}
}

func (n *SMTPNotifier) NotifyContact(submission models.ContactSubmission) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.Username)
	m.SetHeader("To", n.cfg.To)
	m.SetHeader("Subject", fmt.Sprintf("New Contact Form Submission - %s", submission.Name))
	m.SetBody("text/plain", fmt.Sprintf(
		"Name: %s\nEmail: %s\nMessage: %s\n",
		submission.Name, submission.Email, submission.Message,
	))
	m.AddAlternative("text/html", fmt.Sprintf(
		`<h3>New Contact Form Submission</h3>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>`,
		submission.Name, submission.Email, submission.Message,
	))

	d := gomail.NewDialer(n.cfg.Host, n.cfg.Port, n.cfg.Username, n.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send contact notification: %w", err)
	}
	return nil
}
