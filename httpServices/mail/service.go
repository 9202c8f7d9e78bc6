package mail

import (
	"fmt"
	"net/smtp"

	"movieflix/config"
)

// Mailer is the outbound notification gateway. Callers fire and forget;
// delivery outcome is logged at the call site, never acted on.
type Mailer interface {
	Send(to, subject, body string) error
}

type smtpMailer struct {
	host string
	port string
	user string
	pass string
	from string
}

func NewSMTPMailer(cfg *config.Config) Mailer {
	return &smtpMailer{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		from: cfg.SMTPFrom,
	}
}

func (m *smtpMailer) Send(to, subject, body string) error {
	addr := fmt.Sprintf("%s:%s", m.host, m.port)
	msg := []byte(
		"From: " + m.from + "\r\n" +
			"To: " + to + "\r\n" +
			"Subject: " + subject + "\r\n" +
			"Content-Type: text/plain; charset=\"utf-8\"\r\n" +
			"\r\n" +
			body + "\r\n")

	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	return smtp.SendMail(addr, auth, m.from, []string{to}, msg)
}
