package mailer

import (
	"fmt"
	"net/smtp"

	"classroom_backend/internals/configs"
	"classroom_backend/internals/helpers/logger"
)

// Mailer sends account emails. Sending is best-effort everywhere it is
// used: a failure is logged by the caller, never returned to the client.
type Mailer interface {
	SendPasswordReset(toEmail, newPassword string) error
}

// New picks the SMTP mailer when SMTP_HOST is configured, otherwise a
// log-only mailer so local setups still surface the new password.
func New(log logger.Logger) Mailer {
	if configs.SMTPHost == "" {
		log.Warn("SMTP not configured, falling back to log mailer")
		return &LogMailer{Log: log}
	}
	return &SMTPMailer{
		Host: configs.SMTPHost,
		Port: configs.SMTPPort,
		User: configs.SMTPUser,
		Pass: configs.SMTPPass,
		From: configs.MailFrom,
	}
}

type SMTPMailer struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

func (m *SMTPMailer) SendPasswordReset(toEmail, newPassword string) error {
	body := fmt.Sprintf(
		"Hello,\r\n\r\n"+
			"You requested a password reset for your Classroom account.\r\n\r\n"+
			"Your new password is: %s\r\n\r\n"+
			"Please log in and change it as soon as you receive this email.\r\n"+
			"If you did not request a reset, you can ignore this message.\r\n",
		newPassword,
	)
	msg := []byte(
		"From: " + m.From + "\r\n" +
			"To: " + toEmail + "\r\n" +
			"Subject: Password recovery - Classroom\r\n" +
			"\r\n" + body,
	)

	addr := m.Host + ":" + m.Port
	auth := smtp.PlainAuth("", m.User, m.Pass, m.Host)
	return smtp.SendMail(addr, auth, m.From, []string{toEmail}, msg)
}

// LogMailer writes the reset password to the log instead of sending it.
type LogMailer struct {
	Log logger.Logger
}

func (m *LogMailer) SendPasswordReset(toEmail, newPassword string) error {
	m.Log.Info("📧 new password for %s: %s", toEmail, newPassword)
	return nil
}
