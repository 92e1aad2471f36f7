package notifications

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/MohamedMedan1/Tasque-Api/domain"
)

// EmailServiceImpl implements domain.NotificationService over SMTP.
type EmailServiceImpl struct {
	host string
	port int
	user string
	pass string
	from string
}

// NewEmailService creates a new email notification service. With no host
// configured it logs messages instead of sending, which keeps local
// development working without a mail server.
func NewEmailService(host string, port int, user, pass, from string) domain.NotificationService {
	return &EmailServiceImpl{
		host: host,
		port: port,
		user: user,
		pass: pass,
		from: from,
	}
}

// SendEmail implements domain.NotificationService
func (s *EmailServiceImpl) SendEmail(to, subject, message string) error {
	if s.host == "" {
		log.Printf("[MOCK EMAIL] To: %s, Subject: %s, Body: %s", to, subject, message)
		return nil
	}

	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", s.from, to, subject, message))

	var auth smtp.Auth
	if s.user != "" {
		auth = smtp.PlainAuth("", s.user, s.pass, s.host)
	}

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.from, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
