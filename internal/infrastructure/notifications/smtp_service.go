package notifications

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"github.com/TusharMishra1811/writo-education-assessment-backend/domain"
)

// SMTPConfig holds the SMTP relay settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPServiceImpl implements domain.NotificationService over plain SMTP
type SMTPServiceImpl struct {
	config SMTPConfig
	logger *slog.Logger
}

// NewSMTPService creates a new SMTP notification service
func NewSMTPService(config SMTPConfig, logger *slog.Logger) domain.NotificationService {
	return &SMTPServiceImpl{config: config, logger: logger}
}

// SendVerificationEmail implements domain.NotificationService
func (s *SMTPServiceImpl) SendVerificationEmail(to string, code int) error {
	// If the relay is not configured, log instead of sending
	if s.config.Host == "" {
		s.logger.Info("mock verification email", "to", to, "otp", code)
		return nil
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", s.config.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	msg.WriteString("Subject: Verify Email\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	fmt.Fprintf(&msg, "<p>The otp for verification is : %d</p>\r\n", code)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)

	if err := smtp.SendMail(addr, auth, s.config.From, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}

	return nil
}
