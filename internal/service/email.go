package service

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"gondola-rental-backend/internal/domain"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) SendExpiryReminder(ctx context.Context, to string, expiring, expired []domain.DocumentDetail) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Document renewal reminder: %d expiring, %d expired", len(expiring), len(expired)))

	var b strings.Builder
	b.WriteString("Hello,\n\nThe following compliance documents need renewal action.\n")
	if len(expired) > 0 {
		b.WriteString("\nExpired:\n")
		for _, d := range expired {
			b.WriteString(formatReminderLine(d))
		}
	}
	if len(expiring) > 0 {
		b.WriteString("\nExpiring within the next 30 days:\n")
		for _, d := range expiring {
			b.WriteString(formatReminderLine(d))
		}
	}
	b.WriteString("\nBest regards,\nGondola Rental System")
	m.SetBody("text/plain", b.String())

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send expiry reminder: %w", err)
	}
	return nil
}

func formatReminderLine(d domain.DocumentDetail) string {
	label := d.GondolaNumber
	if label == "" {
		label = "(unassigned)"
	}
	expiry := "n/a"
	if d.ExpiryDate != nil {
		expiry = d.ExpiryDate.Format("2006-01-02")
	}
	return fmt.Sprintf("  - %s / %s, expires %s\n", label, d.DocumentType, expiry)
}
