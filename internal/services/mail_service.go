// services/mail_service.go
package services

import (
	"fmt"
	"net/smtp"

	"go.uber.org/zap"

	"gymdesk/internal/config"
)

type IMailService interface {
	SendBookingConfirmation(to, className, dayOfWeek, startTime string) error
	SendPasswordReset(to, token string) error
}

type smtpMailService struct {
	cfg *config.Config
	log *zap.Logger
}

// NewSMTPMailService returns a no-op sender when SMTP_HOST is unset, so the
// console deployment works without a mail server.
func NewSMTPMailService(cfg *config.Config, log *zap.Logger) IMailService {
	if cfg.SMTPHost == "" {
		return &noopMailService{log: log}
	}
	return &smtpMailService{cfg: cfg, log: log}
}

func (s *smtpMailService) SendBookingConfirmation(to, className, dayOfWeek, startTime string) error {
	subject := "Booking confirmed"
	body := fmt.Sprintf("Your booking for %s on %s at %s is confirmed. See you there!", className, dayOfWeek, startTime)
	return s.send(to, subject, body)
}

func (s *smtpMailService) SendPasswordReset(to, token string) error {
	subject := "Password reset"
	body := fmt.Sprintf("Use this code to reset your password: %s\nThe code is valid for 30 minutes.", token)
	return s.send(to, subject, body)
}

func (s *smtpMailService) send(to, subject, body string) error {
	addr := s.cfg.SMTPHost + ":" + s.cfg.SMTPPort
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		s.cfg.SMTPFrom, to, subject, body,
	))

	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := smtp.SendMail(addr, auth, s.cfg.SMTPFrom, []string{to}, msg); err != nil {
		s.log.Error("failed to send mail", zap.String("to", to), zap.Error(err))
		return err
	}
	return nil
}

type noopMailService struct {
	log *zap.Logger
}

func (n *noopMailService) SendBookingConfirmation(to, className, dayOfWeek, startTime string) error {
	n.log.Debug("mail disabled, skipping booking confirmation", zap.String("to", to))
	return nil
}

func (n *noopMailService) SendPasswordReset(to, token string) error {
	n.log.Debug("mail disabled, skipping password reset", zap.String("to", to))
	return nil
}
