package email

import (
	"fmt"

	"bluerobins/utils"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// Sender delivers transactional mail (booking confirmations, weekly
// progress notes, session reminders).
type Sender interface {
	Send(to, subject, plainBody, htmlBody string) error
}

// SendgridSender implements Sender over the SendGrid v3 API. With no
// API key configured it runs degraded: sends are logged and dropped.
type SendgridSender struct {
	client   *sendgrid.Client
	from     *sgmail.Email
	degraded bool
}

// NewSendgridSender builds a sender. An empty key yields a degraded
// sender rather than an error so local setups run without credentials.
func NewSendgridSender(key, fromName, fromEmail string) *SendgridSender {
	if key == "" {
		utils.GetLogger().Warn("sendgrid key not configured, email delivery disabled")
		return &SendgridSender{degraded: true}
	}
	return &SendgridSender{
		client: sendgrid.NewSendClient(key),
		from:   sgmail.NewEmail(fromName, fromEmail),
	}
}

func (s *SendgridSender) Send(to, subject, plainBody, htmlBody string) error {
	logger := utils.GetLogger()
	if s.degraded {
		logger.Info("email delivery disabled, dropping message",
			zap.String("to", to), zap.String("subject", subject))
		return nil
	}
	if htmlBody == "" {
		htmlBody = plainBody
	}

	msg := sgmail.NewSingleEmail(s.from, subject, sgmail.NewEmail("", to), plainBody, htmlBody)
	resp, err := s.client.Send(msg)
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected email to %s: status %d", to, resp.StatusCode)
	}
	return nil
}
