package email

import (
	"fmt"
	"os"

	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"
)

type EmailService struct {
	client   *resend.Client
	from     string
	fromName string
	logger   *zap.Logger
}

func NewEmailService(logger *zap.Logger) *EmailService {
	return &EmailService{
		client:   resend.NewClient(os.Getenv("RESEND_API_KEY")),
		from:     os.Getenv("EMAIL_FROM_ADDRESS"),
		fromName: os.Getenv("EMAIL_FROM_NAME"),
		logger:   logger,
	}
}

func (s *EmailService) SendWelcomeEmail(to, firstName string) error {
	html := fmt.Sprintf(`<h2>Welcome to Polished Events, %s!</h2>
<p>Your account is ready. Browse our services, plan your event and book everything in one place.</p>`, firstName)

	return s.send(to, "Welcome to Polished Events!", html)
}

func (s *EmailService) SendVerificationEmail(to, firstName, token string) error {
	html := fmt.Sprintf(`<h2>Hi %s,</h2>
<p>Please confirm your email address by entering this code in the app:</p>
<p><strong>%s</strong></p>
<p>The code expires in 24 hours.</p>`, firstName, token)

	return s.send(to, "Verify your email address", html)
}

func (s *EmailService) send(to, subject, html string) error {
	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Warn("email send failed",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("email sent",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("id", resp.Id),
	)
	return nil
}
