// Package contact delivers messages from the public contact form by email.
package contact

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"workshop-site/internal/config"
	"workshop-site/internal/logger"
	"workshop-site/internal/service"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"gopkg.in/gomail.v2"
)

var (
	// ErrCaptchaRequired is returned when the form carries no human verification token.
	ErrCaptchaRequired = errors.New("please complete the human verification")
	// ErrCaptchaRejected is returned when the verification service rejects the token.
	ErrCaptchaRejected = errors.New("human verification failed")
)

// Message is a submitted contact form.
type Message struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Message      string `json:"message"`
	CaptchaToken string `json:"-"`
}

// Validate checks the required fields.
func (m Message) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Name, validation.Required),
		validation.Field(&m.Email, validation.Required, is.EmailFormat),
		validation.Field(&m.Message, validation.Required),
	)
}

// Sender delivers a composed email. *gomail.Dialer implements it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Verifier checks a human verification token.
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) error
}

var bodyTemplate = template.Must(template.New("contact").Parse(`<p><strong>{{.Name}}</strong> &lt;{{.Email}}&gt; wrote:</p>
<p>{{.Message}}</p>
`))

// Service validates, verifies and sends contact messages.
type Service struct {
	cfg      config.ContactConfig
	sender   Sender
	verifier Verifier
	log      logger.Logger
}

// NewService creates a Service. verifier may be nil, in which case only the
// presence of a token is checked.
func NewService(cfg config.ContactConfig, sender Sender, verifier Verifier, log logger.Logger) *Service {
	return &Service{cfg: cfg, sender: sender, verifier: verifier, log: log}
}

// NewDialer returns the SMTP sender for cfg.
func NewDialer(cfg config.ContactConfig) *gomail.Dialer {
	return gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
}

// Send delivers msg. Nothing is sent unless the form is valid and carries a
// verification token that the verifier, when configured, accepts.
func (s *Service) Send(ctx context.Context, msg Message, remoteIP string) error {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	if err := msg.Validate(); err != nil {
		var errs validation.Errors
		if errors.As(err, &errs) {
			return &service.ValidationError{Errors: errs}
		}
		return err
	}
	if strings.TrimSpace(msg.CaptchaToken) == "" {
		return ErrCaptchaRequired
	}
	if s.verifier != nil {
		if err := s.verifier.Verify(ctx, msg.CaptchaToken, remoteIP); err != nil {
			s.log.Warn(fmt.Sprintf("Contact form verification failed: %v", err))
			return ErrCaptchaRejected
		}
	}

	var body bytes.Buffer
	if err := bodyTemplate.Execute(&body, msg); err != nil {
		return fmt.Errorf("failed to render contact email: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", s.cfg.To)
	m.SetAddressHeader("Reply-To", msg.Email, msg.Name)
	m.SetHeader("Subject", s.cfg.Subject)
	m.SetBody("text/html", body.String())

	if err := s.sender.DialAndSend(m); err != nil {
		return &service.PersistenceError{Op: "send", Collection: "Contact", Err: err}
	}
	s.log.Info("Contact message sent")
	return nil
}
