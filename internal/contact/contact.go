// Package contact validates and forwards contact form submissions.
package contact

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"go.uber.org/zap"

	"agencysite/internal/api"
	"agencysite/internal/flood"
)

// throttleScope keys contact submissions in the shared floodgate.
const throttleScope = "contact"

var (
	ErrThrottled      = errors.New("too many contact requests")
	ErrInvalidMessage = errors.New("invalid contact message")
)

// Message is one contact form submission.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Service string `json:"service,omitempty"`
	Body    string `json:"message"`
}

func (m Message) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidMessage)
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(m.Email)); err != nil {
		return fmt.Errorf("%w: email %q is not valid", ErrInvalidMessage, m.Email)
	}
	if strings.TrimSpace(m.Body) == "" {
		return fmt.Errorf("%w: message is required", ErrInvalidMessage)
	}
	return nil
}

// Service submits contact messages to the backend, throttled per sender.
type Service struct {
	client *api.Client
	gate   *flood.Floodgate
	logger *zap.Logger
}

func NewService(client *api.Client, gate *flood.Floodgate, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, gate: gate, logger: logger}
}

// Submit validates msg, applies the per-sender limit and posts it to the
// backend. sender identifies the submitter, typically the client IP.
func (s *Service) Submit(ctx context.Context, msg Message, sender string) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	if s.gate != nil && !s.gate.Allow(throttleScope, sender) {
		s.logger.Info("Contact submission throttled", zap.String("sender", sender))
		return ErrThrottled
	}

	if err := s.client.Post(ctx, "/contact", msg, nil); err != nil {
		return fmt.Errorf("failed to send contact message: %w", err)
	}

	s.logger.Info("Contact message sent",
		zap.String("sender", sender),
		zap.String("service", msg.Service))
	return nil
}

// RetryAfterSeconds reports how long sender has to wait before submitting
// again, rounded up to whole seconds.
func (s *Service) RetryAfterSeconds(sender string) int {
	if s.gate == nil {
		return 0
	}
	wait := s.gate.RetryAfter(throttleScope, sender)
	if wait <= 0 {
		return 0
	}
	return int((wait + time.Second - 1) / time.Second)
}
