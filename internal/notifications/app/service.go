package app

import (
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"strings"
)

var ErrInvalidInput = errors.New("destinatario y mensaje son obligatorios")

// DeliveryError wraps a transport fault; the dispatcher does not retry.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string { return "delivery failed: " + e.Err.Error() }
func (e *DeliveryError) Unwrap() error { return e.Err }

// DefaultAttachmentName is used when the caller names no attachment.
const DefaultAttachmentName = "historia.pdf"

// Message is one outbound email.
type Message struct {
	To             string
	Subject        string
	Body           string
	Attachment     []byte
	AttachmentName string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// subjects maps known notification kinds to subject lines. Unknown kinds
// pass through verbatim; there is no whitelist.
var subjects = map[string]string{
	"pago":  "Payment successful",
	"cita":  "Appointment confirmed",
	"otros": "Notification",
}

// SubjectFor resolves the subject line for a notification kind.
func SubjectFor(kind string) string {
	if subject, ok := subjects[kind]; ok {
		return subject
	}
	return kind
}

type Service struct {
	mailer Mailer
	log    *slog.Logger
}

func NewService(mailer Mailer, log *slog.Logger) *Service {
	return &Service{mailer: mailer, log: log}
}

// Notify relays one message to the email transport. Validation failures
// surface before any transport traffic.
func (s *Service) Notify(ctx context.Context, kind, message, recipient string) error {
	if strings.TrimSpace(message) == "" || strings.TrimSpace(recipient) == "" {
		return ErrInvalidInput
	}

	msg := Message{
		To:      recipient,
		Subject: SubjectFor(kind),
		Body:    message,
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return &DeliveryError{Err: err}
	}
	return nil
}

// NotifyWithAttachment sends the message with a base64-encoded attachment.
// The attachment is best-effort: a decode failure is logged and the base
// message still goes out.
func (s *Service) NotifyWithAttachment(ctx context.Context, kind, message, recipient, attachmentB64, attachmentName string) error {
	if strings.TrimSpace(message) == "" || strings.TrimSpace(recipient) == "" {
		return ErrInvalidInput
	}

	msg := Message{
		To:      recipient,
		Subject: SubjectFor(kind),
		Body:    message,
	}

	if attachmentB64 != "" {
		data, err := base64.StdEncoding.DecodeString(attachmentB64)
		if err != nil {
			s.log.Warn("attachment decode failed, sending without it",
				slog.String("recipient", recipient),
				slog.Any("err", err))
		} else {
			msg.Attachment = data
			msg.AttachmentName = attachmentName
			if msg.AttachmentName == "" {
				msg.AttachmentName = DefaultAttachmentName
			}
		}
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		return &DeliveryError{Err: err}
	}
	return nil
}
