package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrInvalidInput = errors.New("invalid input")
)

// Line is one priced entry of the session request. UnitAmount is in the
// currency's minor unit; no further conversion happens past this point.
type Line struct {
	Name       string
	UnitAmount int64
	Quantity   int64
}

// Gateway is the hosted-checkout capability: a line-item list in, a
// redirect URL out.
type Gateway interface {
	CreateSession(ctx context.Context, lines []Line) (string, error)
}

// Notifier is the fire-and-forget side channel for payment confirmations.
type Notifier interface {
	Send(ctx context.Context, kind, message, recipient string) error
}

type Service struct {
	gateway  Gateway
	notifier Notifier
	log      *slog.Logger
}

func NewService(gateway Gateway, notifier Notifier, log *slog.Logger) *Service {
	return &Service{gateway: gateway, notifier: notifier, log: log}
}

// CreateSession opens a hosted-checkout session for the given lines.
// When a buyer email is supplied, a "pago" notification summarizing the
// total is fired after session creation; its failure is logged and
// swallowed so a flaky notification channel never blocks a payment.
func (s *Service) CreateSession(ctx context.Context, lines []Line, buyerEmail string) (string, error) {
	if len(lines) == 0 {
		return "", ErrEmptyCart
	}
	for i, line := range lines {
		if line.Quantity < 1 {
			return "", fmt.Errorf("%w: line %d: quantity must be at least 1", ErrInvalidInput, i)
		}
		if line.UnitAmount < 0 {
			return "", fmt.Errorf("%w: line %d: negative unit amount", ErrInvalidInput, i)
		}
	}

	url, err := s.gateway.CreateSession(ctx, lines)
	if err != nil {
		return "", err
	}

	if buyerEmail != "" && s.notifier != nil {
		var total int64
		for _, line := range lines {
			total += line.UnitAmount * line.Quantity
		}
		msg := fmt.Sprintf("Tu pago por un total de %d fue iniciado. Completa el proceso en el enlace de pago.", total)
		if err := s.notifier.Send(ctx, "pago", msg, buyerEmail); err != nil {
			s.log.Warn("payment notification failed",
				slog.String("recipient", buyerEmail),
				slog.Any("err", err))
		}
	}

	return url, nil
}
