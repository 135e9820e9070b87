package app

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound  = errors.New("cart not found")
	ErrEmptyCart = errors.New("cart is empty")
)

// GatewayError reports a failed payment-session call. Status is the
// upstream HTTP status, or 0 when the service was unreachable (network
// fault or timeout).
type GatewayError struct {
	Status int
	Detail string
}

func (e *GatewayError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("payment gateway unreachable: %s", e.Detail)
	}
	return fmt.Sprintf("payment gateway returned %d: %s", e.Status, e.Detail)
}

// Unreachable reports whether the failure was a network fault rather than
// an upstream rejection.
func (e *GatewayError) Unreachable() bool { return e.Status == 0 }
