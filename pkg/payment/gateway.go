// Package payment defines the gateway collaborator the checkout flow charges
// against. The real processor lives behind the Gateway interface; a sandbox
// implementation serves local development and tests.
package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Gateway submits a single charge attempt. A nil error means the charge went
// through and the returned reference identifies it with the processor.
type Gateway interface {
	Charge(ctx context.Context, amountMinor int64, metadata map[string]string) (string, error)
}

// Error carries the processor's human-readable failure reason verbatim.
type Error struct {
	Reason string
}

func (e *Error) Error() string {
	return "payment failed: " + e.Reason
}

// Sandbox is an in-process gateway. It approves every charge with a fresh
// reference unless Declined is set.
type Sandbox struct {
	// Declined, when non-empty, makes every charge fail with that reason.
	Declined string
}

func (s *Sandbox) Charge(ctx context.Context, amountMinor int64, metadata map[string]string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if amountMinor <= 0 {
		return "", &Error{Reason: "charge amount must be positive"}
	}
	if s.Declined != "" {
		return "", &Error{Reason: s.Declined}
	}
	return fmt.Sprintf("pay_%s", uuid.NewString()), nil
}
