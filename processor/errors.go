// Copyright (c) 2024 Neomantra Corp

package processor

import "fmt"

// ErrInvariantViolation reports a message rejected by an internal
// consistency check. It is returned regardless of StrictMode; the
// Processor does not block later input after returning it.
var ErrInvariantViolation = fmt.Errorf("order book invariant violated")

func invariantViolation(detail string) error {
	return fmt.Errorf("%w: %s", ErrInvariantViolation, detail)
}
