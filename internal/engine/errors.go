// Package engine implements the recommendation and ranking engine:
// candidate filtering, multi-factor scoring, explanation synthesis and
// run orchestration.
package engine

import (
	"fmt"

	"github.com/google/uuid"
)

// InvalidNeedProfileError indicates a missing or malformed need profile.
// The run never starts.
type InvalidNeedProfileError struct {
	Reason string
}

func (e *InvalidNeedProfileError) Error() string {
	return fmt.Sprintf("invalid need profile: %s", e.Reason)
}

// NeedProfileNotFoundError indicates no active need profile exists for
// the club. Distinct from a validation error: the caller is told to
// define a profile first.
type NeedProfileNotFoundError struct {
	ClubID uuid.UUID
}

func (e *NeedProfileNotFoundError) Error() string {
	return fmt.Sprintf("no need profile found for club %s; define one first", e.ClubID)
}
