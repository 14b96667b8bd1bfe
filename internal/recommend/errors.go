package recommend

import (
	"fmt"

	"github.com/google/uuid"
)

// ErrUnauthenticated indicates there is no resolvable requesting identity
type ErrUnauthenticated struct{}

func (e *ErrUnauthenticated) Error() string {
	return "no authenticated user"
}

// ErrProfileNotFound indicates the requesting identity has no stored profile
type ErrProfileNotFound struct {
	UserID uuid.UUID
}

func (e *ErrProfileNotFound) Error() string {
	return fmt.Sprintf("profile not found: %s", e.UserID)
}
