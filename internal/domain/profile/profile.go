// Package profile contains the viewer-relative profile projection.
package profile

import (
	"github.com/stkrizh/conduit/internal/domain/uuid"
)

// Profile is a user account as seen by another user. IsFollowing is not a
// property of the target account alone; it reflects the follow edge from the
// viewing actor toward the target at read time. A read projection, not an
// aggregate: fields are exported and the value carries no behavior.
type Profile struct {
	ID          uuid.UUID
	Username    string
	Bio         string
	Image       string
	IsFollowing bool
}
