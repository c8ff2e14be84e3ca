package profile

import (
	"github.com/stkrizh/conduit/internal/domain/profile"
)

// Result is the outcome of a profile operation. A nil Profile means the
// target username resolves to no account - a representable normal outcome
// that callers branch on, not an error.
type Result struct {
	Profile *profile.Profile
}
