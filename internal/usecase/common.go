package usecase

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidTenant is returned when an operation reaches a use case without a
// workshop identity. The middleware should make this unreachable in practice.
var ErrInvalidTenant = errors.New("invalid tenant")

func newID() string {
	return uuid.NewString()
}

// newDisplayID derives the short human-facing order number from the entity id.
func newDisplayID(id string) string {
	short := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(short) > 6 {
		short = short[:6]
	}
	return "OS-" + short
}
