package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewCartSessionToken issues an opaque token identifying one cart
// session, used as the snapshot storage key. Carts are per session and
// last-writer-wins; there is no cross-device sync.
func NewCartSessionToken() string {
	return uuid.NewString()
}

// ValidCartSessionToken rejects tokens that cannot be snapshot keys:
// empty, oversized or containing separators.
func ValidCartSessionToken(token string) bool {
	if token == "" || len(token) > 64 {
		return false
	}
	return !strings.ContainsAny(token, " \t\n")
}
