package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewAnonymousID generates a fresh anonymous user token in the same format
// the browser extension produces client-side: 32 lowercase hex characters
// with no other structure, so tokens stay unlinkable to any identity.
func NewAnonymousID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
