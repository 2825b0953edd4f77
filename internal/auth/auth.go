// Package auth validates inbound API key credentials.
package auth

import (
	"crypto/subtle"
)

// HeaderName is the request header carrying the API key.
const HeaderName = "X-API-Key"

// Verifier checks presented API keys against a configured allow-list.
type Verifier struct {
	keys []string
}

// NewVerifier creates a Verifier over the configured allow-list.
func NewVerifier(keys []string) *Verifier {
	return &Verifier{keys: keys}
}

// Verify reports whether the presented key is on the allow-list. A missing
// and a malformed key are indistinguishable to the caller: both return
// false. Comparison is constant-time per candidate key.
func (v *Verifier) Verify(presented string) bool {
	if presented == "" {
		return false
	}
	valid := false
	for _, k := range v.keys {
		if subtle.ConstantTimeCompare([]byte(k), []byte(presented)) == 1 {
			valid = true
		}
	}
	return valid
}
