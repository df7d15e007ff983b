// File: internal/platform/crypto/generator.go
package crypto

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateStateToken creates a cryptographically secure random string for
// use as an OAuth state parameter. n is the number of bytes of randomness;
// the returned string is longer due to base64 encoding.
func GenerateStateToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
