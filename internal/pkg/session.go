package pkg

import "crypto/rand"

// GenerateNewSessionID - random base32 ID with 128 bits of entropy.
func GenerateNewSessionID() string {
	return rand.Text()
}
