package i

import (
	"time"
)

// Tokenizer signs claims into replay tokens and reads them back.
type Tokenizer interface {
	// Generate creates a signed token carrying claims that expires after expTime.
	Generate(claims map[string]interface{}, expTime time.Duration) (string, error)

	// Decode verifies a token and returns its claims. Expired, tampered or
	// foreign tokens are rejected.
	Decode(token string) (map[string]interface{}, error)
}
