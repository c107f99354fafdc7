package token

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// refreshTokenBytes is the entropy of a refresh token: 64 bytes, 512 bits.
const refreshTokenBytes = 64

// GenerateRefreshToken produces an opaque bearer secret. It carries no
// claims and no structure; validity is established only by comparison with
// the value stored on the account.
func (j *JWT) GenerateRefreshToken() (string, error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	return base64.StdEncoding.EncodeToString(buf), nil
}
