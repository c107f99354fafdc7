package token

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/bookreview-server/internal/model"
)

// JWT implements TokenManager backed by symmetric HMAC-SHA256.
type JWT struct {
	secretKey []byte
	issuer    string
	audience  string
	accessTTL time.Duration
}

// NewJWT creates a new JWT token manager. The secret key, issuer and
// audience are fixed for the lifetime of the manager.
func NewJWT(secretKey, issuer, audience string, accessTTL time.Duration) model.TokenManager {
	return &JWT{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		audience:  audience,
		accessTTL: accessTTL,
	}
}

// GenerateAccessToken creates a short-lived signed access token for the
// given username. Every token carries a fresh random jti so two tokens for
// the same subject are never identical.
func (j *JWT) GenerateAccessToken(username string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(j.accessTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   username,
		ID:        uuid.NewString(),
		Issuer:    j.issuer,
		Audience:  jwt.ClaimStrings{j.audience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// ParseAccessToken verifies the signature and extracts the subject.
//
// With checkExpiry=false only the lifetime check is waived; the signature
// and the issuer/audience claims are still verified. That mode proves the
// token was legitimately issued here, not that it is still live, and is
// used only by the refresh flow.
func (j *JWT) ParseAccessToken(tokenString string, checkExpiry bool) (string, error) {
	var opts []jwt.ParserOption
	if checkExpiry {
		opts = append(opts, jwt.WithIssuer(j.issuer), jwt.WithAudience(j.audience), jwt.WithExpirationRequired())
	} else {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secretKey, nil
	}, opts...)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", model.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", model.ErrTokenExpired
		default:
			return "", model.ErrTokenSignatureInvalid
		}
	}
	if !token.Valid {
		return "", model.ErrTokenSignatureInvalid
	}

	// WithoutClaimsValidation skips issuer/audience along with the
	// lifetime, so those two are re-checked by hand.
	if !checkExpiry {
		if claims.Issuer != j.issuer || !slices.Contains(claims.Audience, j.audience) {
			return "", model.ErrTokenSignatureInvalid
		}
	}

	return claims.Subject, nil
}
