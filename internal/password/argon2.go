package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/dtroode/bookreview-server/internal/model"
)

const (
	saltLength uint32 = 16
	keyLength  uint32 = 32
)

// ErrMalformedHash is returned when a stored encoding cannot be parsed.
var ErrMalformedHash = errors.New("malformed password hash")

// Params are the argon2id cost parameters.
type Params struct {
	Time   uint32
	MemKiB uint32
	Par    uint8
}

// Argon2 implements PasswordHasher using argon2id with PHC-formatted
// encodings, so parameters travel with every stored hash.
type Argon2 struct {
	params Params
}

// NewArgon2 creates a hasher with the provided cost parameters.
func NewArgon2(params Params) model.PasswordHasher {
	return &Argon2{params: params}
}

// Hash derives an argon2id key from the password under a fresh random salt
// and returns the PHC-encoded string.
func (a *Argon2) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to read salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, a.params.Time, a.params.MemKiB, a.params.Par, keyLength)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, a.params.MemKiB, a.params.Time, a.params.Par,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// Verify re-derives the key using the parameters embedded in the stored
// encoding and compares in constant time.
func (a *Argon2) Verify(password, encoded string) (bool, error) {
	params, salt, key, err := decode(encoded)
	if err != nil {
		return false, err
	}

	derived := argon2.IDKey([]byte(password), salt, params.Time, params.MemKiB, params.Par, uint32(len(key)))

	return subtle.ConstantTimeCompare(key, derived) == 1, nil
}

func decode(encoded string) (Params, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return Params{}, nil, nil, ErrMalformedHash
	}

	version, err := costField(parts[2], "v=", 32)
	if err != nil {
		return Params{}, nil, nil, err
	}
	if int(version) != argon2.Version {
		return Params{}, nil, nil, fmt.Errorf("unsupported argon2 version %d", version)
	}

	costs := strings.Split(parts[3], ",")
	if len(costs) != 3 {
		return Params{}, nil, nil, ErrMalformedHash
	}
	mem, err := costField(costs[0], "m=", 32)
	if err != nil {
		return Params{}, nil, nil, err
	}
	times, err := costField(costs[1], "t=", 32)
	if err != nil {
		return Params{}, nil, nil, err
	}
	par, err := costField(costs[2], "p=", 8)
	if err != nil {
		return Params{}, nil, nil, err
	}
	params := Params{Time: uint32(times), MemKiB: uint32(mem), Par: uint8(par)}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return Params{}, nil, nil, ErrMalformedHash
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return Params{}, nil, nil, ErrMalformedHash
	}

	return params, salt, key, nil
}

// costField parses a "name=number" field, rejecting any trailing bytes
// after the number.
func costField(field, prefix string, bits int) (uint64, error) {
	value, ok := strings.CutPrefix(field, prefix)
	if !ok {
		return 0, ErrMalformedHash
	}
	n, err := strconv.ParseUint(value, 10, bits)
	if err != nil {
		return 0, ErrMalformedHash
	}
	return n, nil
}
