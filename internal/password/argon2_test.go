package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams() Params {
	// Low-cost parameters to keep tests fast.
	return Params{Time: 1, MemKiB: 8 * 1024, Par: 1}
}

func TestArgon2_HashAndVerify(t *testing.T) {
	t.Parallel()

	hasher := NewArgon2(testParams())

	encoded, err := hasher.Hash("pw123!")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$"))

	ok, err := hasher.Verify("pw123!", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify("wrong", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArgon2_HashIsSalted(t *testing.T) {
	t.Parallel()

	hasher := NewArgon2(testParams())

	first, err := hasher.Hash("pw123!")
	require.NoError(t, err)
	second, err := hasher.Hash("pw123!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestArgon2_VerifyUsesEmbeddedParams(t *testing.T) {
	t.Parallel()

	// Hash with one parameter set, verify with a hasher configured
	// differently; the encoding carries its own parameters.
	encoded, err := NewArgon2(testParams()).Hash("pw123!")
	require.NoError(t, err)

	ok, err := NewArgon2(Params{Time: 2, MemKiB: 16 * 1024, Par: 2}).Verify("pw123!", encoded)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestArgon2_Verify_MalformedEncoding(t *testing.T) {
	t.Parallel()

	hasher := NewArgon2(testParams())

	tests := []struct {
		name    string
		encoded string
	}{
		{name: "empty", encoded: ""},
		{name: "not a hash", encoded: "plaintext"},
		{name: "wrong algorithm", encoded: "$bcrypt$v=19$m=8192,t=1,p=1$c2FsdA$aGFzaA"},
		{name: "bad salt encoding", encoded: "$argon2id$v=19$m=8192,t=1,p=1$!!!$aGFzaA"},
		{name: "trailing garbage in version", encoded: "$argon2id$v=19abc$m=8192,t=1,p=1$c2FsdA$aGFzaA"},
		{name: "trailing garbage in costs", encoded: "$argon2id$v=19$m=8192,t=1,p=1x$c2FsdA$aGFzaA"},
		{name: "missing cost field", encoded: "$argon2id$v=19$m=8192,t=1$c2FsdA$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := hasher.Verify("pw123!", tt.encoded)
			assert.ErrorIs(t, err, ErrMalformedHash)
		})
	}
}
