package model

// PasswordHasher hashes passwords for storage and verifies presented
// passwords against stored encodings.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) (bool, error)
}
