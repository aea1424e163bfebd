package auth

import "golang.org/x/crypto/bcrypt"

// HashPassphrase returns the bcrypt hash of a device passphrase using the
// given cost. Used when provisioning DEVICE_PASS_HASH.
func HashPassphrase(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassphrase safely compares the configured hash and a plain
// passphrase.
func VerifyPassphrase(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
