// Package auth implements the authentication core: password hashing,
// signed-token issuance and verification, and resource access policy.
package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost trades login latency for brute-force resistance.
const bcryptCost = 12

// HashPassword returns a salted bcrypt hash of plain. The salt is generated
// per call and embedded in the output, so two hashes of the same password
// differ.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plain reproduces hash. It never errors:
// a malformed hash simply fails verification.
func VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
