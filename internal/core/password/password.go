// Package password provides one-way credential hashing backed by bcrypt.
// Hashes are self-salting and carry the bcrypt format tag, which lets the
// migration job tell migrated credentials apart from legacy plaintext
// without parsing the hash.
package password

import "golang.org/x/crypto/bcrypt"

// hashTag prefixes every bcrypt hash variant ($2a$, $2b$, $2y$).
const hashTag = "$2"

// Hash derives a salted one-way hash from the secret. Each call produces a
// different string for the same input.
func Hash(secret string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether secret matches the stored hash.
func Verify(secret, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}

// IsHashed reports whether the stored credential is already in bcrypt
// format. Anything without the tag is treated as legacy plaintext.
func IsHashed(credential string) bool {
	return len(credential) >= len(hashTag) && credential[:len(hashTag)] == hashTag
}
