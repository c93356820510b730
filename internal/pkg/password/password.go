package password

import (
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt work factor used by Hash.
var Cost = bcrypt.DefaultCost

// Hash bcrypts a SHA-256 digest of plain, so passwords of any length are
// accepted; bcrypt alone rejects inputs over 72 bytes.
func Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(prehash(plain), Cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Matches reports whether plain is the password behind hash.
func Matches(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), prehash(plain)) == nil
}

func prehash(plain string) []byte {
	sum := sha256.Sum256([]byte(plain))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}
