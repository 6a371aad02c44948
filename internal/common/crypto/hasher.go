package crypto

import "golang.org/x/crypto/bcrypt"

// CredentialHasher verifies a claimed secret against a stored one-way
// derivation. bcrypt's comparison is constant-time.
type CredentialHasher interface {
	Hash(credential string) (string, error)
	Compare(hash string, credential string) error
}

type BcryptHasher struct{}

func (h *BcryptHasher) Hash(credential string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(credential), 12)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h *BcryptHasher) Compare(hash string, credential string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(credential))
}
