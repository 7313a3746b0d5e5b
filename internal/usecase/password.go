package usecase

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/rs/zerolog/log"
)

// PasswordHasher turns a plaintext password into its at-rest form.
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// PasswordVerifier checks a plaintext password against a stored hash.
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

type BcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

type BcryptPasswordVerifier struct{}

func NewBcryptPasswordVerifier() *BcryptPasswordVerifier {
	return &BcryptPasswordVerifier{}
}

// Verify fails closed: a malformed stored hash verifies false instead of
// surfacing an error to the login path.
func (v *BcryptPasswordVerifier) Verify(plain string, hashed string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	if err != nil && err != bcrypt.ErrMismatchedHashAndPassword {
		log.Warn().Err(err).Msg("stored password hash did not parse")
	}
	return err == nil
}
