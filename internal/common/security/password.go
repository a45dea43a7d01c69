package security

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher wraps bcrypt with a process-wide cost, injected wherever
// passwords are hashed or checked.
type PasswordHasher struct {
	cost      int
	dummyHash string
}

// NewPasswordHasher builds a hasher with the given bcrypt cost (0 selects
// bcrypt.DefaultCost). It precomputes a dummy hash from a random secret so
// login can equalize timing between unknown-email and wrong-password paths.
func NewPasswordHasher(cost int) (*PasswordHasher, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range", cost)
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("failed to seed dummy hash: %w", err)
	}
	dummy, err := bcrypt.GenerateFromPassword([]byte(hex.EncodeToString(buf)), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to precompute dummy hash: %w", err)
	}

	return &PasswordHasher{cost: cost, dummyHash: string(dummy)}, nil
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (h *PasswordHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// VerifyDummy runs a bcrypt comparison against the precomputed dummy hash so
// the caller spends the same time as a real mismatch. The result is always a
// rejection.
func (h *PasswordHasher) VerifyDummy(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(h.dummyHash), []byte(password)) == nil
}
