package token

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"socialite-be/internal/repository"
)

// maxAttempts bounds collision retries. With 122 bits of entropy per
// candidate, exhausting this means the store or RNG is broken.
const maxAttempts = 8

// Generator produces opaque API tokens guaranteed unique among issued
// ones. Generation is pure: the store is only read for collisions, the
// token is reserved by whoever persists it.
type Generator struct {
	users repository.UserRepository
}

// NewGenerator creates a new token generator
func NewGenerator(users repository.UserRepository) *Generator {
	return &Generator{users: users}
}

// Generate returns a fresh token not held by any existing user,
// retrying on collision up to maxAttempts.
func (g *Generator) Generate() (string, error) {
	for i := 0; i < maxAttempts; i++ {
		candidate := uuid.NewString()

		_, err := g.users.FindByToken(candidate)
		if errors.Is(err, repository.ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check token availability: %w", err)
		}
		// Collision: regenerate.
	}

	return "", fmt.Errorf("failed to generate unique token after %d attempts", maxAttempts)
}
