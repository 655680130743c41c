package token_test

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialite-be/internal/entities"
	"socialite-be/internal/repository"
	"socialite-be/internal/token"
)

// collidingRepo reports the first n lookups as taken, then free.
type collidingRepo struct {
	collisions int
	calls      int
}

func (r *collidingRepo) FindByToken(string) (*entities.User, error) {
	r.calls++
	if r.calls <= r.collisions {
		return &entities.User{ID: int64(r.calls), APIToken: sql.NullString{Valid: true}}, nil
	}
	return nil, repository.ErrNotFound
}

func (r *collidingRepo) Create(_, _, _, _, _ string) (*entities.User, error) {
	return nil, repository.ErrNotFound
}
func (r *collidingRepo) FindByID(int64) (*entities.User, error) { return nil, repository.ErrNotFound }
func (r *collidingRepo) FindByEmail(string) (*entities.User, error) {
	return nil, repository.ErrNotFound
}
func (r *collidingRepo) FindByUsername(string) (*entities.User, error) {
	return nil, repository.ErrNotFound
}
func (r *collidingRepo) FindByEmailOrUsername(string) (*entities.User, error) {
	return nil, repository.ErrNotFound
}

func TestGenerate(t *testing.T) {
	repo := &collidingRepo{}
	gen := token.NewGenerator(repo)

	generated, err := gen.Generate()
	require.NoError(t, err)
	assert.NotEmpty(t, generated)
	assert.Equal(t, 1, repo.calls)
}

func TestGenerateDistinct(t *testing.T) {
	gen := token.NewGenerator(&collidingRepo{})

	a, err := gen.Generate()
	require.NoError(t, err)
	b, err := gen.Generate()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestGenerateRetriesOnCollision(t *testing.T) {
	repo := &collidingRepo{collisions: 3}
	gen := token.NewGenerator(repo)

	generated, err := gen.Generate()
	require.NoError(t, err)
	assert.NotEmpty(t, generated)
	assert.Equal(t, 4, repo.calls)
}

func TestGenerateGivesUpAfterMaxAttempts(t *testing.T) {
	repo := &collidingRepo{collisions: 1 << 30}
	gen := token.NewGenerator(repo)

	_, err := gen.Generate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to generate unique token")
}
