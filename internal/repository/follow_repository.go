package repository

import (
	"database/sql"
	"fmt"

	"socialite-be/internal/entities"
)

// FollowRepository defines the interface for follow-edge database operations
type FollowRepository interface {
	Upsert(followFrom, followTo int64) error
	Delete(followFrom, followTo int64) error
	CountFollowers(userID int64) (int64, error)
	CountFollowing(userID int64) (int64, error)
	Between(a, b int64) ([]*entities.UserFollow, error)
}

type followRepository struct {
	db *sql.DB
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db *sql.DB) FollowRepository {
	return &followRepository{db: db}
}

// Upsert creates the edge if absent; an existing edge is a no-op.
func (r *followRepository) Upsert(followFrom, followTo int64) error {
	query := `
		INSERT INTO user_follows (follow_from, follow_to)
		VALUES ($1, $2)
		ON CONFLICT (follow_from, follow_to) DO NOTHING
	`

	if _, err := r.db.Exec(query, followFrom, followTo); err != nil {
		return fmt.Errorf("failed to create follow: %w", err)
	}
	return nil
}

// Delete removes the edge if present; a missing edge is not an error.
func (r *followRepository) Delete(followFrom, followTo int64) error {
	query := `DELETE FROM user_follows WHERE follow_from = $1 AND follow_to = $2`

	if _, err := r.db.Exec(query, followFrom, followTo); err != nil {
		return fmt.Errorf("failed to delete follow: %w", err)
	}
	return nil
}

// CountFollowers counts edges pointing at the user
func (r *followRepository) CountFollowers(userID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(`SELECT COUNT(*) FROM user_follows WHERE follow_to = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count followers: %w", err)
	}
	return count, nil
}

// CountFollowing counts edges originating from the user
func (r *followRepository) CountFollowing(userID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(`SELECT COUNT(*) FROM user_follows WHERE follow_from = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count following: %w", err)
	}
	return count, nil
}

// Between returns the edges in either direction between two users,
// at most two rows.
func (r *followRepository) Between(a, b int64) ([]*entities.UserFollow, error) {
	query := `
		SELECT follow_from, follow_to, created_at
		FROM user_follows
		WHERE (follow_from = $1 AND follow_to = $2)
		   OR (follow_from = $2 AND follow_to = $1)
	`

	rows, err := r.db.Query(query, a, b)
	if err != nil {
		return nil, fmt.Errorf("failed to get follows: %w", err)
	}
	defer rows.Close()

	var follows []*entities.UserFollow
	for rows.Next() {
		var follow entities.UserFollow
		if err := rows.Scan(&follow.FollowFrom, &follow.FollowTo, &follow.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan follow: %w", err)
		}
		follows = append(follows, &follow)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating follows: %w", err)
	}

	return follows, nil
}
