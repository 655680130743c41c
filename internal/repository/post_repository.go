package repository

import (
	"database/sql"
	"fmt"
)

// PostRepository exposes the aggregate this module needs from the
// posts table; post content itself is owned elsewhere.
type PostRepository interface {
	CountByAuthor(userID int64) (int64, error)
}

type postRepository struct {
	db *sql.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *sql.DB) PostRepository {
	return &postRepository{db: db}
}

// CountByAuthor counts posts authored by the user
func (r *postRepository) CountByAuthor(userID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(`SELECT COUNT(*) FROM posts WHERE author_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}
