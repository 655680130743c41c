package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"socialite-be/internal/entities"
)

// Storage-level sentinel errors. Services translate these into their
// own error taxonomy.
var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateEmail    = errors.New("email already taken")
	ErrDuplicateUsername = errors.New("username already taken")
	ErrDuplicateToken    = errors.New("api token already taken")
)

const uniqueViolation = "23505"

const userColumns = `id, email, username, display_name, profile_picture_url, description, password_hash, api_token, type, created_at`

// UserRepository defines the interface for user database operations
type UserRepository interface {
	Create(email, username, displayName, passwordHash, apiToken string) (*entities.User, error)
	FindByID(id int64) (*entities.User, error)
	FindByEmail(email string) (*entities.User, error)
	FindByUsername(username string) (*entities.User, error)
	FindByEmailOrUsername(identifier string) (*entities.User, error)
	FindByToken(token string) (*entities.User, error)
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

func scanUser(row *sql.Row) (*entities.User, error) {
	var user entities.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.DisplayName,
		&user.ProfilePictureURL,
		&user.Description,
		&user.PasswordHash,
		&user.APIToken,
		&user.Type,
		&user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &user, nil
}

// Create inserts a new user into the database. The unique indexes on
// LOWER(email), LOWER(username) and api_token are the authoritative
// uniqueness guard; violations are mapped back to duplicate errors so
// callers can rely on them even when a pre-check raced.
func (r *userRepository) Create(email, username, displayName, passwordHash, apiToken string) (*entities.User, error) {
	query := `
		INSERT INTO users (email, username, display_name, password_hash, api_token, type)
		VALUES ($1, $2, $3, $4, $5, '')
		RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(query, email, username, displayName, passwordHash, apiToken))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			switch {
			case strings.Contains(pqErr.Constraint, "email"):
				return nil, ErrDuplicateEmail
			case strings.Contains(pqErr.Constraint, "username"):
				return nil, ErrDuplicateUsername
			case strings.Contains(pqErr.Constraint, "api_token"):
				return nil, ErrDuplicateToken
			}
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// FindByID finds a user by ID
func (r *userRepository) FindByID(id int64) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(query, id))
}

// FindByEmail finds a user by email (case-insensitive)
func (r *userRepository) FindByEmail(email string) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`
	return scanUser(r.db.QueryRow(query, email))
}

// FindByUsername finds a user by username (case-insensitive)
func (r *userRepository) FindByUsername(username string) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(username) = LOWER($1)`
	return scanUser(r.db.QueryRow(query, username))
}

// FindByEmailOrUsername finds a user whose email or username exactly
// matches the identifier, as used by login.
func (r *userRepository) FindByEmailOrUsername(identifier string) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 OR username = $1`
	return scanUser(r.db.QueryRow(query, identifier))
}

// FindByToken finds a user by exact API token match
func (r *userRepository) FindByToken(token string) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE api_token = $1`
	return scanUser(r.db.QueryRow(query, token))
}
