package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"socialite-be/internal/cache"
	"socialite-be/internal/entities"
	"socialite-be/internal/models"
	"socialite-be/internal/repository"
)

// tokenCacheTTL bounds how long a token lookup is served from cache.
// Tokens are immutable once issued, so cached entries never go stale
// in a dangerous way; the TTL just keeps evicted users from lingering.
const tokenCacheTTL = 5 * time.Minute

// TokenGenerator produces unique opaque API tokens.
type TokenGenerator interface {
	Generate() (string, error)
}

// UserService defines the interface for identity business logic
type UserService interface {
	Register(req *models.RegisterRequest) (*entities.User, error)
	Login(req *models.LoginRequest) (*entities.User, error)
	ValidateToken(token string) (*entities.User, error)
	FindByID(id int64) (*entities.User, error)
	Export(user *entities.User, includeAPIToken bool, requester *entities.User) (*models.UserExport, error)
}

type userService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	postRepo   repository.PostRepository
	tokens     TokenGenerator
	cache      cache.Cache
	bcryptCost int
	ctx        context.Context
}

// NewUserService creates a new user service. The cache is optional;
// pass nil to disable token-lookup caching.
func NewUserService(
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
	postRepo repository.PostRepository,
	tokens TokenGenerator,
	cacheClient cache.Cache,
	bcryptCost int,
) UserService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &userService{
		userRepo:   userRepo,
		followRepo: followRepo,
		postRepo:   postRepo,
		tokens:     tokens,
		cache:      cacheClient,
		bcryptCost: bcryptCost,
		ctx:        context.Background(),
	}
}

// Register creates a new user account with a hashed password and a
// freshly issued API token. The email/username pre-checks give precise
// errors on the fast path; the unique indexes at create time remain
// the authoritative guard against concurrent registrations.
func (s *userService) Register(req *models.RegisterRequest) (*entities.User, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, ErrEmailInUse
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	if _, err := s.userRepo.FindByUsername(req.Username); err == nil {
		return nil, ErrUsernameInUse
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	apiToken, err := s.tokens.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	user, err := s.userRepo.Create(req.Email, req.Username, req.DisplayName, string(hashedPassword), apiToken)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, ErrEmailInUse
		case errors.Is(err, repository.ErrDuplicateUsername):
			return nil, ErrUsernameInUse
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login authenticates a user by email or username plus password
func (s *userService) Login(req *models.LoginRequest) (*entities.User, error) {
	user, err := s.userRepo.FindByEmailOrUsername(req.Username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUnknownUser
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidPassword
	}

	return user, nil
}

// cachedUser is the cache representation of a resolved token. The
// entity's json tags hide the token itself, so the cache needs its
// own shape to round-trip it. The password hash is deliberately not
// carried: nothing after authentication needs it.
type cachedUser struct {
	ID                int64     `json:"id"`
	Email             string    `json:"email"`
	Username          string    `json:"username"`
	DisplayName       string    `json:"display_name"`
	ProfilePictureURL string    `json:"profile_picture_url"`
	Description       string    `json:"description"`
	APIToken          string    `json:"api_token"`
	Type              string    `json:"type"`
	CreatedAt         time.Time `json:"created_at"`
}

func (c *cachedUser) user() *entities.User {
	return &entities.User{
		ID:                c.ID,
		Email:             c.Email,
		Username:          c.Username,
		DisplayName:       c.DisplayName,
		ProfilePictureURL: c.ProfilePictureURL,
		Description:       c.Description,
		APIToken:          sql.NullString{String: c.APIToken, Valid: true},
		Type:              c.Type,
		CreatedAt:         c.CreatedAt,
	}
}

// ValidateToken resolves an API token to its user. An unknown token
// returns (nil, nil); errors are reserved for store failures so
// callers can tell an invalid credential from a broken backend.
func (s *userService) ValidateToken(apiToken string) (*entities.User, error) {
	if apiToken == "" {
		return nil, nil
	}

	cacheKey := fmt.Sprintf("token:%s", apiToken)
	if s.cache != nil {
		var cached cachedUser
		if err := s.cache.GetJSON(s.ctx, cacheKey, &cached); err == nil && cached.ID != 0 {
			return cached.user(), nil
		}
	}

	user, err := s.userRepo.FindByToken(apiToken)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by token: %w", err)
	}

	if s.cache != nil {
		s.cache.SetJSON(s.ctx, cacheKey, &cachedUser{
			ID:                user.ID,
			Email:             user.Email,
			Username:          user.Username,
			DisplayName:       user.DisplayName,
			ProfilePictureURL: user.ProfilePictureURL,
			Description:       user.Description,
			APIToken:          apiToken,
			Type:              user.Type,
			CreatedAt:         user.CreatedAt,
		}, tokenCacheTTL)
	}

	return user, nil
}

// FindByID finds a user by numeric id
func (s *userService) FindByID(id int64) (*entities.User, error) {
	user, err := s.userRepo.FindByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUnknownUser
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// Export assembles the client-facing projection of a user: aggregate
// counts, and relationship flags relative to the requester. The flags
// stay nil unless a requester is present and differs from the subject;
// otherwise both are concrete booleans. A pure read, safe to repeat.
func (s *userService) Export(user *entities.User, includeAPIToken bool, requester *entities.User) (*models.UserExport, error) {
	followerCount, err := s.followRepo.CountFollowers(user.ID)
	if err != nil {
		return nil, err
	}
	followingCount, err := s.followRepo.CountFollowing(user.ID)
	if err != nil {
		return nil, err
	}
	postCount, err := s.postRepo.CountByAuthor(user.ID)
	if err != nil {
		return nil, err
	}

	export := &models.UserExport{
		ID:                user.ID,
		Email:             user.Email,
		Username:          user.Username,
		DisplayName:       user.DisplayName,
		ProfilePictureURL: user.ProfilePictureURL,
		Description:       user.Description,
		Type:              user.Type,
		CreatedAt:         user.CreatedAt,
		FollowerCount:     followerCount,
		FollowingCount:    followingCount,
		PostCount:         postCount,
	}

	if requester != nil && requester.ID != user.ID {
		follows, err := s.followRepo.Between(user.ID, requester.ID)
		if err != nil {
			return nil, err
		}

		isFollowing, isFollowingBack := false, false
		for _, follow := range follows {
			if follow.FollowFrom == requester.ID && follow.FollowTo == user.ID {
				isFollowing = true
			}
			if follow.FollowFrom == user.ID && follow.FollowTo == requester.ID {
				isFollowingBack = true
			}
		}
		export.IsFollowing = &isFollowing
		export.IsFollowingBack = &isFollowingBack
	}

	if includeAPIToken && user.APIToken.Valid {
		apiToken := user.APIToken.String
		export.APIToken = &apiToken
	}

	return export, nil
}
