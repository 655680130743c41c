package service

import (
	"fmt"

	"socialite-be/internal/entities"
	"socialite-be/internal/repository"
)

// FollowService defines the interface for follow-graph mutations
type FollowService interface {
	SetFollow(follow bool, followFrom, followTo *entities.User) error
}

type followService struct {
	followRepo repository.FollowRepository
}

// NewFollowService creates a new follow service
func NewFollowService(followRepo repository.FollowRepository) FollowService {
	return &followService{followRepo: followRepo}
}

// SetFollow creates or removes the edge followFrom -> followTo. Both
// directions of the call are idempotent: following an already-followed
// user and unfollowing a never-followed one are no-ops. Self-follow is
// rejected before any store mutation.
func (s *followService) SetFollow(follow bool, followFrom, followTo *entities.User) error {
	if followFrom.ID == followTo.ID {
		return ErrSelfFollow
	}

	if follow {
		if err := s.followRepo.Upsert(followFrom.ID, followTo.ID); err != nil {
			return fmt.Errorf("failed to follow: %w", err)
		}
		return nil
	}

	if err := s.followRepo.Delete(followFrom.ID, followTo.ID); err != nil {
		return fmt.Errorf("failed to unfollow: %w", err)
	}
	return nil
}
