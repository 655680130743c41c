package models

import "time"

// UserExport is the client-facing projection of a user: the public
// profile fields plus derived aggregates and, when a requester is
// known, the relationship flags between requester and subject.
//
// IsFollowing/IsFollowingBack are nil when there is no requester or
// the requester is the subject; otherwise both are concrete booleans.
// APIToken is set only for authorized views (e.g. the self profile).
type UserExport struct {
	ID                int64     `json:"id"`
	Email             string    `json:"email"`
	Username          string    `json:"username"`
	DisplayName       string    `json:"display_name"`
	ProfilePictureURL string    `json:"profile_picture_url"`
	Description       string    `json:"description"`
	Type              string    `json:"type"`
	CreatedAt         time.Time `json:"created_at"`

	FollowerCount  int64 `json:"follower_count"`
	FollowingCount int64 `json:"following_count"`
	PostCount      int64 `json:"post_count"`

	IsFollowing     *bool   `json:"is_following,omitempty"`
	IsFollowingBack *bool   `json:"is_following_back,omitempty"`
	APIToken        *string `json:"api_token,omitempty"`
}
