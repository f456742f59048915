package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const MinUsernameLength = 3

// User is an author of articles and owner of projects.
type User struct {
	ID          uuid.UUID
	Username    string
	Email       string
	DisplayName string
	Bio         *string
	AvatarURL   *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks the invariants that hold for every persisted user.
func (u *User) Validate() error {
	ve := &ValidationError{}
	if len(strings.TrimSpace(u.Username)) < MinUsernameLength {
		ve.Add("username", "must be at least 3 characters")
	}
	if strings.TrimSpace(u.Email) == "" {
		ve.Add("email", "required")
	} else if !strings.Contains(u.Email, "@") {
		ve.Add("email", "invalid format")
	}
	if strings.TrimSpace(u.DisplayName) == "" {
		ve.Add("display_name", "required")
	}
	return ve.Err()
}

// UserStats is a user profile together with authored/owned counts.
type UserStats struct {
	User         User
	ArticleCount int
	ProjectCount int
}
