package model

import (
	"time"

	"github.com/chatpad-dev/chatpad/pkg/domain/types"
)

// User represents an account created or merged on login. The UID comes
// from the identity provider and is the document key.
type User struct {
	UID                types.UserID
	Email              string
	DisplayName        string
	PhotoURL           string
	IsAnonymousEnabled bool
	CreatedAt          time.Time
}

// ProfileUpdate holds a partial profile mutation. Nil fields are left
// untouched.
type ProfileUpdate struct {
	DisplayName        *string
	IsAnonymousEnabled *bool
}

// IsEmpty reports whether the update would change nothing
func (u ProfileUpdate) IsEmpty() bool {
	return u.DisplayName == nil && u.IsAnonymousEnabled == nil
}

// Apply overlays the non-nil fields onto the user
func (u ProfileUpdate) Apply(user *User) {
	if u.DisplayName != nil {
		user.DisplayName = *u.DisplayName
	}
	if u.IsAnonymousEnabled != nil {
		user.IsAnonymousEnabled = *u.IsAnonymousEnabled
	}
}
