package types

import (
	"time"
)

// User is the owning identity for every contact. Token holds the single
// active opaque session token, NULL when logged out.
type User struct {
	Username  string    `gorm:"primaryKey;size:100;column:username" json:"username"`
	Name      string    `gorm:"not null;column:name" json:"name"`
	Password  string    `gorm:"not null;column:password" json:"-"`
	Token     *string   `gorm:"uniqueIndex;column:token" json:"-"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

type RegisterUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

type UserResponse struct {
	Username string  `json:"username"`
	Name     string  `json:"name"`
	Token    *string `json:"token,omitempty"`
}
