package types

import (
	"time"

	"github.com/google/uuid"
)

type Contact struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username  string    `gorm:"index;not null;size:100;column:username" json:"-"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:Username;references:Username" json:"-"`
	FirstName string    `gorm:"not null;column:first_name" json:"first_name"`
	LastName  *string   `gorm:"column:last_name" json:"last_name"`
	Email     *string   `gorm:"column:email" json:"email"`
	Phone     *string   `gorm:"column:phone" json:"phone"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Contact) TableName() string {
	return "contacts"
}

type CreateContactRequest struct {
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

// UpdateContactRequest is a full-field overwrite at the store boundary:
// omitted optional fields become NULL.
type UpdateContactRequest struct {
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

type SearchContactsRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	Page  int     `json:"page"`
	Size  int     `json:"size"`
}

// ContactFilter is the typed criteria set the repository composes into
// AND-combined predicates. Nil fields contribute no predicate.
type ContactFilter struct {
	Name  *string
	Email *string
	Phone *string
}

// ContactResponse is the outward projection; the owner key never leaves the
// store layer.
type ContactResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  *string   `json:"last_name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
}

type Paging struct {
	CurrentPage int   `json:"current_page"`
	Size        int   `json:"size"`
	TotalPage   int64 `json:"total_page"`
}
