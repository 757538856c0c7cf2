package types

import (
	"time"

	"github.com/google/uuid"
)

type Address struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ContactID  uuid.UUID `gorm:"type:uuid;index;not null;column:contact_id" json:"-"`
	Contact    *Contact  `gorm:"constraint:OnDelete:CASCADE;foreignKey:ContactID;references:ID" json:"-"`
	Street     *string   `gorm:"column:street" json:"street"`
	City       *string   `gorm:"column:city" json:"city"`
	Province   *string   `gorm:"column:province" json:"province"`
	Country    string    `gorm:"not null;column:country" json:"country"`
	PostalCode string    `gorm:"not null;column:postal_code" json:"postal_code"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

func (Address) TableName() string {
	return "addresses"
}

type CreateAddressRequest struct {
	Street     *string `json:"street"`
	City       *string `json:"city"`
	Province   *string `json:"province"`
	Country    string  `json:"country"`
	PostalCode string  `json:"postal_code"`
}

type UpdateAddressRequest struct {
	Street     *string `json:"street"`
	City       *string `json:"city"`
	Province   *string `json:"province"`
	Country    string  `json:"country"`
	PostalCode string  `json:"postal_code"`
}

type AddressResponse struct {
	ID         uuid.UUID `json:"id"`
	Street     *string   `json:"street"`
	City       *string   `json:"city"`
	Province   *string   `json:"province"`
	Country    string    `json:"country"`
	PostalCode string    `json:"postal_code"`
}
