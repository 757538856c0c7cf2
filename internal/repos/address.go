package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arioseno/contactbook-backend/internal/logger"
	"github.com/arioseno/contactbook-backend/internal/types"
)

type AddressRepo interface {
	Create(ctx context.Context, tx *gorm.DB, addresses []*types.Address) ([]*types.Address, error)
	// GetByContact returns nil when no address with that id exists under the
	// given contact.
	GetByContact(ctx context.Context, tx *gorm.DB, contactID, addressID uuid.UUID) (*types.Address, error)
	ListByContact(ctx context.Context, tx *gorm.DB, contactID uuid.UUID) ([]*types.Address, error)
	Save(ctx context.Context, tx *gorm.DB, address *types.Address) error
	DeleteByContact(ctx context.Context, tx *gorm.DB, contactID, addressID uuid.UUID) (int64, error)
	DeleteAllByContact(ctx context.Context, tx *gorm.DB, contactID uuid.UUID) error
}

type addressRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAddressRepo(db *gorm.DB, baseLog *logger.Logger) AddressRepo {
	repoLog := baseLog.With("repo", "AddressRepo")
	return &addressRepo{db: db, log: repoLog}
}

func (ar *addressRepo) Create(ctx context.Context, tx *gorm.DB, addresses []*types.Address) ([]*types.Address, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	if len(addresses) == 0 {
		return []*types.Address{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

func (ar *addressRepo) GetByContact(ctx context.Context, tx *gorm.DB, contactID, addressID uuid.UUID) (*types.Address, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var results []*types.Address
	if err := transaction.WithContext(ctx).
		Where("contact_id = ? AND id = ?", contactID, addressID).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (ar *addressRepo) ListByContact(ctx context.Context, tx *gorm.DB, contactID uuid.UUID) ([]*types.Address, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var results []*types.Address
	if err := transaction.WithContext(ctx).
		Where("contact_id = ?", contactID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ar *addressRepo) Save(ctx context.Context, tx *gorm.DB, address *types.Address) error {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	return transaction.WithContext(ctx).Save(address).Error
}

func (ar *addressRepo) DeleteByContact(ctx context.Context, tx *gorm.DB, contactID, addressID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	result := transaction.WithContext(ctx).
		Where("contact_id = ? AND id = ?", contactID, addressID).
		Delete(&types.Address{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// DeleteAllByContact clears a contact's addresses ahead of deleting the
// contact itself, inside the same transaction as that delete.
func (ar *addressRepo) DeleteAllByContact(ctx context.Context, tx *gorm.DB, contactID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	return transaction.WithContext(ctx).
		Where("contact_id = ?", contactID).
		Delete(&types.Address{}).Error
}
