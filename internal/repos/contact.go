package repos

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arioseno/contactbook-backend/internal/logger"
	"github.com/arioseno/contactbook-backend/internal/types"
)

type ContactRepo interface {
	Create(ctx context.Context, tx *gorm.DB, contacts []*types.Contact) ([]*types.Contact, error)
	// GetByOwner returns nil when no contact with that id exists under that
	// owner; a foreign contact and a missing one are indistinguishable.
	GetByOwner(ctx context.Context, tx *gorm.DB, username string, contactID uuid.UUID) (*types.Contact, error)
	Save(ctx context.Context, tx *gorm.DB, contact *types.Contact) error
	DeleteByOwner(ctx context.Context, tx *gorm.DB, username string, contactID uuid.UUID) (int64, error)
	Search(ctx context.Context, tx *gorm.DB, username string, filter types.ContactFilter, offset, limit int) ([]*types.Contact, int64, error)
}

type contactRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewContactRepo(db *gorm.DB, baseLog *logger.Logger) ContactRepo {
	repoLog := baseLog.With("repo", "ContactRepo")
	return &contactRepo{db: db, log: repoLog}
}

func (cr *contactRepo) Create(ctx context.Context, tx *gorm.DB, contacts []*types.Contact) ([]*types.Contact, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	if len(contacts) == 0 {
		return []*types.Contact{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (cr *contactRepo) GetByOwner(ctx context.Context, tx *gorm.DB, username string, contactID uuid.UUID) (*types.Contact, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.Contact
	if err := transaction.WithContext(ctx).
		Where("username = ? AND id = ?", username, contactID).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (cr *contactRepo) Save(ctx context.Context, tx *gorm.DB, contact *types.Contact) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).Save(contact).Error
}

func (cr *contactRepo) DeleteByOwner(ctx context.Context, tx *gorm.DB, username string, contactID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	result := transaction.WithContext(ctx).
		Where("username = ? AND id = ?", username, contactID).
		Delete(&types.Contact{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// buildContactFilter composes the provided criteria into AND-combined
// predicates. Name matches first or last name; all matches are
// case-insensitive substring containment.
func buildContactFilter(query *gorm.DB, filter types.ContactFilter) *gorm.DB {
	if filter.Name != nil {
		pattern := containsPattern(*filter.Name)
		query = query.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", pattern, pattern)
	}
	if filter.Email != nil {
		query = query.Where("LOWER(email) LIKE ?", containsPattern(*filter.Email))
	}
	if filter.Phone != nil {
		query = query.Where("LOWER(phone) LIKE ?", containsPattern(*filter.Phone))
	}
	return query
}

func containsPattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}

func (cr *contactRepo) Search(ctx context.Context, tx *gorm.DB, username string, filter types.ContactFilter, offset, limit int) ([]*types.Contact, int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	base := transaction.WithContext(ctx).
		Model(&types.Contact{}).
		Where("username = ?", username)
	base = buildContactFilter(base, filter)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var results []*types.Contact
	if err := base.Session(&gorm.Session{}).
		Order("created_at").
		Offset(offset).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, 0, err
	}
	return results, total, nil
}
