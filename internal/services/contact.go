package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arioseno/contactbook-backend/internal/apierr"
	"github.com/arioseno/contactbook-backend/internal/logger"
	"github.com/arioseno/contactbook-backend/internal/repos"
	"github.com/arioseno/contactbook-backend/internal/types"
	"github.com/arioseno/contactbook-backend/internal/validation"
)

type ContactService interface {
	Create(ctx context.Context, username string, req types.CreateContactRequest) (*types.ContactResponse, error)
	Get(ctx context.Context, username string, contactID uuid.UUID) (*types.ContactResponse, error)
	Update(ctx context.Context, username string, contactID uuid.UUID, req types.UpdateContactRequest) (*types.ContactResponse, error)
	Remove(ctx context.Context, username string, contactID uuid.UUID) error
	Search(ctx context.Context, username string, req types.SearchContactsRequest) ([]*types.ContactResponse, *types.Paging, error)
	// CheckContactExists is the ownership gate shared with the address
	// service: it must pass before any address under the contact is touched.
	CheckContactExists(ctx context.Context, tx *gorm.DB, username string, contactID uuid.UUID) (*types.Contact, error)
}

type contactService struct {
	db          *gorm.DB
	log         *logger.Logger
	contactRepo repos.ContactRepo
	addressRepo repos.AddressRepo
}

func NewContactService(db *gorm.DB, log *logger.Logger, contactRepo repos.ContactRepo, addressRepo repos.AddressRepo) ContactService {
	serviceLog := log.With("service", "ContactService")
	return &contactService{
		db:          db,
		log:         serviceLog,
		contactRepo: contactRepo,
		addressRepo: addressRepo,
	}
}

func toContactResponse(contact *types.Contact) *types.ContactResponse {
	return &types.ContactResponse{
		ID:        contact.ID,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Phone:     contact.Phone,
	}
}

func (cs *contactService) Create(ctx context.Context, username string, req types.CreateContactRequest) (*types.ContactResponse, error) {
	cs.log.Debug("create contact", "username", username)
	if vErr := validation.CreateContact(&req); vErr != nil {
		return nil, vErr
	}

	contact := &types.Contact{
		ID:        uuid.New(),
		Username:  username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, cErr := cs.contactRepo.Create(ctx, tx, []*types.Contact{contact}); cErr != nil {
			return apierr.Internal(cErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toContactResponse(contact), nil
}

func (cs *contactService) CheckContactExists(ctx context.Context, tx *gorm.DB, username string, contactID uuid.UUID) (*types.Contact, error) {
	contact, err := cs.contactRepo.GetByOwner(ctx, tx, username, contactID)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	if contact == nil {
		return nil, apierr.NotFound("contact")
	}
	return contact, nil
}

func (cs *contactService) Get(ctx context.Context, username string, contactID uuid.UUID) (*types.ContactResponse, error) {
	cs.log.Debug("get contact", "username", username, "contact_id", contactID)
	contact, err := cs.CheckContactExists(ctx, nil, username, contactID)
	if err != nil {
		return nil, err
	}
	return toContactResponse(contact), nil
}

// Update is a full-field overwrite at the store boundary: optional fields
// omitted from the request are cleared.
func (cs *contactService) Update(ctx context.Context, username string, contactID uuid.UUID, req types.UpdateContactRequest) (*types.ContactResponse, error) {
	cs.log.Debug("update contact", "username", username, "contact_id", contactID)
	if vErr := validation.UpdateContact(&req); vErr != nil {
		return nil, vErr
	}

	var updated *types.Contact
	err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		contact, exErr := cs.CheckContactExists(ctx, tx, username, contactID)
		if exErr != nil {
			return exErr
		}
		contact.FirstName = req.FirstName
		contact.LastName = req.LastName
		contact.Email = req.Email
		contact.Phone = req.Phone
		if sErr := cs.contactRepo.Save(ctx, tx, contact); sErr != nil {
			return apierr.Internal(sErr)
		}
		updated = contact
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toContactResponse(updated), nil
}

func (cs *contactService) Remove(ctx context.Context, username string, contactID uuid.UUID) error {
	cs.log.Debug("remove contact", "username", username, "contact_id", contactID)
	return cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, exErr := cs.CheckContactExists(ctx, tx, username, contactID); exErr != nil {
			return exErr
		}
		// Addresses go first, in the same transaction, alongside the FK
		// cascade the schema carries.
		if dErr := cs.addressRepo.DeleteAllByContact(ctx, tx, contactID); dErr != nil {
			return apierr.Internal(dErr)
		}
		affected, dErr := cs.contactRepo.DeleteByOwner(ctx, tx, username, contactID)
		if dErr != nil {
			return apierr.Internal(dErr)
		}
		if affected == 0 {
			// Lost a race to another deleter.
			return apierr.NotFound("contact")
		}
		return nil
	})
}

func (cs *contactService) Search(ctx context.Context, username string, req types.SearchContactsRequest) ([]*types.ContactResponse, *types.Paging, error) {
	cs.log.Debug("search contacts", "username", username, "page", req.Page, "size", req.Size)
	if vErr := validation.SearchContacts(&req); vErr != nil {
		return nil, nil, vErr
	}

	filter := types.ContactFilter{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	offset := (req.Page - 1) * req.Size

	contacts, total, err := cs.contactRepo.Search(ctx, nil, username, filter, offset, req.Size)
	if err != nil {
		return nil, nil, apierr.Internal(err)
	}

	items := make([]*types.ContactResponse, 0, len(contacts))
	for _, contact := range contacts {
		items = append(items, toContactResponse(contact))
	}
	paging := &types.Paging{
		CurrentPage: req.Page,
		Size:        req.Size,
		TotalPage:   (total + int64(req.Size) - 1) / int64(req.Size),
	}
	return items, paging, nil
}
