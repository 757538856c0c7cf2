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

// Every address operation runs a two-level check: the contact must exist
// under the caller first, and only then is the address looked up under the
// contact. When both are missing the reported failure is always the
// contact's, never the address's.
type AddressService interface {
	Create(ctx context.Context, username string, contactID uuid.UUID, req types.CreateAddressRequest) (*types.AddressResponse, error)
	Get(ctx context.Context, username string, contactID, addressID uuid.UUID) (*types.AddressResponse, error)
	Update(ctx context.Context, username string, contactID, addressID uuid.UUID, req types.UpdateAddressRequest) (*types.AddressResponse, error)
	Remove(ctx context.Context, username string, contactID, addressID uuid.UUID) error
	List(ctx context.Context, username string, contactID uuid.UUID) ([]*types.AddressResponse, error)
}

type addressService struct {
	db             *gorm.DB
	log            *logger.Logger
	addressRepo    repos.AddressRepo
	contactService ContactService
}

func NewAddressService(db *gorm.DB, log *logger.Logger, addressRepo repos.AddressRepo, contactService ContactService) AddressService {
	serviceLog := log.With("service", "AddressService")
	return &addressService{
		db:             db,
		log:            serviceLog,
		addressRepo:    addressRepo,
		contactService: contactService,
	}
}

func toAddressResponse(address *types.Address) *types.AddressResponse {
	return &types.AddressResponse{
		ID:         address.ID,
		Street:     address.Street,
		City:       address.City,
		Province:   address.Province,
		Country:    address.Country,
		PostalCode: address.PostalCode,
	}
}

func (svc *addressService) checkAddressExists(ctx context.Context, tx *gorm.DB, contactID, addressID uuid.UUID) (*types.Address, error) {
	address, err := svc.addressRepo.GetByContact(ctx, tx, contactID, addressID)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	if address == nil {
		return nil, apierr.NotFound("address")
	}
	return address, nil
}

func (svc *addressService) Create(ctx context.Context, username string, contactID uuid.UUID, req types.CreateAddressRequest) (*types.AddressResponse, error) {
	svc.log.Debug("create address", "username", username, "contact_id", contactID)
	if vErr := validation.CreateAddress(&req); vErr != nil {
		return nil, vErr
	}

	address := &types.Address{
		ID:         uuid.New(),
		ContactID:  contactID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}
	err := svc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, exErr := svc.contactService.CheckContactExists(ctx, tx, username, contactID); exErr != nil {
			return exErr
		}
		if _, cErr := svc.addressRepo.Create(ctx, tx, []*types.Address{address}); cErr != nil {
			return apierr.Internal(cErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toAddressResponse(address), nil
}

func (svc *addressService) Get(ctx context.Context, username string, contactID, addressID uuid.UUID) (*types.AddressResponse, error) {
	svc.log.Debug("get address", "username", username, "contact_id", contactID, "address_id", addressID)
	if _, exErr := svc.contactService.CheckContactExists(ctx, nil, username, contactID); exErr != nil {
		return nil, exErr
	}
	address, err := svc.checkAddressExists(ctx, nil, contactID, addressID)
	if err != nil {
		return nil, err
	}
	return toAddressResponse(address), nil
}

func (svc *addressService) Update(ctx context.Context, username string, contactID, addressID uuid.UUID, req types.UpdateAddressRequest) (*types.AddressResponse, error) {
	svc.log.Debug("update address", "username", username, "contact_id", contactID, "address_id", addressID)
	if vErr := validation.UpdateAddress(&req); vErr != nil {
		return nil, vErr
	}

	var updated *types.Address
	err := svc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, exErr := svc.contactService.CheckContactExists(ctx, tx, username, contactID); exErr != nil {
			return exErr
		}
		address, aErr := svc.checkAddressExists(ctx, tx, contactID, addressID)
		if aErr != nil {
			return aErr
		}
		address.Street = req.Street
		address.City = req.City
		address.Province = req.Province
		address.Country = req.Country
		address.PostalCode = req.PostalCode
		if sErr := svc.addressRepo.Save(ctx, tx, address); sErr != nil {
			return apierr.Internal(sErr)
		}
		updated = address
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toAddressResponse(updated), nil
}

func (svc *addressService) Remove(ctx context.Context, username string, contactID, addressID uuid.UUID) error {
	svc.log.Debug("remove address", "username", username, "contact_id", contactID, "address_id", addressID)
	return svc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, exErr := svc.contactService.CheckContactExists(ctx, tx, username, contactID); exErr != nil {
			return exErr
		}
		if _, aErr := svc.checkAddressExists(ctx, tx, contactID, addressID); aErr != nil {
			return aErr
		}
		affected, dErr := svc.addressRepo.DeleteByContact(ctx, tx, contactID, addressID)
		if dErr != nil {
			return apierr.Internal(dErr)
		}
		if affected == 0 {
			return apierr.NotFound("address")
		}
		return nil
	})
}

func (svc *addressService) List(ctx context.Context, username string, contactID uuid.UUID) ([]*types.AddressResponse, error) {
	svc.log.Debug("list addresses", "username", username, "contact_id", contactID)
	if _, exErr := svc.contactService.CheckContactExists(ctx, nil, username, contactID); exErr != nil {
		return nil, exErr
	}
	addresses, err := svc.addressRepo.ListByContact(ctx, nil, contactID)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	items := make([]*types.AddressResponse, 0, len(addresses))
	for _, address := range addresses {
		items = append(items, toAddressResponse(address))
	}
	return items, nil
}
