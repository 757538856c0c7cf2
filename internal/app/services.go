package app

import (
	"gorm.io/gorm"

	"github.com/arioseno/contactbook-backend/internal/logger"
	"github.com/arioseno/contactbook-backend/internal/services"
)

type Services struct {
	Auth    services.AuthService
	User    services.UserService
	Contact services.ContactService
	Address services.AddressService
}

func wireServices(db *gorm.DB, log *logger.Logger, reposet Repos) Services {
	log.Info("Wiring services...")
	authService := services.NewAuthService(db, log, reposet.User)
	userService := services.NewUserService(db, log, reposet.User)
	contactService := services.NewContactService(db, log, reposet.Contact, reposet.Address)
	addressService := services.NewAddressService(db, log, reposet.Address, contactService)
	return Services{
		Auth:    authService,
		User:    userService,
		Contact: contactService,
		Address: addressService,
	}
}
