package app

import (
	"gorm.io/gorm"

	"github.com/arioseno/contactbook-backend/internal/logger"
	"github.com/arioseno/contactbook-backend/internal/repos"
)

type Repos struct {
	User    repos.UserRepo
	Contact repos.ContactRepo
	Address repos.AddressRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:    repos.NewUserRepo(db, log),
		Contact: repos.NewContactRepo(db, log),
		Address: repos.NewAddressRepo(db, log),
	}
}
