package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/arioseno/contactbook-backend/internal/logger"
	"github.com/arioseno/contactbook-backend/internal/repos"
	"github.com/arioseno/contactbook-backend/internal/types"
)

// The service tests run against an in-memory sqlite database standing in for
// Postgres; each test gets its own named shared-cache DB so the gorm pool
// sees one store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", "#", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(&types.User{}, &types.Contact{}, &types.Address{}))
	return gormDB
}

func newTestLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

type testEnv struct {
	db        *gorm.DB
	auth      AuthService
	users     UserService
	contacts  ContactService
	addresses AddressService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gormDB := newTestDB(t)
	log := newTestLogger()
	userRepo := repos.NewUserRepo(gormDB, log)
	contactRepo := repos.NewContactRepo(gormDB, log)
	addressRepo := repos.NewAddressRepo(gormDB, log)
	contactService := NewContactService(gormDB, log, contactRepo, addressRepo)
	return &testEnv{
		db:        gormDB,
		auth:      NewAuthService(gormDB, log, userRepo),
		users:     NewUserService(gormDB, log, userRepo),
		contacts:  contactService,
		addresses: NewAddressService(gormDB, log, addressRepo, contactService),
	}
}

func (env *testEnv) register(t *testing.T, username, name string) {
	t.Helper()
	_, err := env.users.Register(context.Background(), types.RegisterUserRequest{
		Username: username,
		Password: "pw123456",
		Name:     name,
	})
	require.NoError(t, err)
}

func (env *testEnv) login(t *testing.T, username string) string {
	t.Helper()
	resp, err := env.users.Login(context.Background(), types.LoginUserRequest{
		Username: username,
		Password: "pw123456",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Token)
	return *resp.Token
}

func strPtr(s string) *string { return &s }
