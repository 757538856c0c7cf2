package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arioseno/contactbook-backend/internal/apierr"
	"github.com/arioseno/contactbook-backend/internal/types"
)

func TestRegisterUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp, err := env.users.Register(ctx, types.RegisterUserRequest{
		Username: "alice",
		Password: "pw123456",
		Name:     "Alice",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "Alice", resp.Name)
	assert.Nil(t, resp.Token, "registration must not issue a session token")

	// Same username again is a conflict.
	_, err = env.users.Register(ctx, types.RegisterUserRequest{
		Username: "alice",
		Password: "pw123456",
		Name:     "Alice Again",
	})
	require.Error(t, err)
	assert.True(t, apierr.IsCode(err, apierr.CodeConflict))
	assert.EqualError(t, err, "username already registered")
}

func TestRegisterUserValidation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.users.Register(context.Background(), types.RegisterUserRequest{})
	require.Error(t, err)
	assert.True(t, apierr.IsCode(err, apierr.CodeValidation))

	// Invalid input never reaches storage.
	var count int64
	require.NoError(t, env.db.Model(&types.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestLoginUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t, "alice", "Alice")

	resp, err := env.users.Login(ctx, types.LoginUserRequest{Username: "alice", Password: "pw123456"})
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)
	require.NotNil(t, resp.Token)
	assert.NotEmpty(t, *resp.Token)

	// The issued token resolves back to the user.
	user, err := env.auth.Resolve(ctx, *resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestLoginFailureIsUniform(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t, "alice", "Alice")

	_, wrongPassword := env.users.Login(ctx, types.LoginUserRequest{Username: "alice", Password: "not-the-password"})
	require.Error(t, wrongPassword)

	_, wrongUsername := env.users.Login(ctx, types.LoginUserRequest{Username: "nobody", Password: "pw123456"})
	require.Error(t, wrongUsername)

	// Wrong username and wrong password must be indistinguishable.
	assert.Equal(t, wrongPassword.Error(), wrongUsername.Error())
	assert.Equal(t, apierr.StatusOf(wrongPassword), apierr.StatusOf(wrongUsername))
	assert.True(t, apierr.IsCode(wrongPassword, apierr.CodeUnauthenticated))
}

func TestLoginReplacesPriorSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t, "alice", "Alice")

	first := env.login(t, "alice")
	second := env.login(t, "alice")
	require.NotEqual(t, first, second)

	// Single active session: the old token no longer resolves.
	_, err := env.auth.Resolve(ctx, first)
	require.Error(t, err)
	assert.True(t, apierr.IsCode(err, apierr.CodeUnauthenticated))

	_, err = env.auth.Resolve(ctx, second)
	require.NoError(t, err)
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t, "alice", "Alice")
	token := env.login(t, "alice")

	require.NoError(t, env.users.Logout(ctx, "alice"))

	// The stale token stops resolving, so a repeat logout cannot
	// authenticate with it.
	_, err := env.auth.Resolve(ctx, token)
	require.Error(t, err)
	assert.True(t, apierr.IsCode(err, apierr.CodeUnauthenticated))

	// Logout itself is idempotent for a still-resolved identity.
	require.NoError(t, env.users.Logout(ctx, "alice"))
}

func TestResolveToken(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, token := range []string{"", "never-issued"} {
		_, err := env.auth.Resolve(ctx, token)
		require.Error(t, err)
		assert.True(t, apierr.IsCode(err, apierr.CodeUnauthenticated))
		assert.EqualError(t, err, "missing or invalid token")
	}
}

func TestUpdateUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t, "alice", "Alice")

	// Partial update: name only, password untouched.
	resp, err := env.users.Update(ctx, "alice", types.UpdateUserRequest{Name: strPtr("Alice B")})
	require.NoError(t, err)
	assert.Equal(t, "Alice B", resp.Name)
	env.login(t, "alice")

	// Password change: old credential stops working, new one logs in.
	_, err = env.users.Update(ctx, "alice", types.UpdateUserRequest{Password: strPtr("different8")})
	require.NoError(t, err)
	_, err = env.users.Login(ctx, types.LoginUserRequest{Username: "alice", Password: "pw123456"})
	require.Error(t, err)
	_, err = env.users.Login(ctx, types.LoginUserRequest{Username: "alice", Password: "different8"})
	require.NoError(t, err)

	// Nothing provided is a validation failure.
	_, err = env.users.Update(ctx, "alice", types.UpdateUserRequest{})
	require.Error(t, err)
	assert.True(t, apierr.IsCode(err, apierr.CodeValidation))
}

func TestCurrentUser(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice", "Alice")

	resp, err := env.users.Current(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "Alice", resp.Name)
	assert.Nil(t, resp.Token)
}
