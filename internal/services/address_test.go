package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arioseno/contactbook-backend/internal/apierr"
	"github.com/arioseno/contactbook-backend/internal/types"
)

func (env *testEnv) createContact(t *testing.T, username string) uuid.UUID {
	t.Helper()
	contact, err := env.contacts.Create(context.Background(), username, types.CreateContactRequest{FirstName: "Jo"})
	require.NoError(t, err)
	return contact.ID
}

func TestAddressRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t, "alice", "Alice")
	contactID := env.createContact(t, "alice")

	created, err := env.addresses.Create(ctx, "alice", contactID, types.CreateAddressRequest{
		Street:     strPtr("Jl. Sudirman 1"),
		City:       strPtr("Jakarta"),
		Province:   strPtr("DKI Jakarta"),
		Country:    "Indonesia",
		PostalCode: "12190",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	got, err := env.addresses.Get(ctx, "alice", contactID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	require.NotNil(t, got.Street)
	assert.Equal(t, "Jl. Sudirman 1", *got.Street)
	require.NotNil(t, got.City)
	assert.Equal(t, "Jakarta", *got.City)
	require.NotNil(t, got.Province)
	assert.Equal(t, "DKI Jakarta", *got.Province)
	assert.Equal(t, "Indonesia", got.Country)
	assert.Equal(t, "12190", got.PostalCode)
}

func TestAddressOmittedOptionalsStayAbsent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t, "alice", "Alice")
	contactID := env.createContact(t, "alice")

	created, err := env.addresses.Create(ctx, "alice", contactID, types.CreateAddressRequest{
		Country:    "Indonesia",
		PostalCode: "12190",
	})
	require.NoError(t, err)

	got, err := env.addresses.Get(ctx, "alice", contactID, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Street)
	assert.Nil(t, got.City)
	assert.Nil(t, got.Province)
}

func TestAddressContactCheckComesFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t, "alice", "Alice")

	// Both the contact and the address are absent: the reported failure must
	// be the contact's, never the address's.
	missingContact := uuid.New()
	missingAddress := uuid.New()
	_, err := env.addresses.Get(ctx, "alice", missingContact, missingAddress)
	require.Error(t, err)
	assert.EqualError(t, err, "contact not found")

	err = env.addresses.Remove(ctx, "alice", missingContact, missingAddress)
	require.Error(t, err)
	assert.EqualError(t, err, "contact not found")

	_, err = env.addresses.List(ctx, "alice", missingContact)
	require.Error(t, err)
	assert.EqualError(t, err, "contact not found")

	// Existing contact, absent address: now it is the address's failure.
	contactID := env.createContact(t, "alice")
	_, err = env.addresses.Get(ctx, "alice", contactID, missingAddress)
	require.Error(t, err)
	assert.EqualError(t, err, "address not found")
	assert.True(t, apierr.IsCode(err, apierr.CodeNotFound))
}

func TestAddressForeignContactIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t, "alice", "Alice")
	env.register(t, "bob", "Bob")
	contactID := env.createContact(t, "alice")

	address, err := env.addresses.Create(ctx, "alice", contactID, types.CreateAddressRequest{
		Country:    "Indonesia",
		PostalCode: "12190",
	})
	require.NoError(t, err)

	// The two-hop check fails at the contact hop for a foreign owner, even
	// though the (contactId, addressId) pair exists.
	_, err = env.addresses.Get(ctx, "bob", contactID, address.ID)
	require.Error(t, err)
	assert.EqualError(t, err, "contact not found")

	err = env.addresses.Remove(ctx, "bob", contactID, address.ID)
	require.Error(t, err)
	assert.EqualError(t, err, "contact not found")
}

func TestAddressUpdateIsFullOverwrite(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t, "alice", "Alice")
	contactID := env.createContact(t, "alice")

	created, err := env.addresses.Create(ctx, "alice", contactID, types.CreateAddressRequest{
		Street:     strPtr("Jl. Sudirman 1"),
		Country:    "Indonesia",
		PostalCode: "12190",
	})
	require.NoError(t, err)

	updated, err := env.addresses.Update(ctx, "alice", contactID, created.ID, types.UpdateAddressRequest{
		City:       strPtr("Bandung"),
		Country:    "Indonesia",
		PostalCode: "40111",
	})
	require.NoError(t, err)
	assert.Equal(t, "40111", updated.PostalCode)
	require.NotNil(t, updated.City)
	assert.Nil(t, updated.Street, "omitted street is cleared")
}

func TestAddressRemoveAndList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t, "alice", "Alice")
	contactID := env.createContact(t, "alice")

	first, err := env.addresses.Create(ctx, "alice", contactID, types.CreateAddressRequest{
		Country:    "Indonesia",
		PostalCode: "11111",
	})
	require.NoError(t, err)
	second, err := env.addresses.Create(ctx, "alice", contactID, types.CreateAddressRequest{
		Country:    "Singapore",
		PostalCode: "22222",
	})
	require.NoError(t, err)

	list, err := env.addresses.List(ctx, "alice", contactID)
	require.NoError(t, err)
	// Insertion order is not meaningful; treat the listing as a set.
	ids := map[uuid.UUID]bool{}
	for _, a := range list {
		ids[a.ID] = true
	}
	assert.Len(t, ids, 2)
	assert.True(t, ids[first.ID])
	assert.True(t, ids[second.ID])

	require.NoError(t, env.addresses.Remove(ctx, "alice", contactID, first.ID))

	list, err = env.addresses.List(ctx, "alice", contactID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, second.ID, list[0].ID)

	// Removing again reports the address gone.
	err = env.addresses.Remove(ctx, "alice", contactID, first.ID)
	require.Error(t, err)
	assert.EqualError(t, err, "address not found")
}

func TestAddressValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t, "alice", "Alice")
	contactID := env.createContact(t, "alice")

	_, err := env.addresses.Create(ctx, "alice", contactID, types.CreateAddressRequest{})
	require.Error(t, err)
	assert.True(t, apierr.IsCode(err, apierr.CodeValidation))

	var count int64
	require.NoError(t, env.db.Model(&types.Address{}).Count(&count).Error)
	assert.Zero(t, count)
}
