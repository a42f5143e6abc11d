package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eststy/eststy/internal/domain"
	"github.com/eststy/eststy/internal/events"
	"github.com/eststy/eststy/internal/store"
)

func TestRegisterAndSignIn(t *testing.T) {
	s := newTestStore(store.Options{})
	rec := recordEvents(s)
	ctx := context.Background()

	user, err := s.Register(ctx, "avery@example.com", "opensesame", "Avery", "Chen")
	require.NoError(t, err)
	assert.Equal(t, "avery@example.com", user.Email)
	assert.NotEmpty(t, user.PasswordHash)
	assert.True(t, user.Preferences.OrderUpdates, "order updates default on")

	// Registering signs the user in.
	current, err := s.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, user.ID, current.ID)

	s.SignOut()
	_, err = s.CurrentUser()
	assert.ErrorIs(t, err, domain.ErrNotSignedIn)

	// Email lookup is case-insensitive.
	again, err := s.SignIn(ctx, "AVERY@example.com", "opensesame")
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)

	assert.Equal(t, 1, rec.count(events.TypeUserRegistered))
	assert.Equal(t, 1, rec.count(events.TypeUserSignedOut))
	assert.Equal(t, 1, rec.count(events.TypeUserSignedIn))
}

func TestRegisterShortPassword(t *testing.T) {
	s := newTestStore(store.Options{})

	_, err := s.Register(context.Background(), "avery@example.com", "short", "Avery", "Chen")
	require.Error(t, err)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))

	_, err = s.CurrentUser()
	assert.ErrorIs(t, err, domain.ErrNotSignedIn)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := newTestStore(store.Options{})
	ctx := context.Background()

	_, err := s.Register(ctx, "avery@example.com", "opensesame", "Avery", "Chen")
	require.NoError(t, err)

	_, err = s.Register(ctx, "Avery@Example.COM", "different1", "A", "C")
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestSignInBadCredentials(t *testing.T) {
	s := newTestStore(store.Options{})
	ctx := context.Background()

	_, err := s.Register(ctx, "avery@example.com", "opensesame", "Avery", "Chen")
	require.NoError(t, err)
	s.SignOut()

	// Unknown email and wrong password fail identically.
	_, err = s.SignIn(ctx, "nobody@example.com", "opensesame")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = s.SignIn(ctx, "avery@example.com", "wrongpassword")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = s.CurrentUser()
	assert.ErrorIs(t, err, domain.ErrNotSignedIn)
}

func TestUpdateProfile(t *testing.T) {
	s := newTestStore(store.Options{})
	ctx := context.Background()

	_, err := s.UpdateProfile("Avery", "Chen", domain.Preferences{})
	assert.ErrorIs(t, err, domain.ErrNotSignedIn)

	_, err = s.Register(ctx, "avery@example.com", "opensesame", "Avery", "Chen")
	require.NoError(t, err)

	rec := recordEvents(s)
	user, err := s.UpdateProfile("Ave", "Chen-Lee", domain.Preferences{Newsletter: true, OrderUpdates: true})
	require.NoError(t, err)
	assert.Equal(t, "Ave", user.FirstName)
	assert.Equal(t, "Chen-Lee", user.LastName)
	assert.True(t, user.Preferences.Newsletter)
	assert.Equal(t, 1, rec.count(events.TypeProfileUpdated))
}

func TestAddAddressAndPaymentMethod(t *testing.T) {
	s := newTestStore(store.Options{})
	ctx := context.Background()

	_, err := s.Register(ctx, "avery@example.com", "opensesame", "Avery", "Chen")
	require.NoError(t, err)

	user, err := s.AddAddress(domain.Address{Label: "home", Line1: "42 Maple St", City: "Portland"})
	require.NoError(t, err)
	require.Len(t, user.Addresses, 1)
	assert.True(t, user.Addresses[0].Default, "first address becomes the default")

	user, err = s.AddAddress(domain.Address{Label: "work", Line1: "1 Pine Ave", City: "Portland"})
	require.NoError(t, err)
	require.Len(t, user.Addresses, 2)
	assert.False(t, user.Addresses[1].Default)

	user, err = s.AddPaymentMethod(domain.PaymentMethod{Kind: "card", Label: "Visa", LastFour: "4242"})
	require.NoError(t, err)
	require.Len(t, user.PaymentMethods, 1)
	assert.True(t, user.PaymentMethods[0].Default)
}
