package store

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/eststy/eststy/internal/auth"
	"github.com/eststy/eststy/internal/domain"
	"github.com/eststy/eststy/internal/events"
)

// Register creates a new account and signs it in. Emails are compared
// case-insensitively; a duplicate fails with ErrEmailTaken.
func (s *Store) Register(ctx context.Context, email, password, firstName, lastName string) (*domain.User, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	key := normalizeEmail(email)
	if key == "" {
		return nil, domain.Invalid("account.register", "email is required")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooShort) {
			return nil, domain.Invalid("account.register", err.Error())
		}
		return nil, domain.Internal(err, "account.register", "failed to hash password")
	}

	s.mu.Lock()

	if _, exists := s.users[key]; exists {
		s.mu.Unlock()
		return nil, domain.ErrEmailTaken
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        strings.TrimSpace(email),
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
		Preferences:  domain.Preferences{OrderUpdates: true},
		CreatedAt:    s.opts.Now(),
	}
	s.users[key] = user
	s.currentUser = user

	out := cloneUser(user)
	payload := events.UserPayload{UserID: user.ID, Email: user.Email}
	s.mu.Unlock()

	s.publish(events.TypeUserRegistered, payload)

	s.opts.Logger.Info().Str("email", out.Email).Msg("account registered")
	return &out, nil
}

// SignIn authenticates by email and password. Wrong email and wrong
// password return the same ErrInvalidCredentials.
func (s *Store) SignIn(ctx context.Context, email, password string) (*domain.User, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	user, ok := s.users[normalizeEmail(email)]
	if !ok {
		s.mu.Unlock()
		return nil, domain.ErrInvalidCredentials
	}
	hash := user.PasswordHash
	s.mu.Unlock()

	// bcrypt comparison is slow, do it outside the lock.
	if err := auth.VerifyPassword(password, hash); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	s.mu.Lock()
	s.currentUser = user
	out := cloneUser(user)
	payload := events.UserPayload{UserID: user.ID, Email: user.Email}
	s.mu.Unlock()

	s.publish(events.TypeUserSignedIn, payload)
	return &out, nil
}

// SignOut clears the current session. Signing out while signed out is a
// no-op and emits no event.
func (s *Store) SignOut() {
	s.mu.Lock()
	if s.currentUser == nil {
		s.mu.Unlock()
		return
	}
	payload := events.UserPayload{UserID: s.currentUser.ID, Email: s.currentUser.Email}
	s.currentUser = nil
	s.mu.Unlock()

	s.publish(events.TypeUserSignedOut, payload)
}

// CurrentUser returns the signed-in user, or ErrNotSignedIn.
func (s *Store) CurrentUser() (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentUser == nil {
		return nil, domain.ErrNotSignedIn
	}
	out := cloneUser(s.currentUser)
	return &out, nil
}

// UpdateProfile changes the signed-in user's name and preferences.
func (s *Store) UpdateProfile(firstName, lastName string, prefs domain.Preferences) (*domain.User, error) {
	return s.mutateCurrentUser(func(u *domain.User) {
		u.FirstName = firstName
		u.LastName = lastName
		u.Preferences = prefs
	})
}

// AddAddress appends an address to the signed-in user's profile. The first
// address becomes the default.
func (s *Store) AddAddress(addr domain.Address) (*domain.User, error) {
	return s.mutateCurrentUser(func(u *domain.User) {
		addr.ID = uuid.New()
		if len(u.Addresses) == 0 {
			addr.Default = true
		}
		u.Addresses = append(u.Addresses, addr)
	})
}

// AddPaymentMethod appends a payment method to the signed-in user's
// profile. The first method becomes the default.
func (s *Store) AddPaymentMethod(pm domain.PaymentMethod) (*domain.User, error) {
	return s.mutateCurrentUser(func(u *domain.User) {
		pm.ID = uuid.New()
		if len(u.PaymentMethods) == 0 {
			pm.Default = true
		}
		u.PaymentMethods = append(u.PaymentMethods, pm)
	})
}

func (s *Store) mutateCurrentUser(fn func(u *domain.User)) (*domain.User, error) {
	s.mu.Lock()

	if s.currentUser == nil {
		s.mu.Unlock()
		return nil, domain.ErrNotSignedIn
	}

	fn(s.currentUser)
	out := cloneUser(s.currentUser)
	payload := events.UserPayload{UserID: out.ID, Email: out.Email}
	s.mu.Unlock()

	s.publish(events.TypeProfileUpdated, payload)
	return &out, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func cloneUser(u *domain.User) domain.User {
	out := *u
	out.Addresses = append([]domain.Address(nil), u.Addresses...)
	out.PaymentMethods = append([]domain.PaymentMethod(nil), u.PaymentMethods...)
	return out
}
