package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account domain errors.
var (
	ErrUserNotFound       = &Error{Code: ENOTFOUND, Message: "User not found"}
	ErrEmailTaken         = &Error{Code: ECONFLICT, Message: "Email is already registered"}
	ErrInvalidCredentials = &Error{Code: EUNAUTHORIZED, Message: "Invalid email or password"}
	ErrNotSignedIn        = &Error{Code: EUNAUTHORIZED, Message: "No user is signed in"}
)

// Address is a shipping or billing address on the user's profile.
type Address struct {
	ID         uuid.UUID `json:"id"`
	Label      string    `json:"label"` // "home", "work", ...
	FullName   string    `json:"full_name"`
	Line1      string    `json:"line1"`
	Line2      string    `json:"line2,omitempty"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	PostalCode string    `json:"postal_code"`
	Country    string    `json:"country"`
	Default    bool      `json:"default"`
}

// PaymentMethod is a stored payment instrument. No charges are made through
// it; orders record which method the buyer selected.
type PaymentMethod struct {
	ID       uuid.UUID `json:"id"`
	Kind     string    `json:"kind"` // "card", "paypal", ...
	Label    string    `json:"label"`
	LastFour string    `json:"last_four,omitempty"`
	Default  bool      `json:"default"`
}

// Preferences holds notification opt-ins.
type Preferences struct {
	Newsletter   bool `json:"newsletter"`
	OrderUpdates bool `json:"order_updates"`
	Promotions   bool `json:"promotions"`
}

// User is the account profile. The password hash never serializes.
type User struct {
	ID             uuid.UUID       `json:"id"`
	Email          string          `json:"email"`
	PasswordHash   string          `json:"-"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Addresses      []Address       `json:"addresses,omitempty"`
	PaymentMethods []PaymentMethod `json:"payment_methods,omitempty"`
	Preferences    Preferences     `json:"preferences"`
	CreatedAt      time.Time       `json:"created_at"`
}
