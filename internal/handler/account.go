package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eststy/eststy/internal/domain"
)

type registerRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
}

// Register creates an account and signs it in.
func (h *Handler) Register(c echo.Context) error {
	var req registerRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	user, err := h.store.Register(c.Request().Context(), req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignIn authenticates by email and password.
func (h *Handler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	user, err := h.store.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// SignOut clears the current session.
func (h *Handler) SignOut(c echo.Context) error {
	h.store.SignOut()
	return c.NoContent(http.StatusNoContent)
}

// CurrentUser returns the signed-in profile.
func (h *Handler) CurrentUser(c echo.Context) error {
	user, err := h.store.CurrentUser()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

type updateProfileRequest struct {
	FirstName   string             `json:"first_name" validate:"required"`
	LastName    string             `json:"last_name" validate:"required"`
	Preferences domain.Preferences `json:"preferences"`
}

// UpdateProfile changes the signed-in user's name and preferences.
func (h *Handler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	user, err := h.store.UpdateProfile(req.FirstName, req.LastName, req.Preferences)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

type addAddressRequest struct {
	Label      string `json:"label"`
	FullName   string `json:"full_name" validate:"required"`
	Line1      string `json:"line1" validate:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

// AddAddress appends an address to the profile.
func (h *Handler) AddAddress(c echo.Context) error {
	var req addAddressRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	user, err := h.store.AddAddress(domain.Address{
		Label:      req.Label,
		FullName:   req.FullName,
		Line1:      req.Line1,
		Line2:      req.Line2,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

type addPaymentMethodRequest struct {
	Kind     string `json:"kind" validate:"required,oneof=card paypal"`
	Label    string `json:"label" validate:"required"`
	LastFour string `json:"last_four" validate:"omitempty,len=4,numeric"`
}

// AddPaymentMethod appends a payment method to the profile.
func (h *Handler) AddPaymentMethod(c echo.Context) error {
	var req addPaymentMethodRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	user, err := h.store.AddPaymentMethod(domain.PaymentMethod{
		Kind:     req.Kind,
		Label:    req.Label,
		LastFour: req.LastFour,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}
