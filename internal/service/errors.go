package service

import "errors"

var (
	// ErrEmptyCart rejects placing an order with nothing in the cart.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrIncompleteSeatInfo rejects seat delivery without a full seat
	// location (section, row and seat number).
	ErrIncompleteSeatInfo = errors.New("incomplete seat information")

	// ErrInvalidFulfillment rejects unknown fulfillment modes.
	ErrInvalidFulfillment = errors.New("invalid fulfillment mode")

	// ErrUnknownItem rejects cart adds for ids absent from the active menu.
	ErrUnknownItem = errors.New("item not on the menu")

	// ErrMissingCredentials rejects login with a blank email or password.
	ErrMissingCredentials = errors.New("email and password are required")
)
