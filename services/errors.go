package services

import "errors"

// Domain errors surfaced directly to callers. Controllers translate these
// to HTTP statuses; anything else is treated as an internal failure.
var (
	ErrOfferNotFound  = errors.New("offer_not_found")
	ErrRoomNotFound   = errors.New("room_not_found")
	ErrHotelNotFound  = errors.New("hotel_not_found")
	ErrUnavailable    = errors.New("offer_unavailable")
	ErrPriceMismatch  = errors.New("price_mismatch")
	ErrForbidden      = errors.New("forbidden")
	ErrEmailTaken     = errors.New("email_already_registered")
	ErrInvalidRole    = errors.New("invalid_role")
	ErrBadCredentials = errors.New("invalid_credentials")
	ErrDuplicate      = errors.New("already_exists")
	ErrNotFound       = errors.New("not_found")
	ErrInvalidDates   = errors.New("invalid_date_range")
	ErrInvalidPrice   = errors.New("invalid_price_bounds")

	// ErrUnchanged may be returned from a WithLock callback to commit the
	// transaction without rewriting the offer row.
	ErrUnchanged = errors.New("unchanged")
)
