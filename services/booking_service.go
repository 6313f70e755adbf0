// services/booking_service.go
package services

import (
	"math"
	"time"

	"hotel-booking-backend/models"
	"hotel-booking-backend/pricing"

	"github.com/google/uuid"
)

// priceTolerance is the relative drift allowed between a client-quoted
// price and the authoritative price recomputed under the row lock.
const priceTolerance = 0.01

type BookingReceipt struct {
	OfferID     uint    `json:"offer_id"`
	UserID      uint    `json:"user_id"`
	BookedPrice float64 `json:"booked_price"`
	Reference   string  `json:"reference_code"`
}

// BookingService runs the verify-and-decrement booking transaction.
type BookingService struct {
	Offers OfferStore
	Model  *pricing.Model
	now    func() time.Time
}

func NewBookingService(offers OfferStore, model *pricing.Model) *BookingService {
	return &BookingService{Offers: offers, Model: model, now: time.Now}
}

// Book purchases one unit of the offer for the user. quoted, when
// non-nil, is the price the client last saw on the live stream; it is
// verified against the authoritative price recomputed under the lock and
// rejected with ErrPriceMismatch if it drifted more than 1%. The
// inventory decrement and the booking row commit atomically; any error
// rolls both back.
func (s *BookingService) Book(offerID, userID uint, quoted *float64) (BookingReceipt, error) {
	var receipt BookingReceipt

	err := s.Offers.WithLock(offerID, func(lo LockedOffer) error {
		offer := lo.Offer()
		if offer.Available <= 0 {
			return ErrUnavailable
		}

		current := s.Model.Quote(offer, s.now().UTC())
		if quoted != nil && math.Abs(current-*quoted) > priceTolerance*current {
			return ErrPriceMismatch
		}

		offer.Available--

		booking := models.Booking{
			OfferID:   offerID,
			UserID:    userID,
			Price:     pricing.Round2(current),
			Reference: uuid.NewString(),
		}
		if err := lo.SaveBooking(&booking); err != nil {
			return err
		}

		receipt = BookingReceipt{
			OfferID:     offerID,
			UserID:      userID,
			BookedPrice: booking.Price,
			Reference:   booking.Reference,
		}
		return nil
	})
	if err != nil {
		return BookingReceipt{}, err
	}
	return receipt, nil
}
