package services

import (
	"time"

	"hotel-booking-backend/pricing"
)

// PopularityService records offer views and derives popularity factors
// from recent view volume.
type PopularityService struct {
	Views    ViewStore
	Strategy pricing.PopularityFunc
	now      func() time.Time
}

func NewPopularityService(views ViewStore, strategy pricing.PopularityFunc) *PopularityService {
	if strategy == nil {
		strategy = pricing.LogPopularity
	}
	return &PopularityService{Views: views, Strategy: strategy, now: time.Now}
}

// RecordView appends a view event for the offer.
func (s *PopularityService) RecordView(offerID uint) error {
	return s.Views.Insert(offerID, s.now().UTC())
}

// Compute derives the popularity factor from views inside the sliding
// window ending at now.
func (s *PopularityService) Compute(offerID uint, now time.Time) (float64, error) {
	count, err := s.Views.CountSince(offerID, now.Add(-pricing.ViewWindow))
	if err != nil {
		return 0, err
	}
	return s.Strategy(count), nil
}
