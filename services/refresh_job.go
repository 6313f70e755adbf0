package services

import (
	"context"
	"log"
	"time"

	"hotel-booking-backend/pricing"
)

// PriceRefreshJob periodically recomputes and persists current_price and
// popularity_factor for every offer, keeping stored values in sync with
// the decay curve between live lookups. The job is owned by main: it
// starts at boot and stops when its context is cancelled at shutdown.
type PriceRefreshJob struct {
	Offers   OfferStore
	Tracker  *PopularityService
	Model    *pricing.Model
	Interval time.Duration
	now      func() time.Time
}

func NewPriceRefreshJob(offers OfferStore, tracker *PopularityService, model *pricing.Model, interval time.Duration) *PriceRefreshJob {
	if interval <= 0 {
		interval = time.Minute
	}
	return &PriceRefreshJob{Offers: offers, Tracker: tracker, Model: model, Interval: interval, now: time.Now}
}

// Start runs the sweep loop in a goroutine until ctx is cancelled.
func (j *PriceRefreshJob) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(j.Interval)
		defer ticker.Stop()

		log.Printf("price refresh job started (interval %s)", j.Interval)
		for {
			select {
			case <-ctx.Done():
				log.Println("price refresh job stopped")
				return
			case <-ticker.C:
				j.Sweep(j.now().UTC())
			}
		}
	}()
}

// Sweep runs one full pass over all offers. Each offer is refreshed in
// its own locked transaction so one bad row never aborts updates already
// committed for the others.
func (j *PriceRefreshJob) Sweep(now time.Time) {
	offers, err := j.Offers.All()
	if err != nil {
		log.Printf("refresh sweep: listing offers failed: %v", err)
		return
	}

	for _, offer := range offers {
		if err := j.refreshOffer(offer.ID, now); err != nil {
			log.Printf("refresh sweep: offer %d skipped: %v", offer.ID, err)
		}
	}
}

func (j *PriceRefreshJob) refreshOffer(offerID uint, now time.Time) error {
	factor, err := j.Tracker.Compute(offerID, now)
	if err != nil {
		return err
	}

	return j.Offers.WithLock(offerID, func(lo LockedOffer) error {
		offer := lo.Offer()

		changed := false
		if factor != offer.PopularityFactor {
			offer.PopularityFactor = factor
			changed = true
		}

		price := pricing.Round2(j.Model.Quote(offer, now))
		if price != offer.CurrentPrice {
			offer.CurrentPrice = price
			changed = true
		}

		if !changed {
			return ErrUnchanged
		}
		return nil
	})
}
