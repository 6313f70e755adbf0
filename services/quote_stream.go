package services

import (
	"context"
	"time"

	"hotel-booking-backend/pricing"
)

// QuoteConn is the subset of a websocket connection the stream loop
// needs. *websocket.Conn satisfies it.
type QuoteConn interface {
	WriteJSON(v interface{}) error
}

type QuoteMessage struct {
	OfferID          uint    `json:"offer_id"`
	CurrentPrice     float64 `json:"current_price"`
	PopularityFactor float64 `json:"popularity_factor"`
}

type streamError struct {
	Error string `json:"error"`
}

// QuoteStream pushes freshly computed prices for one offer to a
// connected viewer at a fixed interval. It never mutates inventory; its
// only side effect is recording a view event on connect.
type QuoteStream struct {
	Offers   OfferStore
	Tracker  *PopularityService
	Model    *pricing.Model
	Interval time.Duration
	now      func() time.Time
}

func NewQuoteStream(offers OfferStore, tracker *PopularityService, model *pricing.Model, interval time.Duration) *QuoteStream {
	if interval <= 0 {
		interval = time.Second
	}
	return &QuoteStream{Offers: offers, Tracker: tracker, Model: model, Interval: interval, now: time.Now}
}

// Run streams quotes until ctx is cancelled (client disconnect) or a
// fault occurs. Faults are turned into a terminal {"error": ...} frame so
// the client is never left hanging; the returned error is nil only for a
// clean disconnect.
func (s *QuoteStream) Run(ctx context.Context, conn QuoteConn, offerID uint) error {
	if _, err := s.Offers.Get(offerID); err != nil {
		_ = conn.WriteJSON(streamError{Error: err.Error()})
		return err
	}

	// Each connection counts as one view.
	if err := s.Tracker.RecordView(offerID); err != nil {
		_ = conn.WriteJSON(streamError{Error: err.Error()})
		return err
	}

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		offer, err := s.Offers.Get(offerID)
		if err != nil {
			_ = conn.WriteJSON(streamError{Error: err.Error()})
			return err
		}

		msg := QuoteMessage{
			OfferID:          offer.ID,
			CurrentPrice:     pricing.Round2(s.Model.Quote(&offer, s.now().UTC())),
			PopularityFactor: offer.PopularityFactor,
		}
		if err := conn.WriteJSON(msg); err != nil {
			// Write failure means the peer is gone; nothing to report.
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
