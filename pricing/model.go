package pricing

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"hotel-booking-backend/models"
)

// DecayFunc maps an offer's popularity factor to the exponential decay
// rate k used in initial_price * exp(-k * elapsedHours).
type DecayFunc func(popularity float64) float64

// ScaledDecay makes popular offers decay faster (k = 0.2 * popularity),
// nudging viewers to book hot offers before they bottom out. This is the
// default strategy.
func ScaledDecay(popularity float64) float64 {
	return 0.2 * popularity
}

// DampedDecay makes popular offers resist price erosion: the rate falls
// from 1.0 as popularity climbs above 1.0 and never drops below 0.1.
func DampedDecay(popularity float64) float64 {
	k := 1.0 - (popularity-1.0)*0.01
	if k < 0.1 {
		return 0.1
	}
	return k
}

// Model computes the current price of an offer from its age and
// popularity. Time is always passed in explicitly so price math stays
// deterministic in tests; jitter comes from an injected source so it can
// be seeded or disabled.
type Model struct {
	decay  DecayFunc
	jitter float64 // symmetric band, e.g. 0.01 => ±1%

	mu  sync.Mutex
	rng *rand.Rand
}

// NewModel builds a price model. A zero jitter disables the noise step
// entirely; a nil rng falls back to a time-seeded source.
func NewModel(decay DecayFunc, jitter float64, rng *rand.Rand) *Model {
	if decay == nil {
		decay = ScaledDecay
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Model{decay: decay, jitter: jitter, rng: rng}
}

// BasePrice is the deterministic part of the quote: exponential decay from
// the creation anchor, before jitter and before the floor clamp.
func (m *Model) BasePrice(offer *models.RoomOffer, now time.Time) float64 {
	elapsed := now.Sub(offer.CreatedAt).Hours()
	if elapsed < 0 {
		elapsed = 0
	}
	k := m.decay(offer.PopularityFactor)
	return offer.InitialPrice * math.Exp(-k*elapsed)
}

// Quote returns the current price: decayed base, multiplicative jitter,
// clamped to the offer's floor. Always >= offer.MinPrice.
func (m *Model) Quote(offer *models.RoomOffer, now time.Time) float64 {
	price := m.BasePrice(offer, now)
	if m.jitter > 0 {
		m.mu.Lock()
		noise := (m.rng.Float64()*2 - 1) * m.jitter
		m.mu.Unlock()
		price *= 1 + noise
	}
	if price < offer.MinPrice {
		return offer.MinPrice
	}
	return price
}

// Round2 rounds a price to two decimal places for wire payloads and
// persisted values.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
