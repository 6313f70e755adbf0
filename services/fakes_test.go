package services

import (
	"errors"
	"sync"
	"time"

	"hotel-booking-backend/models"
)

var errStoreDown = errors.New("store failure")

// memoryOfferStore implements OfferStore with a mutex providing the same
// single-writer-per-offer guarantee the MySQL row lock gives in
// production. Mutations inside WithLock are applied to a copy and only
// committed when the callback succeeds, mirroring transaction rollback.
type memoryOfferStore struct {
	mu       sync.Mutex
	offers   map[uint]*models.RoomOffer
	bookings []models.Booking
	saves    int
	failIDs  map[uint]bool
}

func newMemoryOfferStore(offers ...*models.RoomOffer) *memoryOfferStore {
	s := &memoryOfferStore{
		offers:  make(map[uint]*models.RoomOffer),
		failIDs: make(map[uint]bool),
	}
	for _, o := range offers {
		s.offers[o.ID] = o
	}
	return s
}

func (s *memoryOfferStore) Get(offerID uint) (models.RoomOffer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	offer, ok := s.offers[offerID]
	if !ok {
		return models.RoomOffer{}, ErrOfferNotFound
	}
	return *offer, nil
}

func (s *memoryOfferStore) All() ([]models.RoomOffer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.RoomOffer, 0, len(s.offers))
	for _, o := range s.offers {
		out = append(out, *o)
	}
	return out, nil
}

type memoryLockedOffer struct {
	offer  *models.RoomOffer
	staged []models.Booking
}

func (l *memoryLockedOffer) Offer() *models.RoomOffer { return l.offer }

func (l *memoryLockedOffer) SaveBooking(b *models.Booking) error {
	l.staged = append(l.staged, *b)
	return nil
}

func (s *memoryOfferStore) WithLock(offerID uint, fn func(LockedOffer) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failIDs[offerID] {
		return errStoreDown
	}
	offer, ok := s.offers[offerID]
	if !ok {
		return ErrOfferNotFound
	}

	working := *offer
	lo := &memoryLockedOffer{offer: &working}
	err := fn(lo)
	if errors.Is(err, ErrUnchanged) {
		return nil
	}
	if err != nil {
		return err
	}

	*offer = working
	s.bookings = append(s.bookings, lo.staged...)
	s.saves++
	return nil
}

// memoryViewStore implements ViewStore against the offer set of a
// memoryOfferStore.
type memoryViewStore struct {
	offers *memoryOfferStore

	mu    sync.Mutex
	views map[uint][]time.Time
}

func newMemoryViewStore(offers *memoryOfferStore) *memoryViewStore {
	return &memoryViewStore{offers: offers, views: make(map[uint][]time.Time)}
}

func (s *memoryViewStore) Insert(offerID uint, ts time.Time) error {
	if _, err := s.offers.Get(offerID); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views[offerID] = append(s.views[offerID], ts)
	return nil
}

func (s *memoryViewStore) CountSince(offerID uint, since time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, ts := range s.views[offerID] {
		if !ts.Before(since) {
			count++
		}
	}
	return count, nil
}
