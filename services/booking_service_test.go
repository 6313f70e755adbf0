package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"hotel-booking-backend/models"
	"hotel-booking-backend/pricing"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// noJitterModel quotes deterministically so tests can pin exact prices.
func noJitterModel() *pricing.Model {
	return pricing.NewModel(pricing.ScaledDecay, 0, nil)
}

func testOffer(id uint, available int) *models.RoomOffer {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &models.RoomOffer{
		ID:               id,
		RoomID:           1,
		InitialPrice:     100,
		CurrentPrice:     100,
		MinPrice:         50,
		PopularityFactor: 1.0,
		Available:        available,
		CreatedAt:        now,
	}
}

func newTestBookingService(store *memoryOfferStore) *BookingService {
	svc := NewBookingService(store, noJitterModel())
	// Freeze time at the offer's creation so the quote equals the
	// initial price exactly.
	svc.now = fixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return svc
}

func TestBookSuccess(t *testing.T) {
	store := newMemoryOfferStore(testOffer(1, 3))
	svc := newTestBookingService(store)

	receipt, err := svc.Book(1, 42, nil)
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}
	if receipt.OfferID != 1 || receipt.UserID != 42 {
		t.Errorf("unexpected receipt identity: %+v", receipt)
	}
	if receipt.BookedPrice != 100 {
		t.Errorf("booked price = %v, want 100", receipt.BookedPrice)
	}
	if receipt.Reference == "" {
		t.Error("receipt has empty reference code")
	}

	offer, _ := store.Get(1)
	if offer.Available != 2 {
		t.Errorf("available = %d after booking, want 2", offer.Available)
	}
	if len(store.bookings) != 1 {
		t.Fatalf("persisted %d bookings, want 1", len(store.bookings))
	}
	if store.bookings[0].Price != 100 || store.bookings[0].UserID != 42 {
		t.Errorf("unexpected booking row: %+v", store.bookings[0])
	}
}

func TestBookOfferNotFound(t *testing.T) {
	svc := newTestBookingService(newMemoryOfferStore())
	if _, err := svc.Book(99, 42, nil); !errors.Is(err, ErrOfferNotFound) {
		t.Fatalf("err = %v, want ErrOfferNotFound", err)
	}
}

func TestBookUnavailable(t *testing.T) {
	store := newMemoryOfferStore(testOffer(1, 0))
	svc := newTestBookingService(store)

	if _, err := svc.Book(1, 42, nil); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
	offer, _ := store.Get(1)
	if offer.Available != 0 {
		t.Errorf("available changed on failed booking: %d", offer.Available)
	}
}

func TestBookQuotedPriceVerification(t *testing.T) {
	// Authoritative price is exactly 100 (no jitter, zero elapsed time).
	cases := []struct {
		name    string
		quoted  float64
		wantErr error
	}{
		{"within tolerance", 100.5, nil},
		{"exact", 100.0, nil},
		{"stale high", 110.0, ErrPriceMismatch},
		{"stale low", 90.0, ErrPriceMismatch},
		{"boundary", 101.0, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newMemoryOfferStore(testOffer(1, 5))
			svc := newTestBookingService(store)

			_, err := svc.Book(1, 42, &tc.quoted)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("Book(%v) returned %v, want success", tc.quoted, err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Book(%v) returned %v, want %v", tc.quoted, err, tc.wantErr)
			}
			offer, _ := store.Get(1)
			if offer.Available != 5 {
				t.Errorf("rejected booking mutated inventory: %d", offer.Available)
			}
			if len(store.bookings) != 0 {
				t.Errorf("rejected booking persisted a row")
			}
		})
	}
}

func TestConcurrentBookingLastUnit(t *testing.T) {
	store := newMemoryOfferStore(testOffer(1, 1))
	svc := newTestBookingService(store)

	const attempts = 20
	var wg sync.WaitGroup
	errs := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(user uint) {
			defer wg.Done()
			_, err := svc.Book(1, user, nil)
			errs <- err
		}(uint(i + 1))
	}
	wg.Wait()
	close(errs)

	var succeeded, unavailable int
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrUnavailable):
			unavailable++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}

	if succeeded != 1 {
		t.Errorf("%d bookings succeeded, want exactly 1", succeeded)
	}
	if unavailable != attempts-1 {
		t.Errorf("%d attempts got ErrUnavailable, want %d", unavailable, attempts-1)
	}

	offer, _ := store.Get(1)
	if offer.Available != 0 {
		t.Errorf("available = %d after draining, want 0", offer.Available)
	}
	if len(store.bookings) != 1 {
		t.Errorf("persisted %d bookings, want 1", len(store.bookings))
	}
}

func TestBookStoreFailureIsOpaque(t *testing.T) {
	store := newMemoryOfferStore(testOffer(1, 1))
	store.failIDs[1] = true
	svc := newTestBookingService(store)

	_, err := svc.Book(1, 42, nil)
	if err == nil {
		t.Fatal("expected error from failing store")
	}
	for _, domain := range []error{ErrOfferNotFound, ErrUnavailable, ErrPriceMismatch} {
		if errors.Is(err, domain) {
			t.Errorf("store failure surfaced as domain error %v", domain)
		}
	}
}
