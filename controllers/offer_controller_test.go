package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel-booking-backend/models"
	"hotel-booking-backend/services"

	"github.com/gin-gonic/gin"
)

type stubBooker struct {
	receipt services.BookingReceipt
	err     error

	gotOffer  uint
	gotUser   uint
	gotQuoted *float64
}

func (b *stubBooker) Book(offerID, userID uint, quoted *float64) (services.BookingReceipt, error) {
	b.gotOffer, b.gotUser, b.gotQuoted = offerID, userID, quoted
	return b.receipt, b.err
}

func bookingRouter(b *stubBooker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	oc := NewOfferController(b, nil, nil)

	r := gin.New()
	r.POST("/api/hotels/rooms/offers/:id/book", func(c *gin.Context) {
		c.Set("currentUser", models.User{ID: 7, Role: models.RoleRegular})
	}, oc.Book)
	return r
}

func TestBookEndpointStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"success", nil, http.StatusOK},
		{"not found", services.ErrOfferNotFound, http.StatusNotFound},
		{"unavailable", services.ErrUnavailable, http.StatusBadRequest},
		{"price mismatch", services.ErrPriceMismatch, http.StatusBadRequest},
		{"internal", errors.New("tx deadlock"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			booker := &stubBooker{
				receipt: services.BookingReceipt{OfferID: 3, UserID: 7, BookedPrice: 99.5, Reference: "ref-1"},
				err:     tc.err,
			}
			r := bookingRouter(booker)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/hotels/rooms/offers/3/book", nil)
			r.ServeHTTP(w, req)

			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d (body: %s)", w.Code, tc.wantStatus, w.Body.String())
			}
			if tc.err != nil && tc.wantStatus == http.StatusInternalServerError {
				// Internal detail must stay opaque to the client.
				if strings.Contains(w.Body.String(), "deadlock") {
					t.Errorf("internal error detail leaked: %s", w.Body.String())
				}
			}
		})
	}
}

func TestBookEndpointPassesQuotedPrice(t *testing.T) {
	booker := &stubBooker{receipt: services.BookingReceipt{OfferID: 3, UserID: 7, BookedPrice: 100.5}}
	r := bookingRouter(booker)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/hotels/rooms/offers/3/book",
		strings.NewReader(`{"quoted_price": 100.5}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if booker.gotOffer != 3 || booker.gotUser != 7 {
		t.Errorf("booker called with offer=%d user=%d", booker.gotOffer, booker.gotUser)
	}
	if booker.gotQuoted == nil || *booker.gotQuoted != 100.5 {
		t.Errorf("quoted price not forwarded: %v", booker.gotQuoted)
	}

	var receipt services.BookingReceipt
	if err := json.Unmarshal(w.Body.Bytes(), &receipt); err != nil {
		t.Fatalf("response is not a receipt: %v", err)
	}
	if receipt.BookedPrice != 100.5 {
		t.Errorf("booked_price = %v, want 100.5", receipt.BookedPrice)
	}
}

func TestBookEndpointOmittedQuoteIsNil(t *testing.T) {
	booker := &stubBooker{receipt: services.BookingReceipt{OfferID: 3, UserID: 7, BookedPrice: 88}}
	r := bookingRouter(booker)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/hotels/rooms/offers/3/book", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if booker.gotQuoted != nil {
		t.Errorf("quoted = %v, want nil when body omitted", *booker.gotQuoted)
	}
}

func TestBookEndpointInvalidID(t *testing.T) {
	r := bookingRouter(&stubBooker{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/hotels/rooms/offers/abc/book", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for non-numeric id", w.Code)
	}
}
