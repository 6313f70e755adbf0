// controllers/offer_controller.go
package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"hotel-booking-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Booker is the slice of BookingService the controller consumes; keeping
// it narrow lets the status mapping be exercised without a database.
type Booker interface {
	Book(offerID, userID uint, quoted *float64) (services.BookingReceipt, error)
}

type BookPayload struct {
	QuotedPrice *float64 `json:"quoted_price"`
}

type OfferController struct {
	Booking Booker
	Tracker *services.PopularityService
	Stream  *services.QuoteStream

	upgrader websocket.Upgrader
}

func NewOfferController(booking Booker, tracker *services.PopularityService, stream *services.QuoteStream) *OfferController {
	return &OfferController{
		Booking: booking,
		Tracker: tracker,
		Stream:  stream,
		upgrader: websocket.Upgrader{
			// CORS is enforced at the router; the ws handshake accepts any origin.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func offerIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offer id"})
		return 0, false
	}
	return uint(id), true
}

// Book handles POST /rooms/offers/:id/book. The quoted price is optional:
// when absent the server books at whatever price is authoritative inside
// the transaction.
func (oc *OfferController) Book(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	offerID, ok := offerIDParam(c)
	if !ok {
		return
	}

	var payload BookPayload
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
	}

	receipt, err := oc.Booking.Book(offerID, user.ID, payload.QuotedPrice)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOfferNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "offer not found"})
		case errors.Is(err, services.ErrUnavailable):
			c.JSON(http.StatusBadRequest, gin.H{"error": "offer is no longer available"})
		case errors.Is(err, services.ErrPriceMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": "quoted price is stale"})
		default:
			log.Printf("booking offer %d failed: %v", offerID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "booking failed"})
		}
		return
	}

	c.JSON(http.StatusOK, receipt)
}

// RecordView handles POST /rooms/offers/:id/view.
func (oc *OfferController) RecordView(c *gin.Context) {
	offerID, ok := offerIDParam(c)
	if !ok {
		return
	}

	if err := oc.Tracker.RecordView(offerID); err != nil {
		if errors.Is(err, services.ErrOfferNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "offer not found"})
		} else {
			log.Printf("recording view for offer %d failed: %v", offerID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record view"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "view recorded", "offer_id": offerID})
}

// StreamQuotes handles GET /ws/rooms/offers/:id, upgrading to a websocket
// that pushes recomputed prices until the client disconnects.
func (oc *OfferController) StreamQuotes(c *gin.Context) {
	offerID, ok := offerIDParam(c)
	if !ok {
		return
	}

	conn, err := oc.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// Read pump: the client never sends data frames, but reading is how
	// we notice the disconnect.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := oc.Stream.Run(ctx, conn, offerID); err != nil {
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, err.Error())
		_ = conn.WriteMessage(websocket.CloseMessage, msg)
	}
}
