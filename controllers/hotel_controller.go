// controllers/hotel_controller.go
package controllers

import (
	"errors"
	"net/http"

	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"

	"github.com/gin-gonic/gin"
)

type HotelController struct {
	HotelSvc *services.HotelService
}

func NewHotelController(svc *services.HotelService) *HotelController {
	return &HotelController{HotelSvc: svc}
}

func (hc *HotelController) CreateHotel(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var in services.CreateHotelInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	hotel, err := hc.HotelSvc.CreateHotel(*user, in)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "only business users can create hotels"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create hotel"})
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}

func (hc *HotelController) ListHotels(c *gin.Context) {
	hotels, err := hc.HotelSvc.ListHotels()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list hotels"})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotels)
}

func (hc *HotelController) CreateRoom(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var in services.CreateRoomInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	room, err := hc.HotelSvc.CreateRoom(*user, in)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrHotelNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "you can only add rooms to your own hotels"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create room"})
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (hc *HotelController) CreateOffer(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var in services.CreateOfferInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	offer, err := hc.HotelSvc.CreateOffer(*user, in)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "you can only add offers to your own rooms"})
		case errors.Is(err, services.ErrInvalidDates), errors.Is(err, services.ErrInvalidPrice):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create offer"})
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, offer)
}

func (hc *HotelController) ListOffers(c *gin.Context) {
	offers, err := hc.HotelSvc.ListOffers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list offers"})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, offers)
}
