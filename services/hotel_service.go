// services/hotel_service.go
package services

import (
	"errors"
	"time"

	"hotel-booking-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// HotelService owns hotel/room/offer CRUD and the ownership checks
// around them. Only business users create hotels, and owners may only
// attach rooms and offers to their own properties.
type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

type CreateHotelInput struct {
	Name        string         `json:"name" binding:"required"`
	Address     string         `json:"address" binding:"required"`
	Description string         `json:"description"`
	Rating      *float64       `json:"rating"`
	Amenities   datatypes.JSON `json:"amenities"`
}

func (s *HotelService) CreateHotel(owner models.User, in CreateHotelInput) (models.Hotel, error) {
	if owner.Role != models.RoleBusiness {
		return models.Hotel{}, ErrForbidden
	}
	hotel := models.Hotel{
		Name:        in.Name,
		Address:     in.Address,
		Description: in.Description,
		Rating:      in.Rating,
		Amenities:   in.Amenities,
		OwnerID:     owner.ID,
	}
	if err := s.DB.Create(&hotel).Error; err != nil {
		return models.Hotel{}, err
	}
	return hotel, nil
}

func (s *HotelService) ListHotels() ([]models.Hotel, error) {
	var hotels []models.Hotel
	if err := s.DB.Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}

type CreateRoomInput struct {
	HotelID     uint   `json:"hotel_id" binding:"required"`
	RoomNumber  string `json:"roomNumber" binding:"required"`
	Description string `json:"description"`
}

func (s *HotelService) CreateRoom(owner models.User, in CreateRoomInput) (models.Room, error) {
	var hotel models.Hotel
	if err := s.DB.First(&hotel, in.HotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Room{}, ErrHotelNotFound
		}
		return models.Room{}, err
	}
	if hotel.OwnerID != owner.ID {
		return models.Room{}, ErrForbidden
	}

	room := models.Room{
		HotelID:     in.HotelID,
		RoomNumber:  in.RoomNumber,
		Description: in.Description,
	}
	if err := s.DB.Create(&room).Error; err != nil {
		return models.Room{}, err
	}
	return room, nil
}

type CreateOfferInput struct {
	RoomID       uint      `json:"room_id" binding:"required"`
	StartDate    time.Time `json:"start_date" binding:"required"`
	EndDate      time.Time `json:"end_date" binding:"required"`
	InitialPrice float64   `json:"initial_price" binding:"required"`
	MinPrice     float64   `json:"min_price" binding:"required"`
	Available    int       `json:"available" binding:"min=0"`
}

// CreateOffer validates the offer invariants (start < end,
// 0 < min <= initial, available >= 0) and anchors the decay curve: the
// current price starts at the initial price with a neutral popularity of 1.
func (s *HotelService) CreateOffer(owner models.User, in CreateOfferInput) (models.RoomOffer, error) {
	var room models.Room
	if err := s.DB.Preload("Hotel").First(&room, in.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RoomOffer{}, ErrRoomNotFound
		}
		return models.RoomOffer{}, err
	}
	if room.Hotel.OwnerID != owner.ID {
		return models.RoomOffer{}, ErrForbidden
	}

	if !in.StartDate.Before(in.EndDate) {
		return models.RoomOffer{}, ErrInvalidDates
	}
	if in.MinPrice <= 0 || in.MinPrice > in.InitialPrice {
		return models.RoomOffer{}, ErrInvalidPrice
	}
	if in.Available < 0 {
		return models.RoomOffer{}, ErrInvalidPrice
	}

	offer := models.RoomOffer{
		RoomID:           in.RoomID,
		StartDate:        in.StartDate,
		EndDate:          in.EndDate,
		InitialPrice:     in.InitialPrice,
		CurrentPrice:     in.InitialPrice,
		MinPrice:         in.MinPrice,
		PopularityFactor: 1.0,
		Available:        in.Available,
	}
	if err := s.DB.Create(&offer).Error; err != nil {
		return models.RoomOffer{}, err
	}
	return offer, nil
}

func (s *HotelService) ListOffers() ([]models.RoomOffer, error) {
	var offers []models.RoomOffer
	if err := s.DB.Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}
