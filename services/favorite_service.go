package services

import (
	"errors"

	"hotel-booking-backend/models"

	"gorm.io/gorm"
)

type FavoriteService struct {
	DB *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{DB: db}
}

func (s *FavoriteService) Add(userID, roomID uint) error {
	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomNotFound
		}
		return err
	}

	fav := models.Favorite{UserID: userID, RoomID: roomID}
	if err := s.DB.Create(&fav).Error; err != nil {
		if isDuplicateEntry(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *FavoriteService) Remove(userID, roomID uint) error {
	res := s.DB.Where("user_id = ? AND room_id = ?", userID, roomID).Delete(&models.Favorite{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *FavoriteService) List(userID uint) ([]uint, error) {
	var favorites []models.Favorite
	if err := s.DB.Where("user_id = ?", userID).Find(&favorites).Error; err != nil {
		return nil, err
	}
	roomIDs := make([]uint, 0, len(favorites))
	for _, fav := range favorites {
		roomIDs = append(roomIDs, fav.RoomID)
	}
	return roomIDs, nil
}
