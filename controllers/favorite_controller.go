package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"hotel-booking-backend/services"

	"github.com/gin-gonic/gin"
)

type FavoriteController struct {
	FavoriteSvc *services.FavoriteService
}

func NewFavoriteController(svc *services.FavoriteService) *FavoriteController {
	return &FavoriteController{FavoriteSvc: svc}
}

func roomIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("room_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return 0, false
	}
	return uint(id), true
}

func (fc *FavoriteController) Add(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}

	if err := fc.FavoriteSvc.Add(user.ID, roomID); err != nil {
		switch {
		case errors.Is(err, services.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		case errors.Is(err, services.ErrDuplicate):
			c.JSON(http.StatusBadRequest, gin.H{"error": "room already in favorites"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add favorite"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"detail": "room added to favorites"})
}

func (fc *FavoriteController) Remove(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}

	if err := fc.FavoriteSvc.Remove(user.ID, roomID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "favorite not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove favorite"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (fc *FavoriteController) List(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	roomIDs, err := fc.FavoriteSvc.List(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list favorites"})
		return
	}
	c.JSON(http.StatusOK, roomIDs)
}
