package services

import (
	"errors"
	"time"

	"hotel-booking-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LockedOffer is handed to WithLock callbacks. The offer it exposes is
// held under an exclusive row lock until the enclosing transaction ends;
// SaveBooking writes into the same transaction so a booking row and the
// inventory decrement commit or roll back together.
type LockedOffer interface {
	Offer() *models.RoomOffer
	SaveBooking(b *models.Booking) error
}

// OfferStore is the persistence contract for offers. The gorm
// implementation below is the production one; tests substitute an
// in-memory store with the same serialization guarantee.
type OfferStore interface {
	Get(offerID uint) (models.RoomOffer, error)
	All() ([]models.RoomOffer, error)

	// WithLock runs fn with the offer exclusively locked, then persists
	// the (possibly mutated) offer and commits. Any error from fn rolls
	// the whole transaction back and is returned as-is; ErrUnchanged
	// commits without writing the offer row. Two concurrent WithLock
	// calls on the same offer serialize.
	WithLock(offerID uint, fn func(LockedOffer) error) error
}

// ViewStore persists the append-only view-event log.
type ViewStore interface {
	// Insert appends a view event; ErrOfferNotFound if the offer is absent.
	Insert(offerID uint, ts time.Time) error
	// CountSince counts views for the offer with timestamp >= since.
	CountSince(offerID uint, since time.Time) (int64, error)
}

// GormOfferStore backs OfferStore with MySQL row locks
// (SELECT ... FOR UPDATE inside a transaction).
type GormOfferStore struct {
	DB *gorm.DB
}

func NewGormOfferStore(db *gorm.DB) *GormOfferStore {
	return &GormOfferStore{DB: db}
}

func (s *GormOfferStore) Get(offerID uint) (models.RoomOffer, error) {
	var offer models.RoomOffer
	if err := s.DB.First(&offer, offerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return offer, ErrOfferNotFound
		}
		return offer, err
	}
	return offer, nil
}

func (s *GormOfferStore) All() ([]models.RoomOffer, error) {
	var offers []models.RoomOffer
	if err := s.DB.Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}

type gormLockedOffer struct {
	tx    *gorm.DB
	offer *models.RoomOffer
}

func (l *gormLockedOffer) Offer() *models.RoomOffer { return l.offer }

func (l *gormLockedOffer) SaveBooking(b *models.Booking) error {
	return l.tx.Create(b).Error
}

func (s *GormOfferStore) WithLock(offerID uint, fn func(LockedOffer) error) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var offer models.RoomOffer
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&offer, offerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOfferNotFound
			}
			return err
		}

		if err := fn(&gormLockedOffer{tx: tx, offer: &offer}); err != nil {
			if errors.Is(err, ErrUnchanged) {
				return nil
			}
			return err
		}

		return tx.Save(&offer).Error
	})
}

// GormViewStore backs ViewStore. Inserts are plain appends; the offer
// existence check keeps stray offer IDs out of the log.
type GormViewStore struct {
	DB *gorm.DB
}

func NewGormViewStore(db *gorm.DB) *GormViewStore {
	return &GormViewStore{DB: db}
}

func (s *GormViewStore) Insert(offerID uint, ts time.Time) error {
	var count int64
	if err := s.DB.Model(&models.RoomOffer{}).Where("id = ?", offerID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrOfferNotFound
	}
	return s.DB.Create(&models.OfferView{OfferID: offerID, Timestamp: ts}).Error
}

func (s *GormViewStore) CountSince(offerID uint, since time.Time) (int64, error) {
	var count int64
	err := s.DB.Model(&models.OfferView{}).
		Where("offer_id = ? AND timestamp >= ?", offerID, since).
		Count(&count).Error
	return count, err
}
