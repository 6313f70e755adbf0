// services/user_service.go
package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"hotel-booking-backend/models"

	mysql "github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenTTL = 24 * time.Hour

// UserService wraps registration, login and bearer-token lookup.
type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

func generateTokenHex(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

func (s *UserService) Register(email, password, role string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if role != models.RoleRegular && role != models.RoleBusiness {
		return models.User{}, ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:          email,
		HashedPassword: string(hash),
		Role:           role,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		if isDuplicateEntry(err) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, err
	}
	return user, nil
}

// Login verifies credentials and issues a fresh bearer token, replacing
// any previous one.
func (s *UserService) Login(email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrBadCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) != nil {
		return "", ErrBadCredentials
	}

	token, err := generateTokenHex(32)
	if err != nil {
		return "", err
	}
	expiry := time.Now().UTC().Add(tokenTTL)
	if err := s.DB.Model(&user).Updates(map[string]interface{}{
		"api_token":     token,
		"token_expires": expiry,
	}).Error; err != nil {
		return "", err
	}
	return token, nil
}

// GetByToken resolves a non-expired bearer token to its user.
func (s *UserService) GetByToken(token string) (models.User, error) {
	var user models.User
	now := time.Now().UTC()
	err := s.DB.
		Where("api_token = ? AND (token_expires IS NULL OR token_expires > ?)", token, now).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrBadCredentials
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) GetByID(id uint) (models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}
