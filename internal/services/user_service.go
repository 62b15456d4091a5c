package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"

	"gorm.io/gorm"

	apperrors "stockdex/internal/errors"
	"stockdex/internal/logger"
	"stockdex/internal/models"
	"stockdex/internal/pagination"
)

// tokenBytes is the entropy of a user token: 128 bits, hex-encoded to 32
// characters. The token is the user's only credential and is never rotated.
const tokenBytes = 16

// userService handles user provisioning and token authentication.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// CreateUser registers a new user under an exchange with a freshly
// generated token.
func (s *userService) CreateUser(exchangeID, name string) (*models.User, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "user name is required")
	}

	var count int64
	if err := s.db.Model(&models.Exchange{}).Where("id = ?", exchangeID).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	if count == 0 {
		return nil, apperrors.ErrExchangeNotFound
	}

	token, err := newToken()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		ExchangeID: exchangeID,
		Name:       name,
		Token:      token,
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return user, nil
}

// Authenticate resolves a token to its user. The lookup is global, not
// scoped to an exchange, because tokens are unique across all exchanges.
// An unknown token is a normal outcome, not an infrastructure failure.
func (s *userService) Authenticate(token string) (*models.User, error) {
	if token == "" {
		return nil, apperrors.ErrUserNotFound
	}

	var user models.User
	if err := s.db.Where("token = ?", token).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Named("auth").Debugw("unknown token presented")
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID.
func (s *userService) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return &user, nil
}

// ListUsers retrieves a paginated list of users in an exchange.
func (s *userService) ListUsers(exchangeID string, page pagination.PageRequest) (*pagination.PageResponse[models.User], error) {
	page.Defaults()

	base := s.db.Model(&models.User{}).Where("exchange_id = ?", exchangeID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	var users []models.User
	if err := base.Scopes(pagination.Paginate(page)).Order("created_at").Find(&users).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	result := pagination.NewPageResponse(users, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// newToken generates a 128-bit hex token.
func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
