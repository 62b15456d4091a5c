package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "stockdex/internal/errors"
	"stockdex/internal/models"
	"stockdex/internal/pagination"
)

// exchangeService handles exchange provisioning and lookup.
type exchangeService struct {
	db *gorm.DB
}

// NewExchangeService creates a new ExchangeServicer.
func NewExchangeService(db *gorm.DB) ExchangeServicer {
	return &exchangeService{db: db}
}

// CreateExchange creates a new tenant. Exchanges are immutable once created.
func (s *exchangeService) CreateExchange(name string) (*models.Exchange, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "exchange name is required")
	}

	exchange := &models.Exchange{Name: name}
	if err := s.db.Create(exchange).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return exchange, nil
}

// GetExchangeByID retrieves an exchange by ID.
func (s *exchangeService) GetExchangeByID(id string) (*models.Exchange, error) {
	var exchange models.Exchange
	if err := s.db.First(&exchange, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExchangeNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return &exchange, nil
}

// ListExchanges retrieves a paginated list of all exchanges.
func (s *exchangeService) ListExchanges(page pagination.PageRequest) (*pagination.PageResponse[models.Exchange], error) {
	page.Defaults()

	base := s.db.Model(&models.Exchange{})

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	var exchanges []models.Exchange
	if err := base.Scopes(pagination.Paginate(page)).Order("created_at").Find(&exchanges).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	result := pagination.NewPageResponse(exchanges, page.Page, page.PageSize, totalItems)
	return &result, nil
}
