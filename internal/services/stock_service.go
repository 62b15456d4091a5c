package services

import (
	"errors"

	"github.com/gosimple/slug"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	apperrors "stockdex/internal/errors"
	"stockdex/internal/models"
	"stockdex/internal/pagination"
)

// stockService handles stock provisioning and lookup.
type stockService struct {
	db *gorm.DB
}

// NewStockService creates a new StockServicer.
func NewStockService(db *gorm.DB) StockServicer {
	return &stockService{db: db}
}

// CreateStock creates a stock under an exchange with all counters at zero.
// When symbol is empty it is derived from the name; derivation is
// deterministic, so the same name always yields the same symbol.
func (s *stockService) CreateStock(exchangeID, name, symbol string) (*models.Stock, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "stock name is required")
	}

	var count int64
	if err := s.db.Model(&models.Exchange{}).Where("id = ?", exchangeID).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	if count == 0 {
		return nil, apperrors.ErrExchangeNotFound
	}

	if symbol == "" {
		symbol = name
	}

	stock := &models.Stock{
		ExchangeID: exchangeID,
		Name:       name,
		Symbol:     slug.Make(symbol),
		UpLabels:   models.LabelCounts{},
		DownLabels: models.LabelCounts{},
		Gitlab:     datatypes.JSONMap{},
	}
	if err := s.db.Create(stock).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return stock, nil
}

// GetStockByID retrieves a stock by ID.
func (s *stockService) GetStockByID(id string) (*models.Stock, error) {
	var stock models.Stock
	if err := s.db.First(&stock, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStockNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return &stock, nil
}

// ListStocks retrieves a paginated list of stocks, optionally scoped to one
// exchange.
func (s *stockService) ListStocks(exchangeID string, page pagination.PageRequest) (*pagination.PageResponse[models.Stock], error) {
	page.Defaults()

	base := s.db.Model(&models.Stock{})
	if exchangeID != "" {
		base = base.Where("exchange_id = ?", exchangeID)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	var stocks []models.Stock
	if err := base.Scopes(pagination.Paginate(page)).Order("symbol").Find(&stocks).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	result := pagination.NewPageResponse(stocks, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// AllStocks returns every stock across all exchanges. Used by the activity
// importer, which walks the full universe on each run.
func (s *stockService) AllStocks() ([]models.Stock, error) {
	var stocks []models.Stock
	if err := s.db.Order("symbol").Find(&stocks).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return stocks, nil
}
