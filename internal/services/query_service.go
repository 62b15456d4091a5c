package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "stockdex/internal/errors"
	"stockdex/internal/models"
	"stockdex/internal/pagination"
	"stockdex/internal/window"
)

// queryService serves the read side: window-scoped reports over the vote
// log and day-activity rollups. All queries are scoped to one exchange;
// the window's bounds are anchored at the current time.
type queryService struct {
	db *gorm.DB
}

// NewQueryService creates a new QueryServicer.
func NewQueryService(db *gorm.DB) QueryServicer {
	return &queryService{db: db}
}

// ListVotes retrieves votes in an exchange within the window, optionally
// for a single stock, newest first.
func (s *queryService) ListVotes(exchangeID string, stockID string, w window.Window, page pagination.PageRequest) (*pagination.PageResponse[models.Vote], error) {
	page.Defaults()

	base := s.db.Model(&models.Vote{}).Where("exchange_id = ?", exchangeID)
	if stockID != "" {
		base = base.Where("stock_id = ?", stockID)
	}
	base = scopeWindow(base, w, "date")

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	var votes []models.Vote
	if err := base.Scopes(pagination.Paginate(page)).Order("created_at DESC").Find(&votes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	result := pagination.NewPageResponse(votes, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// ListDayActivity retrieves day buckets in an exchange within the window,
// optionally for a single stock, newest day first.
func (s *queryService) ListDayActivity(exchangeID string, stockID string, w window.Window, page pagination.PageRequest) (*pagination.PageResponse[models.StockDayActivity], error) {
	page.Defaults()

	base := s.db.Model(&models.StockDayActivity{}).Where("exchange_id = ?", exchangeID)
	if stockID != "" {
		base = base.Where("stock_id = ?", stockID)
	}
	base = scopeWindow(base, w, "date")

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	var days []models.StockDayActivity
	if err := base.Scopes(pagination.Paginate(page)).Order("date DESC").Find(&days).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	result := pagination.NewPageResponse(days, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// scopeWindow applies the window's resolved bounds to the given date column.
func scopeWindow(q *gorm.DB, w window.Window, column string) *gorm.DB {
	from, to := w.Bounds(time.Now())
	if from != nil {
		q = q.Where(column+" >= ?", *from)
	}
	if to != nil {
		q = q.Where(column+" < ?", *to)
	}
	return q
}
