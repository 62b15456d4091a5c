package services

import (
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	apperrors "stockdex/internal/errors"
	"stockdex/internal/models"
	"stockdex/internal/pagination"
)

// labelService handles the global vote label taxonomy.
type labelService struct {
	db *gorm.DB
}

// NewLabelService creates a new LabelServicer.
func NewLabelService(db *gorm.DB) LabelServicer {
	return &labelService{db: db}
}

// CreateVoteLabel creates a taxonomy entry with a symbol derived from the
// name. Symbols key the per-stock label tallies, so they must be unique.
func (s *labelService) CreateVoteLabel(name string) (*models.VoteLabel, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "label name is required")
	}

	symbol := slug.Make(name)

	var count int64
	if err := s.db.Model(&models.VoteLabel{}).Where("symbol = ?", symbol).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateLabel
	}

	label := &models.VoteLabel{Name: name, Symbol: symbol}
	if err := s.db.Create(label).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return label, nil
}

// ListVoteLabels retrieves a paginated list of all vote labels.
func (s *labelService) ListVoteLabels(page pagination.PageRequest) (*pagination.PageResponse[models.VoteLabel], error) {
	page.Defaults()

	base := s.db.Model(&models.VoteLabel{})

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	var labels []models.VoteLabel
	if err := base.Scopes(pagination.Paginate(page)).Order("symbol").Find(&labels).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	result := pagination.NewPageResponse(labels, page.Page, page.PageSize, totalItems)
	return &result, nil
}
