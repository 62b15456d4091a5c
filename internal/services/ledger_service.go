package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "stockdex/internal/errors"
	"stockdex/internal/events"
	"stockdex/internal/logger"
	"stockdex/internal/models"
	"stockdex/internal/window"
)

// ledgerService applies votes and imported activity as atomic state
// transitions. Every CastVote call produces three effects inside one store
// transaction: the vote log insert, the day-bucket upsert-increment, and the
// stock's lifetime increment. Numeric counters are bumped with add-delta SQL
// expressions, and the label and activity map merges run against rows read
// under a lock, so concurrent votes on the same stock never lose increments.
type ledgerService struct {
	db        *gorm.DB
	users     UserServicer
	publisher events.Publisher
}

// NewLedgerService creates a new LedgerServicer. The publisher receives a
// vote-created event after each committed vote.
func NewLedgerService(db *gorm.DB, users UserServicer, publisher events.Publisher) LedgerServicer {
	return &ledgerService{db: db, users: users, publisher: publisher}
}

// CastVote validates and applies a vote. Validation order matters: the
// stock is resolved first, then the direction, then the caller, so a bad
// token against a missing stock reports the missing stock. A token from a
// different exchange fails exactly like an unknown token.
func (s *ledgerService) CastVote(req VoteRequest) (*models.Vote, error) {
	var stock models.Stock
	if err := s.db.First(&stock, "id = ?", req.StockID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStockNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	direction, err := resolveDirection(req.Direction, req.Rating)
	if err != nil {
		return nil, err
	}
	rating := normalizeRating(req.Rating, direction)

	user, err := s.users.Authenticate(req.Token)
	if err != nil {
		return nil, err
	}
	if user.ExchangeID != stock.ExchangeID {
		return nil, apperrors.ErrUserNotFound
	}

	today := window.Midnight(time.Now())

	labels := req.Labels
	if labels == nil {
		labels = []string{}
	}
	vote := &models.Vote{
		StockID:    stock.ID,
		UserID:     user.ID,
		ExchangeID: stock.ExchangeID,
		Comment:    req.Comment,
		Rating:     rating,
		Labels:     datatypes.JSONSlice[string](labels),
		Date:       today,
	}
	if err := vote.Validate(); err != nil {
		return nil, err
	}

	inc := vote.Increment()
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(vote).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
		}
		if err := upsertDayBucket(tx, &stock, today, inc, nil); err != nil {
			return err
		}
		return applyStockIncrement(tx, stock.ID, inc, nil)
	})
	if err != nil {
		return nil, err
	}

	s.publisher.VoteCast(stock.ExchangeID, vote)
	logger.Named("ledger").Infow("vote applied",
		"stock_id", stock.ID,
		"user_id", user.ID,
		"rating", rating,
	)
	return vote, nil
}

// ApplyExternalActivity folds an imported activity delta into the stock's
// day bucket and lifetime record, under the gitlab namespace so it never
// collides with vote-derived counters. The engine does not deduplicate:
// submitting the same delta twice counts it twice.
func (s *ledgerService) ApplyExternalActivity(stockID string, delta models.ActivityDelta, day *time.Time) error {
	var stock models.Stock
	if err := s.db.First(&stock, "id = ?", stockID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrStockNotFound
		}
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	if len(delta) == 0 {
		return nil
	}

	bucketDay := window.Midnight(time.Now())
	if day != nil {
		bucketDay = window.Midnight(*day)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := upsertDayBucket(tx, &stock, bucketDay, models.Increment{}, delta); err != nil {
			return err
		}
		return applyStockIncrement(tx, stock.ID, models.Increment{}, delta)
	})
}

// upsertDayBucket applies one increment to the (stock, day) activity row,
// creating it on first touch. The row is read under a lock so the label and
// activity map merges never start from a state another committer is about
// to replace.
func upsertDayBucket(tx *gorm.DB, stock *models.Stock, day time.Time, inc models.Increment, activity models.ActivityDelta) error {
	var bucket models.StockDayActivity
	err := lockedRow(tx).Where("stock_id = ? AND date = ?", stock.ID, day).First(&bucket).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := seedDayBucket(tx, stock, day); err != nil {
			return err
		}
		err = lockedRow(tx).Where("stock_id = ? AND date = ?", stock.ID, day).First(&bucket).Error
	}
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	updates := incrementUpdates(inc, bucket.UpLabels, bucket.DownLabels, bucket.Gitlab, activity)
	if err := tx.Model(&bucket).Updates(updates).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return nil
}

// seedDayBucket inserts a zeroed (stock, day) row. Two first writers of the
// day can race here; the conflict target on (stock_id, date) lets the loser
// carry on against the winner's row instead of aborting its transaction.
func seedDayBucket(tx *gorm.DB, stock *models.Stock, day time.Time) error {
	seed := models.StockDayActivity{
		ExchangeID: stock.ExchangeID,
		StockID:    stock.ID,
		Date:       day,
		UpLabels:   models.LabelCounts{},
		DownLabels: models.LabelCounts{},
		Gitlab:     datatypes.JSONMap{},
	}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "stock_id"}, {Name: "date"}},
		DoNothing: true,
	}).Create(&seed).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return nil
}

// applyStockIncrement bumps the stock's lifetime counters. The stock is
// re-read under a lock inside the transaction so concurrent label merges
// serialize instead of overwriting each other.
func applyStockIncrement(tx *gorm.DB, stockID string, inc models.Increment, activity models.ActivityDelta) error {
	var current models.Stock
	if err := lockedRow(tx).First(&current, "id = ?", stockID).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	updates := incrementUpdates(inc, current.UpLabels, current.DownLabels, current.Gitlab, activity)
	if err := tx.Model(&current).Updates(updates).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return nil
}

// lockedRow scopes a read to the current transaction's row lock, where the
// store supports one.
func lockedRow(tx *gorm.DB) *gorm.DB {
	return tx.Clauses(lockClauses(tx.Dialector.Name())...)
}

// lockClauses returns the locking clauses for a dialect. SQLite has no
// FOR UPDATE syntax and serializes writers on its own, so it gets none.
func lockClauses(dialect string) []clause.Expression {
	if dialect == "postgres" {
		return []clause.Expression{clause.Locking{Strength: clause.LockingStrengthUpdate}}
	}
	return nil
}

// incrementUpdates builds the column assignments for one increment. Numeric
// counters use add-delta expressions; label and activity maps are merged in
// Go from the row state read within the transaction.
func incrementUpdates(inc models.Increment, upLabels, downLabels models.LabelCounts, gitlab datatypes.JSONMap, activity models.ActivityDelta) map[string]interface{} {
	updates := map[string]interface{}{}
	if inc.Ups != 0 || inc.Downs != 0 || inc.Rating != 0 {
		updates["ups"] = gorm.Expr("ups + ?", inc.Ups)
		updates["downs"] = gorm.Expr("downs + ?", inc.Downs)
		updates["rating"] = gorm.Expr("rating + ?", inc.Rating)
	}
	if len(inc.UpLabels) > 0 {
		updates["up_labels"] = upLabels.Add(inc.UpLabels)
	}
	if len(inc.DownLabels) > 0 {
		updates["down_labels"] = downLabels.Add(inc.DownLabels)
	}
	if len(activity) > 0 {
		updates["gitlab"] = models.MergeActivity(gitlab, activity)
	}
	return updates
}

// resolveDirection picks the vote direction from an explicit "up"/"down"
// token, falling back to the sign of the rating hint. Returns +1 or -1.
func resolveDirection(direction string, ratingHint int) (int, error) {
	switch strings.ToLower(direction) {
	case "up":
		return 1, nil
	case "down":
		return -1, nil
	case "":
		if ratingHint > 0 {
			return 1, nil
		}
		if ratingHint < 0 {
			return -1, nil
		}
		return 0, apperrors.ErrInvalidDirection
	default:
		return 0, apperrors.ErrInvalidDirection
	}
}

// normalizeRating is deterministic and total for any non-zero direction: an
// unset hint defaults to ±1, otherwise the magnitude is clamped to [1,5]
// and the sign coerced to the direction. Out-of-range hints are clamped,
// never rejected.
func normalizeRating(ratingHint, direction int) int {
	if ratingHint == 0 {
		return direction
	}
	magnitude := ratingHint
	if magnitude < 0 {
		magnitude = -magnitude
	}
	if magnitude > models.RatingMax {
		magnitude = models.RatingMax
	}
	return magnitude * direction
}
