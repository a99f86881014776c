//go:generate mockery --name VocabAttemptRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"sat_prep_keep/internal/model"

	"gorm.io/gorm"
)

type VocabAttemptRepository interface {
	Create(ctx context.Context, tx *gorm.DB, attempt *model.VocabAttempt) error
	FindLatestByCard(ctx context.Context, db *gorm.DB, userID, cardID uint) (*model.VocabAttempt, error)
	FindLatestPerCard(ctx context.Context, db *gorm.DB, userID uint) (map[uint]*model.VocabAttempt, error)
}

type gormVocabAttemptRepository struct{}

func NewGormVocabAttemptRepository() VocabAttemptRepository {
	return &gormVocabAttemptRepository{}
}

func (r *gormVocabAttemptRepository) Create(ctx context.Context, tx *gorm.DB, attempt *model.VocabAttempt) error {
	result := tx.WithContext(ctx).Create(attempt)
	if result.Error != nil {
		return fmt.Errorf("gormVocabAttemptRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormVocabAttemptRepository) FindLatestByCard(ctx context.Context, db *gorm.DB, userID, cardID uint) (*model.VocabAttempt, error) {
	var attempt model.VocabAttempt
	result := db.WithContext(ctx).
		Where("user_id = ? AND card_id = ?", userID, cardID).
		Order("attempted_at DESC").
		First(&attempt)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormVocabAttemptRepository.FindLatestByCard: %w", result.Error)
	}
	return &attempt, nil
}

// FindLatestPerCard はユーザーの全試行をカードごとに最新1件へ畳み込んで返します。
// 件数は高々カード数×試行数なので、集約はアプリ側で行います。
func (r *gormVocabAttemptRepository) FindLatestPerCard(ctx context.Context, db *gorm.DB, userID uint) (map[uint]*model.VocabAttempt, error) {
	var attempts []*model.VocabAttempt
	result := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("attempted_at ASC").
		Find(&attempts)
	if result.Error != nil {
		return nil, fmt.Errorf("gormVocabAttemptRepository.FindLatestPerCard: %w", result.Error)
	}

	latest := make(map[uint]*model.VocabAttempt, len(attempts))
	for _, a := range attempts {
		// attempted_at 昇順で上書きしていくので、最後に残るのが最新
		latest[a.CardID] = a
	}
	return latest, nil
}
