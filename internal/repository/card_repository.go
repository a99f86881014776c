//go:generate mockery --name CardRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"sat_prep_keep/internal/model"

	"gorm.io/gorm"
)

type CardRepository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.VocabularyCard, error)
	FindByID(ctx context.Context, db *gorm.DB, cardID uint) (*model.VocabularyCard, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}

type gormCardRepository struct{}

func NewGormCardRepository() CardRepository {
	return &gormCardRepository{}
}

func (r *gormCardRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.VocabularyCard, error) {
	var cards []*model.VocabularyCard
	// 一覧は常に単語のアルファベット順
	result := db.WithContext(ctx).Order("word ASC").Find(&cards)
	if result.Error != nil {
		return nil, fmt.Errorf("gormCardRepository.FindAll: %w", result.Error)
	}
	return cards, nil
}

func (r *gormCardRepository) FindByID(ctx context.Context, db *gorm.DB, cardID uint) (*model.VocabularyCard, error) {
	var card model.VocabularyCard
	result := db.WithContext(ctx).First(&card, cardID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormCardRepository.FindByID: %w", result.Error)
	}
	return &card, nil
}

func (r *gormCardRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.VocabularyCard{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("gormCardRepository.Count: %w", result.Error)
	}
	return count, nil
}
