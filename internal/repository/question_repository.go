//go:generate mockery --name QuestionRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"sat_prep_keep/internal/middleware"
	"sat_prep_keep/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(ctx context.Context, db *gorm.DB, question *model.Question) error
	Find(ctx context.Context, db *gorm.DB, filters model.FilterOptions) ([]*model.Question, error)
	FindRandom(ctx context.Context, db *gorm.DB, filters model.FilterOptions) (*model.Question, error)
	FindByQuestionID(ctx context.Context, db *gorm.DB, questionID string) (*model.Question, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}

type gormQuestionRepository struct{}

func NewGormQuestionRepository() QuestionRepository {
	return &gormQuestionRepository{}
}

// applyFilters はフィルタのAND条件をクエリに適用します。
// センチネル "Any" / 空文字の次元は制約を付けません。
func applyFilters(db *gorm.DB, filters model.FilterOptions) *gorm.DB {
	if d := filters.ConcreteDomain(); d != "" {
		db = db.Where("domain = ?", d)
	}
	if s := filters.ConcreteSkill(); s != "" {
		db = db.Where("skill = ?", s)
	}
	if d := filters.ConcreteDifficulty(); d != "" {
		db = db.Where("difficulty = ?", d)
	}
	return db
}

func (r *gormQuestionRepository) Create(ctx context.Context, db *gorm.DB, question *model.Question) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Create(question)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			logger.Warn("Duplicate key error on create question",
				"error", result.Error,
				"question_id", question.QuestionID,
			)
			return model.ErrConflict
		}
		logger.Error("Error creating question in DB", "error", result.Error)
		return fmt.Errorf("gormQuestionRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormQuestionRepository) Find(ctx context.Context, db *gorm.DB, filters model.FilterOptions) ([]*model.Question, error) {
	var questions []*model.Question
	query := applyFilters(db.WithContext(ctx).Model(&model.Question{}), filters)
	result := query.Order("id ASC").Find(&questions)
	if result.Error != nil {
		return nil, fmt.Errorf("gormQuestionRepository.Find: %w", result.Error)
	}
	return questions, nil
}

func (r *gormQuestionRepository) FindRandom(ctx context.Context, db *gorm.DB, filters model.FilterOptions) (*model.Question, error) {
	var question model.Question
	// RANDOM() はPostgres/SQLite共通で使える
	query := applyFilters(db.WithContext(ctx).Model(&model.Question{}), filters)
	result := query.Order("RANDOM()").First(&question)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormQuestionRepository.FindRandom: %w", result.Error)
	}
	return &question, nil
}

func (r *gormQuestionRepository) FindByQuestionID(ctx context.Context, db *gorm.DB, questionID string) (*model.Question, error) {
	var question model.Question
	result := db.WithContext(ctx).Where("question_id = ?", questionID).First(&question)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormQuestionRepository.FindByQuestionID: %w", result.Error)
	}
	return &question, nil
}

func (r *gormQuestionRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.Question{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("gormQuestionRepository.Count: %w", result.Error)
	}
	return count, nil
}
