//go:generate mockery --name QuestionAttemptRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"
	"time"

	"sat_prep_keep/internal/model"

	"gorm.io/gorm"
)

// AggregateRow は難易度別・ドメイン別集計の1行
type AggregateRow struct {
	Key       string
	Attempted int64
	Correct   int64
}

type QuestionAttemptRepository interface {
	Create(ctx context.Context, tx *gorm.DB, attempt *model.QuestionAttempt) error
	DeleteByUserAndQuestion(ctx context.Context, tx *gorm.DB, userID uint, questionID string) error
	CountByUser(ctx context.Context, db *gorm.DB, userID uint) (int64, error)
	CountCorrectByUser(ctx context.Context, db *gorm.DB, userID uint) (int64, error)
	AggregateByDifficulty(ctx context.Context, db *gorm.DB, userID uint) ([]AggregateRow, error)
	AggregateByDomain(ctx context.Context, db *gorm.DB, userID uint) ([]AggregateRow, error)
	FindRecentByUser(ctx context.Context, db *gorm.DB, userID uint, limit int) ([]*model.RecentAttempt, error)
}

type gormQuestionAttemptRepository struct{}

func NewGormQuestionAttemptRepository() QuestionAttemptRepository {
	return &gormQuestionAttemptRepository{}
}

func (r *gormQuestionAttemptRepository) Create(ctx context.Context, tx *gorm.DB, attempt *model.QuestionAttempt) error {
	result := tx.WithContext(ctx).Create(attempt)
	if result.Error != nil {
		return fmt.Errorf("gormQuestionAttemptRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormQuestionAttemptRepository) DeleteByUserAndQuestion(ctx context.Context, tx *gorm.DB, userID uint, questionID string) error {
	// 再解答時は古い記録を物理削除して置き換える (最新の解答のみ保持)
	result := tx.WithContext(ctx).
		Where("user_id = ? AND question_id = ?", userID, questionID).
		Delete(&model.QuestionAttempt{})
	if result.Error != nil {
		return fmt.Errorf("gormQuestionAttemptRepository.DeleteByUserAndQuestion: %w", result.Error)
	}
	return nil
}

func (r *gormQuestionAttemptRepository) CountByUser(ctx context.Context, db *gorm.DB, userID uint) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.QuestionAttempt{}).Where("user_id = ?", userID).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("gormQuestionAttemptRepository.CountByUser: %w", result.Error)
	}
	return count, nil
}

func (r *gormQuestionAttemptRepository) CountCorrectByUser(ctx context.Context, db *gorm.DB, userID uint) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.QuestionAttempt{}).
		Where("user_id = ? AND is_correct = ?", userID, true).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("gormQuestionAttemptRepository.CountCorrectByUser: %w", result.Error)
	}
	return count, nil
}

func (r *gormQuestionAttemptRepository) AggregateByDifficulty(ctx context.Context, db *gorm.DB, userID uint) ([]AggregateRow, error) {
	return r.aggregateBy(ctx, db, userID, "questions.difficulty")
}

func (r *gormQuestionAttemptRepository) AggregateByDomain(ctx context.Context, db *gorm.DB, userID uint) ([]AggregateRow, error) {
	return r.aggregateBy(ctx, db, userID, "questions.domain")
}

func (r *gormQuestionAttemptRepository) aggregateBy(ctx context.Context, db *gorm.DB, userID uint, column string) ([]AggregateRow, error) {
	var rows []AggregateRow
	result := db.WithContext(ctx).Model(&model.QuestionAttempt{}).
		Select(column+" AS key, COUNT(user_question_attempts.attempt_id) AS attempted, SUM(CASE WHEN user_question_attempts.is_correct THEN 1 ELSE 0 END) AS correct").
		Joins("JOIN questions ON questions.question_id = user_question_attempts.question_id").
		Where("user_question_attempts.user_id = ?", userID).
		Group(column).
		Scan(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("gormQuestionAttemptRepository.aggregateBy(%s): %w", column, result.Error)
	}
	return rows, nil
}

func (r *gormQuestionAttemptRepository) FindRecentByUser(ctx context.Context, db *gorm.DB, userID uint, limit int) ([]*model.RecentAttempt, error) {
	type recentRow struct {
		QuestionID         string
		SelectedChoice     string
		IsCorrect          bool
		TimeElapsedSeconds float64
		AttemptedAt        time.Time
		QuestionText       *string
		Difficulty         *string
		Domain             *string
	}

	var raw []recentRow
	result := db.WithContext(ctx).Model(&model.QuestionAttempt{}).
		Select("user_question_attempts.question_id, user_question_attempts.selected_choice, user_question_attempts.is_correct, "+
			"user_question_attempts.time_elapsed_seconds, user_question_attempts.attempted_at, "+
			"questions.question AS question_text, questions.difficulty, questions.domain").
		Joins("LEFT JOIN questions ON questions.question_id = user_question_attempts.question_id").
		Where("user_question_attempts.user_id = ?", userID).
		Order("user_question_attempts.attempted_at DESC").
		Limit(limit).
		Scan(&raw)
	if result.Error != nil {
		return nil, fmt.Errorf("gormQuestionAttemptRepository.FindRecentByUser: %w", result.Error)
	}

	attempts := make([]*model.RecentAttempt, 0, len(raw))
	for _, row := range raw {
		attempts = append(attempts, &model.RecentAttempt{
			QuestionID:     row.QuestionID,
			SelectedChoice: row.SelectedChoice,
			IsCorrect:      row.IsCorrect,
			TimeElapsed:    row.TimeElapsedSeconds,
			AttemptedAt:    row.AttemptedAt.Format(time.RFC3339),
			QuestionText:   row.QuestionText,
			Difficulty:     row.Difficulty,
			Domain:         row.Domain,
		})
	}
	return attempts, nil
}
