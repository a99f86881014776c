// internal/model/vocabulary.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// 復習結果の取りうる値。"again" は失敗 (再出題)、"easy" は完了。
const (
	ResultAgain = "again"
	ResultEasy  = "easy"
)

// VocabularyCard は語彙カードのマスタデータを表します。
// 学習状態はカード自身には持たず、ユーザーごとの最新の試行から導出します。
type VocabularyCard struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Word       string    `gorm:"uniqueIndex;not null" json:"word"`
	Definition string    `gorm:"not null" json:"definition"`
	Example    *string   `json:"example,omitempty"`
	Difficulty string    `gorm:"not null" json:"difficulty"`
	Category   *string   `json:"category,omitempty"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

func (VocabularyCard) TableName() string {
	return "vocabulary_cards"
}

// VocabAttempt は語彙カードに対する1回の復習試行の記録です。
// 間隔反復のスケジューリング結果 (interval_days, next_review_date, failure_count)
// を試行時点のスナップショットとして保持します。
type VocabAttempt struct {
	AttemptID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID             uint       `gorm:"not null;index:idx_vocab_attempt_user_card"`
	CardID             uint       `gorm:"not null;index:idx_vocab_attempt_user_card"`
	Result             string     `gorm:"not null"` // "again" | "easy"
	TimeElapsedSeconds float64    `gorm:"not null"`
	AttemptedAt        time.Time  `gorm:"not null;index"`
	IntervalDays       int        `gorm:"not null;default:0"`
	NextReviewDate     *time.Time `gorm:"type:date"`
	FailureCount       int        `gorm:"not null;default:0"`

	// 関連 (Preload用)
	Card *VocabularyCard `gorm:"foreignKey:CardID;references:ID" json:"-"`
}

func (VocabAttempt) TableName() string {
	return "user_vocabulary_attempts"
}

// CardStatus はカードと最新試行を突き合わせたクライアント向けの状態表現です。
// is_due_for_review: 未完了 かつ (next_review_date が無い or 今日以前)。
type CardStatus struct {
	ID             uint    `json:"id"`
	Word           string  `json:"word"`
	Definition     string  `json:"definition"`
	Example        *string `json:"example"`
	Difficulty     string  `json:"difficulty"`
	Category       *string `json:"category"`
	Completed      bool    `json:"completed"`
	Reviewed       bool    `json:"reviewed"`
	NextReviewDate *string `json:"next_review_date"` // ISO日付文字列 (YYYY-MM-DD)
	FailureCount   int     `json:"failure_count"`
	IsDueForReview bool    `json:"is_due_for_review"`
}

// SubmitAttemptRequest は POST /vocabulary/submit-attempt のリクエストDTO
type SubmitAttemptRequest struct {
	CardID             uint    `json:"card_id" validate:"required"`
	Result             string  `json:"result" validate:"required,oneof=again easy"`
	TimeElapsedSeconds float64 `json:"time_elapsed_seconds" validate:"gte=0"`
}

// SubmitAttemptResponse は提出結果。next_review_date は完了時 null。
type SubmitAttemptResponse struct {
	Status         string  `json:"status"`
	Message        string  `json:"message"`
	NextReviewDate *string `json:"next_review_date"`
	FailureCount   int     `json:"failure_count"`
	IntervalDays   int     `json:"interval_days"`
}

// VocabularyStats は語彙学習の統計
type VocabularyStats struct {
	TotalCards           int     `json:"total_cards"`
	CompletedCards       int     `json:"completed_cards"`
	DueToday             int     `json:"due_today"`
	CompletionPercentage float64 `json:"completion_percentage"`
}
