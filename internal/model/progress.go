// internal/model/progress.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// QuestionAttempt は設問への解答記録です。
// 同一ユーザー・同一設問の再解答は古い記録を置き換えます (最新のみ保持)。
type QuestionAttempt struct {
	AttemptID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID             uint      `gorm:"not null;index:idx_question_attempt_user_question"`
	QuestionID         string    `gorm:"not null;index:idx_question_attempt_user_question"` // Question.QuestionID (外部ID)
	SelectedChoice     string    `gorm:"not null"`
	IsCorrect          bool      `gorm:"not null"`
	TimeElapsedSeconds float64   `gorm:"not null"`
	AttemptedAt        time.Time `gorm:"not null;index"`
}

func (QuestionAttempt) TableName() string {
	return "user_question_attempts"
}

// SubmitAnswerRequest は POST /api/user-progress/submit-answer のリクエストDTO
type SubmitAnswerRequest struct {
	QuestionID         string  `json:"question_id" validate:"required"`
	SelectedChoice     string  `json:"selected_choice" validate:"required,oneof=A B C D"`
	IsCorrect          *bool   `json:"is_correct" validate:"required"`
	TimeElapsedSeconds float64 `json:"time_elapsed_seconds" validate:"gte=0"`
}

type SubmitAnswerResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DifficultyBreakdown は難易度別の正解数
type DifficultyBreakdown struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

// DomainStats はドメイン別の成績
type DomainStats struct {
	Domain    string  `json:"domain"`
	Attempted int     `json:"attempted"`
	Correct   int     `json:"correct"`
	Accuracy  float64 `json:"accuracy"`
}

// UserStats は進捗ダッシュボード用の統計。
// フィールド名は元のAPI互換のため camelCase です。
type UserStats struct {
	QuestionsAnswered   int                 `json:"questionsAnswered"`
	TotalQuestions      int                 `json:"totalQuestions"`
	CompletionRate      float64             `json:"completionRate"`
	Accuracy            float64             `json:"accuracy"`
	StreakDays          int                 `json:"streakDays"`
	DifficultyBreakdown DifficultyBreakdown `json:"difficultyBreakdown"`
	DomainPerformance   []DomainStats       `json:"domainPerformance"`
}

// RecentAttempt は直近の解答履歴 (設問情報をJOINして返す)
type RecentAttempt struct {
	QuestionID     string  `json:"question_id"`
	SelectedChoice string  `json:"selected_choice"`
	IsCorrect      bool    `json:"is_correct"`
	TimeElapsed    float64 `json:"time_elapsed"`
	AttemptedAt    string  `json:"attempted_at"` // RFC3339
	QuestionText   *string `json:"question_text"`
	Difficulty     *string `json:"difficulty"`
	Domain         *string `json:"domain"`
}
