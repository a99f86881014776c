// internal/model/question.go
package model

import (
	"time"
)

// Question はSATの設問を表します。4択 (A〜D) と選択肢ごとの解説を持ちます。
// QuestionID は公開用の外部ID、ID はDB内部の主キーです。
type Question struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	QuestionID    string    `gorm:"uniqueIndex;not null" json:"question_id"`
	Image         *string   `json:"image,omitempty"` // 画像URL。無い設問が多い
	Passage       *string   `json:"passage,omitempty"`
	Question      string    `gorm:"not null" json:"question"`
	ChoiceA       string    `gorm:"not null" json:"choice_a"`
	ChoiceB       string    `gorm:"not null" json:"choice_b"`
	ChoiceC       string    `gorm:"not null" json:"choice_c"`
	ChoiceD       string    `gorm:"not null" json:"choice_d"`
	CorrectChoice string    `gorm:"not null" json:"correct_choice"` // 'A' | 'B' | 'C' | 'D'
	RationaleA    *string   `json:"rationale_a,omitempty"`
	RationaleB    *string   `json:"rationale_b,omitempty"`
	RationaleC    *string   `json:"rationale_c,omitempty"`
	RationaleD    *string   `json:"rationale_d,omitempty"`
	Difficulty    string    `gorm:"not null" json:"difficulty"` // Easy | Medium | Hard | Very Hard
	Domain        string    `gorm:"index" json:"domain"`
	Skill         string    `gorm:"index" json:"skill"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}

func (Question) TableName() string {
	return "questions"
}

// 設問作成リクエストDTO。question_id を省略した場合はサーバー側で採番します。
type CreateQuestionRequest struct {
	QuestionID    string  `json:"question_id,omitempty"`
	Image         *string `json:"image,omitempty"`
	Passage       *string `json:"passage,omitempty"`
	Question      string  `json:"question" validate:"required"`
	ChoiceA       string  `json:"choice_a" validate:"required"`
	ChoiceB       string  `json:"choice_b" validate:"required"`
	ChoiceC       string  `json:"choice_c" validate:"required"`
	ChoiceD       string  `json:"choice_d" validate:"required"`
	CorrectChoice string  `json:"correct_choice" validate:"required,oneof=A B C D"`
	RationaleA    *string `json:"rationale_a,omitempty"`
	RationaleB    *string `json:"rationale_b,omitempty"`
	RationaleC    *string `json:"rationale_c,omitempty"`
	RationaleD    *string `json:"rationale_d,omitempty"`
	Difficulty    string  `json:"difficulty" validate:"required,oneof=Easy Medium Hard 'Very Hard'"`
	Domain        string  `json:"domain,omitempty"`
	Skill         string  `json:"skill,omitempty"`
}

// AppliedFilters はレスポンスに含める「適用されたフィルタ」の表現。
// 未指定の次元は null になります。
type AppliedFilters struct {
	Domain     *string `json:"domain"`
	Skill      *string `json:"skill"`
	Difficulty *string `json:"difficulty"`
}

// QuestionsResponse は GET /questions のレスポンス
type QuestionsResponse struct {
	Questions      []*Question    `json:"questions"`
	Total          int64          `json:"total"`
	FiltersApplied AppliedFilters `json:"filters_applied"`
}

// RandomQuestionResponse は GET /questions/random のレスポンス
type RandomQuestionResponse struct {
	Question       *Question      `json:"question"`
	FiltersApplied AppliedFilters `json:"filters_applied"`
}

// FilterOptionsResponse は GET /questions/filter-options のレスポンス
type FilterOptionsResponse struct {
	Domains            []string            `json:"domains"`
	Skills             []string            `json:"skills"`
	Difficulties       []string            `json:"difficulties"`
	DomainSkillMapping map[string][]string `json:"domain_skill_mapping"`
}
