// internal/service/vocabulary_service.go
package service

import (
	"context"
	"errors"
	"log"
	"time"

	"sat_prep_keep/internal/model"
	"sat_prep_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SpacedRepetitionIntervals は復習間隔 (日数)。失敗回数が増えるほど間隔が延びます。
var SpacedRepetitionIntervals = []int{1, 3, 7, 14, 30}

type VocabularyService interface {
	GetCards(ctx context.Context, userSub string) ([]*model.CardStatus, error)
	GetDueCards(ctx context.Context, userSub string) ([]*model.CardStatus, error)
	SubmitAttempt(ctx context.Context, userSub string, req *model.SubmitAttemptRequest) (*model.SubmitAttemptResponse, error)
	GetStats(ctx context.Context, userSub string) (*model.VocabularyStats, error)
}

type vocabularyService struct {
	db          *gorm.DB
	userRepo    repository.UserRepository
	cardRepo    repository.CardRepository
	attemptRepo repository.VocabAttemptRepository
	clock       func() time.Time
}

func NewVocabularyService(db *gorm.DB, userRepo repository.UserRepository, cardRepo repository.CardRepository, attemptRepo repository.VocabAttemptRepository) VocabularyService {
	return &vocabularyService{
		db:          db,
		userRepo:    userRepo,
		cardRepo:    cardRepo,
		attemptRepo: attemptRepo,
		clock:       time.Now,
	}
}

// calculateNextReview は失敗回数から次回復習の間隔と日付を計算します。
// "easy" は完了扱いで次回復習なし。"again" は間隔表に従い、上限は最大間隔です。
func calculateNextReview(failureCount int, result string, now time.Time) (int, *time.Time) {
	if result == model.ResultEasy {
		return 0, nil
	}

	var intervalDays int
	if failureCount >= len(SpacedRepetitionIntervals) {
		intervalDays = SpacedRepetitionIntervals[len(SpacedRepetitionIntervals)-1]
	} else {
		intervalDays = SpacedRepetitionIntervals[failureCount]
	}

	next := today(now).AddDate(0, 0, intervalDays)
	return intervalDays, &next
}

// today は時刻を落とした日付 (UTC) を返します。next_review_date は日単位で比較します。
func today(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func isoDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

// cardStatus はカードと最新試行からクライアント向けの状態を導出します。
func cardStatus(card *model.VocabularyCard, attempt *model.VocabAttempt, now time.Time) *model.CardStatus {
	status := &model.CardStatus{
		ID:         card.ID,
		Word:       card.Word,
		Definition: card.Definition,
		Example:    card.Example,
		Difficulty: card.Difficulty,
		Category:   card.Category,
	}

	if attempt == nil {
		// 未着手のカードは常に復習対象
		status.IsDueForReview = true
		return status
	}

	status.Reviewed = true
	status.FailureCount = attempt.FailureCount

	if attempt.Result == model.ResultEasy {
		status.Completed = true
		return status
	}

	// 直近が "again": next_review_date が無いか今日以前なら復習対象
	status.NextReviewDate = isoDate(attempt.NextReviewDate)
	status.IsDueForReview = attempt.NextReviewDate == nil || !attempt.NextReviewDate.After(today(now))
	return status
}

// listStatuses は全カードの状態一覧を返します。ユーザー未登録時は空リストです。
func (s *vocabularyService) listStatuses(ctx context.Context, userSub string) ([]*model.CardStatus, error) {
	user, err := s.userRepo.FindBySub(ctx, s.db, userSub)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return []*model.CardStatus{}, nil
		}
		log.Printf("Error finding user for vocabulary: %v", err)
		return nil, model.ErrInternalServer
	}

	cards, err := s.cardRepo.FindAll(ctx, s.db)
	if err != nil {
		log.Printf("Error listing vocabulary cards: %v", err)
		return nil, model.ErrInternalServer
	}

	latest, err := s.attemptRepo.FindLatestPerCard(ctx, s.db, user.ID)
	if err != nil {
		log.Printf("Error loading latest vocabulary attempts: %v", err)
		return nil, model.ErrInternalServer
	}

	now := s.clock()
	statuses := make([]*model.CardStatus, 0, len(cards))
	for _, card := range cards {
		statuses = append(statuses, cardStatus(card, latest[card.ID], now))
	}
	return statuses, nil
}

func (s *vocabularyService) GetCards(ctx context.Context, userSub string) ([]*model.CardStatus, error) {
	return s.listStatuses(ctx, userSub)
}

func (s *vocabularyService) GetDueCards(ctx context.Context, userSub string) ([]*model.CardStatus, error) {
	statuses, err := s.listStatuses(ctx, userSub)
	if err != nil {
		return nil, err
	}

	due := make([]*model.CardStatus, 0, len(statuses))
	for _, st := range statuses {
		if st.IsDueForReview {
			due = append(due, st)
		}
	}
	return due, nil
}

func (s *vocabularyService) SubmitAttempt(ctx context.Context, userSub string, req *model.SubmitAttemptRequest) (*model.SubmitAttemptResponse, error) {
	var resp *model.SubmitAttemptResponse

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. ユーザー確認
		user, err := s.userRepo.FindBySub(ctx, tx, userSub)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "User not found", "", model.ErrNotFound)
			}
			log.Printf("Error finding user in submit attempt: %v", err)
			return model.ErrInternalServer
		}

		// 2. カード存在確認
		if _, err := s.cardRepo.FindByID(ctx, tx, req.CardID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "Vocabulary card not found", "card_id", model.ErrNotFound)
			}
			log.Printf("Error finding card in submit attempt: %v", err)
			return model.ErrInternalServer
		}

		// 3. 直近の試行から失敗回数を引き継ぐ
		var previousFailureCount int
		previous, err := s.attemptRepo.FindLatestByCard(ctx, tx, user.ID, req.CardID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			log.Printf("Error finding previous attempt: %v", err)
			return model.ErrInternalServer
		}
		if previous != nil {
			previousFailureCount = previous.FailureCount
		}

		now := s.clock()
		var failureCount, intervalDays int
		var nextReview *time.Time
		if req.Result == model.ResultEasy {
			// 成功でリセット、完了扱い
			failureCount = 0
		} else {
			failureCount = previousFailureCount + 1
			intervalDays, nextReview = calculateNextReview(failureCount, req.Result, now)
		}

		attempt := &model.VocabAttempt{
			AttemptID:          uuid.New(),
			UserID:             user.ID,
			CardID:             req.CardID,
			Result:             req.Result,
			TimeElapsedSeconds: req.TimeElapsedSeconds,
			AttemptedAt:        now.UTC(),
			IntervalDays:       intervalDays,
			NextReviewDate:     nextReview,
			FailureCount:       failureCount,
		}
		if err := s.attemptRepo.Create(ctx, tx, attempt); err != nil {
			log.Printf("Error creating vocabulary attempt: %v", err)
			return model.ErrInternalServer
		}

		resp = &model.SubmitAttemptResponse{
			Status:         "success",
			Message:        "Vocabulary attempt submitted successfully",
			NextReviewDate: isoDate(nextReview),
			FailureCount:   failureCount,
			IntervalDays:   intervalDays,
		}
		return nil
	})

	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) || errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		if errors.Is(err, model.ErrInternalServer) {
			return nil, err
		}
		log.Printf("Transaction failed for SubmitAttempt: %v", err)
		return nil, model.ErrInternalServer
	}

	return resp, nil
}

func (s *vocabularyService) GetStats(ctx context.Context, userSub string) (*model.VocabularyStats, error) {
	if _, err := s.userRepo.FindBySub(ctx, s.db, userSub); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// ユーザー未登録時はゼロ埋めの統計を返す
			return &model.VocabularyStats{}, nil
		}
		log.Printf("Error finding user for vocabulary stats: %v", err)
		return nil, model.ErrInternalServer
	}

	totalCards, err := s.cardRepo.Count(ctx, s.db)
	if err != nil {
		log.Printf("Error counting vocabulary cards: %v", err)
		return nil, model.ErrInternalServer
	}

	statuses, err := s.listStatuses(ctx, userSub)
	if err != nil {
		return nil, err
	}

	var completed, due int
	for _, st := range statuses {
		if st.Completed {
			completed++
		}
		if st.IsDueForReview {
			due++
		}
	}

	var completionPercentage float64
	if totalCards > 0 {
		completionPercentage = float64(completed) / float64(totalCards) * 100
	}

	return &model.VocabularyStats{
		TotalCards:           int(totalCards),
		CompletedCards:       completed,
		DueToday:             due,
		CompletionPercentage: completionPercentage,
	}, nil
}
