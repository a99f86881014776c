// internal/service/progress_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"sat_prep_keep/internal/model"
	"sat_prep_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressService interface {
	SubmitAnswer(ctx context.Context, userSub string, req *model.SubmitAnswerRequest) (*model.SubmitAnswerResponse, error)
	GetStats(ctx context.Context, userSub string) (*model.UserStats, error)
	GetRecentAttempts(ctx context.Context, userSub string, limit int) ([]*model.RecentAttempt, error)
}

type progressService struct {
	db           *gorm.DB
	userRepo     repository.UserRepository
	questionRepo repository.QuestionRepository
	attemptRepo  repository.QuestionAttemptRepository
	clock        func() time.Time
}

func NewProgressService(db *gorm.DB, userRepo repository.UserRepository, questionRepo repository.QuestionRepository, attemptRepo repository.QuestionAttemptRepository) ProgressService {
	return &progressService{
		db:           db,
		userRepo:     userRepo,
		questionRepo: questionRepo,
		attemptRepo:  attemptRepo,
		clock:        time.Now,
	}
}

func (s *progressService) SubmitAnswer(ctx context.Context, userSub string, req *model.SubmitAnswerRequest) (*model.SubmitAnswerResponse, error) {
	var resp *model.SubmitAnswerResponse

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := s.userRepo.FindBySub(ctx, tx, userSub)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "User not found", "", model.ErrNotFound)
			}
			log.Printf("Error finding user in submit answer: %v", err)
			return model.ErrInternalServer
		}

		if _, err := s.questionRepo.FindByQuestionID(ctx, tx, req.QuestionID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "Question not found", "question_id", model.ErrNotFound)
			}
			log.Printf("Error finding question in submit answer: %v", err)
			return model.ErrInternalServer
		}

		// 再解答は古い記録を置き換える (常に最新の1件のみ保持)
		if err := s.attemptRepo.DeleteByUserAndQuestion(ctx, tx, user.ID, req.QuestionID); err != nil {
			log.Printf("Error deleting previous attempt: %v", err)
			return model.ErrInternalServer
		}

		attempt := &model.QuestionAttempt{
			AttemptID:          uuid.New(),
			UserID:             user.ID,
			QuestionID:         req.QuestionID,
			SelectedChoice:     req.SelectedChoice,
			IsCorrect:          *req.IsCorrect,
			TimeElapsedSeconds: req.TimeElapsedSeconds,
			AttemptedAt:        s.clock().UTC(),
		}
		if err := s.attemptRepo.Create(ctx, tx, attempt); err != nil {
			log.Printf("Error creating question attempt: %v", err)
			return model.ErrInternalServer
		}

		resp = &model.SubmitAnswerResponse{
			Success: true,
			Message: fmt.Sprintf("Answer submitted successfully for question %s", req.QuestionID),
		}
		return nil
	})

	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) || errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrInternalServer) {
			return nil, err
		}
		log.Printf("Transaction failed for SubmitAnswer: %v", err)
		return nil, model.ErrInternalServer
	}

	return resp, nil
}

func (s *progressService) GetStats(ctx context.Context, userSub string) (*model.UserStats, error) {
	user, err := s.userRepo.FindBySub(ctx, s.db, userSub)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "User not found", "", model.ErrNotFound)
		}
		log.Printf("Error finding user for stats: %v", err)
		return nil, model.ErrInternalServer
	}

	totalQuestions, err := s.questionRepo.Count(ctx, s.db)
	if err != nil {
		log.Printf("Error counting questions: %v", err)
		return nil, model.ErrInternalServer
	}

	answered, err := s.attemptRepo.CountByUser(ctx, s.db, user.ID)
	if err != nil {
		log.Printf("Error counting attempts: %v", err)
		return nil, model.ErrInternalServer
	}

	correct, err := s.attemptRepo.CountCorrectByUser(ctx, s.db, user.ID)
	if err != nil {
		log.Printf("Error counting correct attempts: %v", err)
		return nil, model.ErrInternalServer
	}

	var completionRate, accuracy float64
	if totalQuestions > 0 {
		completionRate = float64(answered) / float64(totalQuestions) * 100
	}
	if answered > 0 {
		accuracy = float64(correct) / float64(answered) * 100
	}

	difficultyRows, err := s.attemptRepo.AggregateByDifficulty(ctx, s.db, user.ID)
	if err != nil {
		log.Printf("Error aggregating attempts by difficulty: %v", err)
		return nil, model.ErrInternalServer
	}
	var breakdown model.DifficultyBreakdown
	for _, row := range difficultyRows {
		switch row.Key {
		case "Easy":
			breakdown.Easy = int(row.Correct)
		case "Medium":
			breakdown.Medium = int(row.Correct)
		case "Hard":
			breakdown.Hard = int(row.Correct)
		}
	}

	domainRows, err := s.attemptRepo.AggregateByDomain(ctx, s.db, user.ID)
	if err != nil {
		log.Printf("Error aggregating attempts by domain: %v", err)
		return nil, model.ErrInternalServer
	}
	domainPerformance := make([]model.DomainStats, 0, len(domainRows))
	for _, row := range domainRows {
		if row.Key == "" || row.Attempted == 0 {
			continue
		}
		domainPerformance = append(domainPerformance, model.DomainStats{
			Domain:    row.Key,
			Attempted: int(row.Attempted),
			Correct:   int(row.Correct),
			Accuracy:  float64(row.Correct) / float64(row.Attempted) * 100,
		})
	}

	return &model.UserStats{
		QuestionsAnswered:   int(answered),
		TotalQuestions:      int(totalQuestions),
		CompletionRate:      completionRate,
		Accuracy:            accuracy,
		StreakDays:          0, // TODO: 日次の学習履歴テーブルを入れたら連続日数を計算する
		DifficultyBreakdown: breakdown,
		DomainPerformance:   domainPerformance,
	}, nil
}

func (s *progressService) GetRecentAttempts(ctx context.Context, userSub string, limit int) ([]*model.RecentAttempt, error) {
	user, err := s.userRepo.FindBySub(ctx, s.db, userSub)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return []*model.RecentAttempt{}, nil
		}
		log.Printf("Error finding user for recent attempts: %v", err)
		return nil, model.ErrInternalServer
	}

	attempts, err := s.attemptRepo.FindRecentByUser(ctx, s.db, user.ID, limit)
	if err != nil {
		log.Printf("Error listing recent attempts: %v", err)
		return nil, model.ErrInternalServer
	}
	if attempts == nil {
		attempts = []*model.RecentAttempt{}
	}
	return attempts, nil
}
