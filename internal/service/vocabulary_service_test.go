// internal/service/vocabulary_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"sat_prep_keep/internal/model"
	"sat_prep_keep/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストヘルパー関数 (インメモリDBセットアップ) ---
func setupTestDBVocabulary() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // テスト中はログを抑制
	})
	if err != nil {
		panic("failed to connect database for vocabulary service testing: " + err.Error())
	}
	err = db.AutoMigrate(&model.User{}, &model.VocabularyCard{}, &model.VocabAttempt{})
	if err != nil {
		panic("failed to migrate database for vocabulary service testing: " + err.Error())
	}
	return db
}

func newVocabularyServiceForTest(db *gorm.DB, userRepo *mocks.UserRepository, cardRepo *mocks.CardRepository, attemptRepo *mocks.VocabAttemptRepository, now time.Time) *vocabularyService {
	s := NewVocabularyService(db, userRepo, cardRepo, attemptRepo).(*vocabularyService)
	s.clock = func() time.Time { return now }
	return s
}

func strPtr(s string) *string { return &s }

// --- Test calculateNextReview ---
func Test_calculateNextReview(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name         string
		failureCount int
		result       string
		wantInterval int
		wantNextDate string // "" は nil 期待
	}{
		{name: "easy: 間隔なし・次回復習なし", failureCount: 3, result: model.ResultEasy, wantInterval: 0, wantNextDate: ""},
		{name: "again: 1回目の失敗は3日後", failureCount: 1, result: model.ResultAgain, wantInterval: 3, wantNextDate: "2025-06-18"},
		{name: "again: 2回目の失敗は7日後", failureCount: 2, result: model.ResultAgain, wantInterval: 7, wantNextDate: "2025-06-22"},
		{name: "again: 4回目の失敗は30日後", failureCount: 4, result: model.ResultAgain, wantInterval: 30, wantNextDate: "2025-07-15"},
		{name: "again: 失敗回数が間隔表を超えても最大30日で頭打ち", failureCount: 9, result: model.ResultAgain, wantInterval: 30, wantNextDate: "2025-07-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interval, next := calculateNextReview(tt.failureCount, tt.result, now)

			assert.Equal(t, tt.wantInterval, interval)
			if tt.wantNextDate == "" {
				assert.Nil(t, next)
			} else {
				require.NotNil(t, next)
				assert.Equal(t, tt.wantNextDate, next.Format("2006-01-02"))
			}
		})
	}
}

// --- Test cardStatus ---
func Test_cardStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	card := &model.VocabularyCard{ID: 7, Word: "ephemeral", Definition: "lasting a very short time", Difficulty: "Hard"}

	yesterday := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	tomorrow := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	todayMidnight := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		attempt       *model.VocabAttempt
		wantDue       bool
		wantCompleted bool
		wantReviewed  bool
	}{
		{
			name:    "未着手のカードは復習対象",
			attempt: nil,
			wantDue: true,
		},
		{
			name:          "直近がeasyなら完了扱いで復習対象外",
			attempt:       &model.VocabAttempt{Result: model.ResultEasy},
			wantCompleted: true,
			wantReviewed:  true,
		},
		{
			name:         "直近がagainで次回復習日が過去なら復習対象",
			attempt:      &model.VocabAttempt{Result: model.ResultAgain, FailureCount: 2, NextReviewDate: &yesterday},
			wantDue:      true,
			wantReviewed: true,
		},
		{
			name:         "直近がagainで次回復習日が今日なら復習対象",
			attempt:      &model.VocabAttempt{Result: model.ResultAgain, FailureCount: 1, NextReviewDate: &todayMidnight},
			wantDue:      true,
			wantReviewed: true,
		},
		{
			name:         "直近がagainで次回復習日が未来なら復習対象外",
			attempt:      &model.VocabAttempt{Result: model.ResultAgain, FailureCount: 1, NextReviewDate: &tomorrow},
			wantDue:      false,
			wantReviewed: true,
		},
		{
			name:         "直近がagainで次回復習日なしは復習対象",
			attempt:      &model.VocabAttempt{Result: model.ResultAgain, FailureCount: 1},
			wantDue:      true,
			wantReviewed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := cardStatus(card, tt.attempt, now)

			assert.Equal(t, card.ID, status.ID)
			assert.Equal(t, card.Word, status.Word)
			assert.Equal(t, tt.wantDue, status.IsDueForReview)
			assert.Equal(t, tt.wantCompleted, status.Completed)
			assert.Equal(t, tt.wantReviewed, status.Reviewed)
			if tt.attempt != nil && !tt.wantCompleted {
				assert.Equal(t, tt.attempt.FailureCount, status.FailureCount)
			}
		})
	}
}

// --- Test GetDueCards ---
func Test_vocabularyService_GetDueCards(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBVocabulary()
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	yesterday := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	tomorrow := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

	testUser := &model.User{ID: 1, Sub: "user-sub-1"}
	cards := []*model.VocabularyCard{
		{ID: 1, Word: "alpha", Definition: "def1"},
		{ID: 2, Word: "bravo", Definition: "def2"},
		{ID: 3, Word: "charlie", Definition: "def3"},
		{ID: 4, Word: "delta", Definition: "def4"},
	}

	tests := []struct {
		name      string
		userSub   string
		setupMock func(u *mocks.UserRepository, c *mocks.CardRepository, a *mocks.VocabAttemptRepository)
		wantErr   error
		wantWords []string
	}{
		{
			name:    "正常系: 未着手と期限到来のカードのみ返す",
			userSub: "user-sub-1",
			setupMock: func(u *mocks.UserRepository, c *mocks.CardRepository, a *mocks.VocabAttemptRepository) {
				u.On("FindBySub", ctx, mock.AnythingOfType("*gorm.DB"), "user-sub-1").
					Return(testUser, nil).Once()
				c.On("FindAll", ctx, mock.AnythingOfType("*gorm.DB")).
					Return(cards, nil).Once()
				a.On("FindLatestPerCard", ctx, mock.AnythingOfType("*gorm.DB"), uint(1)).
					Return(map[uint]*model.VocabAttempt{
						2: {CardID: 2, Result: model.ResultEasy},
						3: {CardID: 3, Result: model.ResultAgain, FailureCount: 1, NextReviewDate: &yesterday},
						4: {CardID: 4, Result: model.ResultAgain, FailureCount: 1, NextReviewDate: &tomorrow},
					}, nil).Once()
			},
			wantErr:   nil,
			wantWords: []string{"alpha", "charlie"},
		},
		{
			name:    "正常系: 未登録ユーザーは空リスト",
			userSub: "unknown-sub",
			setupMock: func(u *mocks.UserRepository, c *mocks.CardRepository, a *mocks.VocabAttemptRepository) {
				u.On("FindBySub", ctx, mock.AnythingOfType("*gorm.DB"), "unknown-sub").
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr:   nil,
			wantWords: []string{},
		},
		{
			name:    "異常系: カード取得でDBエラー",
			userSub: "user-sub-1",
			setupMock: func(u *mocks.UserRepository, c *mocks.CardRepository, a *mocks.VocabAttemptRepository) {
				u.On("FindBySub", ctx, mock.AnythingOfType("*gorm.DB"), "user-sub-1").
					Return(testUser, nil).Once()
				c.On("FindAll", ctx, mock.AnythingOfType("*gorm.DB")).
					Return(nil, errors.New("db error")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo := new(mocks.UserRepository)
			mockCardRepo := new(mocks.CardRepository)
			mockAttemptRepo := new(mocks.VocabAttemptRepository)
			tt.setupMock(mockUserRepo, mockCardRepo, mockAttemptRepo)

			s := newVocabularyServiceForTest(db, mockUserRepo, mockCardRepo, mockAttemptRepo, now)
			got, err := s.GetDueCards(ctx, tt.userSub)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				gotWords := make([]string, 0, len(got))
				for _, st := range got {
					gotWords = append(gotWords, st.Word)
				}
				assert.Equal(t, tt.wantWords, gotWords)
			}
			mockUserRepo.AssertExpectations(t)
			mockCardRepo.AssertExpectations(t)
			mockAttemptRepo.AssertExpectations(t)
		})
	}
}

// --- Test SubmitAttempt ---
func Test_vocabularyService_SubmitAttempt(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBVocabulary()
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	testUser := &model.User{ID: 1, Sub: "user-sub-1"}
	testCard := &model.VocabularyCard{ID: 7, Word: "ephemeral", Definition: "lasting a very short time"}

	tests := []struct {
		name             string
		req              *model.SubmitAttemptRequest
		setupMock        func(u *mocks.UserRepository, c *mocks.CardRepository, a *mocks.VocabAttemptRepository)
		wantErr          error
		wantErrCode      string
		wantNextDate     *string
		wantFailureCount int
		wantInterval     int
	}{
		{
			name: "正常系: 初回の失敗はfailure_count=1で3日後に再出題",
			req:  &model.SubmitAttemptRequest{CardID: 7, Result: model.ResultAgain, TimeElapsedSeconds: 8.2},
			setupMock: func(u *mocks.UserRepository, c *mocks.CardRepository, a *mocks.VocabAttemptRepository) {
				u.On("FindBySub", ctx, mock.AnythingOfType("*gorm.DB"), "user-sub-1").
					Return(testUser, nil).Once()
				c.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), uint(7)).
					Return(testCard, nil).Once()
				a.On("FindLatestByCard", ctx, mock.AnythingOfType("*gorm.DB"), uint(1), uint(7)).
					Return(nil, model.ErrNotFound).Once()
				a.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.MatchedBy(func(at *model.VocabAttempt) bool {
					return at.UserID == 1 && at.CardID == 7 &&
						at.Result == model.ResultAgain && at.FailureCount == 1 &&
						at.IntervalDays == 3 && at.TimeElapsedSeconds == 8.2
				})).Return(nil).Once()
			},
			wantNextDate:     strPtr("2025-06-18"),
			wantFailureCount: 1,
			wantInterval:     3,
		},
		{
			name: "正常系: 2回目の失敗は前回の失敗回数を引き継いで7日後",
			req:  &model.SubmitAttemptRequest{CardID: 7, Result: model.ResultAgain, TimeElapsedSeconds: 4.0},
			setupMock: func(u *mocks.UserRepository, c *mocks.CardRepository, a *mocks.VocabAttemptRepository) {
				u.On("FindBySub", ctx, mock.AnythingOfType("*gorm.DB"), "user-sub-1").
					Return(testUser, nil).Once()
				c.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), uint(7)).
					Return(testCard, nil).Once()
				a.On("FindLatestByCard", ctx, mock.AnythingOfType("*gorm.DB"), uint(1), uint(7)).
					Return(&model.VocabAttempt{CardID: 7, Result: model.ResultAgain, FailureCount: 1}, nil).Once()
				a.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.VocabAttempt")).
					Return(nil).Once()
			},
			wantNextDate:     strPtr("2025-06-22"),
			wantFailureCount: 2,
			wantInterval:     7,
		},
		{
			name: "正常系: easyは失敗回数をリセットして完了扱い",
			req:  &model.SubmitAttemptRequest{CardID: 7, Result: model.ResultEasy, TimeElapsedSeconds: 2.5},
			setupMock: func(u *mocks.UserRepository, c *mocks.CardRepository, a *mocks.VocabAttemptRepository) {
				u.On("FindBySub", ctx, mock.AnythingOfType("*gorm.DB"), "user-sub-1").
					Return(testUser, nil).Once()
				c.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), uint(7)).
					Return(testCard, nil).Once()
				a.On("FindLatestByCard", ctx, mock.AnythingOfType("*gorm.DB"), uint(1), uint(7)).
					Return(&model.VocabAttempt{CardID: 7, Result: model.ResultAgain, FailureCount: 3}, nil).Once()
				a.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.MatchedBy(func(at *model.VocabAttempt) bool {
					return at.Result == model.ResultEasy && at.FailureCount == 0 &&
						at.IntervalDays == 0 && at.NextReviewDate == nil
				})).Return(nil).Once()
			},
			wantNextDate:     nil,
			wantFailureCount: 0,
			wantInterval:     0,
		},
		{
			name: "異常系: ユーザー未登録",
			req:  &model.SubmitAttemptRequest{CardID: 7, Result: model.ResultAgain},
			setupMock: func(u *mocks.UserRepository, c *mocks.CardRepository, a *mocks.VocabAttemptRepository) {
				u.On("FindBySub", ctx, mock.AnythingOfType("*gorm.DB"), "user-sub-1").
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr:     model.ErrNotFound,
			wantErrCode: "NOT_FOUND",
		},
		{
			name: "異常系: カードが存在しない",
			req:  &model.SubmitAttemptRequest{CardID: 999, Result: model.ResultAgain},
			setupMock: func(u *mocks.UserRepository, c *mocks.CardRepository, a *mocks.VocabAttemptRepository) {
				u.On("FindBySub", ctx, mock.AnythingOfType("*gorm.DB"), "user-sub-1").
					Return(testUser, nil).Once()
				c.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), uint(999)).
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr:     model.ErrNotFound,
			wantErrCode: "NOT_FOUND",
		},
		{
			name: "異常系: 試行の保存に失敗",
			req:  &model.SubmitAttemptRequest{CardID: 7, Result: model.ResultAgain},
			setupMock: func(u *mocks.UserRepository, c *mocks.CardRepository, a *mocks.VocabAttemptRepository) {
				u.On("FindBySub", ctx, mock.AnythingOfType("*gorm.DB"), "user-sub-1").
					Return(testUser, nil).Once()
				c.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), uint(7)).
					Return(testCard, nil).Once()
				a.On("FindLatestByCard", ctx, mock.AnythingOfType("*gorm.DB"), uint(1), uint(7)).
					Return(nil, model.ErrNotFound).Once()
				a.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.VocabAttempt")).
					Return(errors.New("insert failed")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo := new(mocks.UserRepository)
			mockCardRepo := new(mocks.CardRepository)
			mockAttemptRepo := new(mocks.VocabAttemptRepository)
			tt.setupMock(mockUserRepo, mockCardRepo, mockAttemptRepo)

			s := newVocabularyServiceForTest(db, mockUserRepo, mockCardRepo, mockAttemptRepo, now)
			resp, err := s.SubmitAttempt(ctx, "user-sub-1", tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				if tt.wantErrCode != "" {
					var appErr *model.AppError
					require.ErrorAs(t, err, &appErr)
					assert.Equal(t, tt.wantErrCode, appErr.Detail.Code)
				}
				assert.Nil(t, resp)
			} else {
				require.NoError(t, err)
				require.NotNil(t, resp)
				assert.Equal(t, "success", resp.Status)
				assert.Equal(t, "Vocabulary attempt submitted successfully", resp.Message)
				assert.Equal(t, tt.wantNextDate, resp.NextReviewDate)
				assert.Equal(t, tt.wantFailureCount, resp.FailureCount)
				assert.Equal(t, tt.wantInterval, resp.IntervalDays)
			}
			mockUserRepo.AssertExpectations(t)
			mockCardRepo.AssertExpectations(t)
			mockAttemptRepo.AssertExpectations(t)
		})
	}
}

// --- Test GetStats ---
func Test_vocabularyService_GetStats(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBVocabulary()
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	yesterday := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)

	testUser := &model.User{ID: 1, Sub: "user-sub-1"}
	cards := []*model.VocabularyCard{
		{ID: 1, Word: "alpha", Definition: "def1"},
		{ID: 2, Word: "bravo", Definition: "def2"},
		{ID: 3, Word: "charlie", Definition: "def3"},
		{ID: 4, Word: "delta", Definition: "def4"},
	}

	t.Run("正常系: 完了数と本日の復習対象数を集計する", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockCardRepo := new(mocks.CardRepository)
		mockAttemptRepo := new(mocks.VocabAttemptRepository)

		// GetStats はユーザー確認とlistStatuses内の確認で2回 FindBySub を呼ぶ
		mockUserRepo.On("FindBySub", ctx, mock.AnythingOfType("*gorm.DB"), "user-sub-1").
			Return(testUser, nil).Twice()
		mockCardRepo.On("Count", ctx, mock.AnythingOfType("*gorm.DB")).
			Return(int64(4), nil).Once()
		mockCardRepo.On("FindAll", ctx, mock.AnythingOfType("*gorm.DB")).
			Return(cards, nil).Once()
		mockAttemptRepo.On("FindLatestPerCard", ctx, mock.AnythingOfType("*gorm.DB"), uint(1)).
			Return(map[uint]*model.VocabAttempt{
				1: {CardID: 1, Result: model.ResultEasy},
				2: {CardID: 2, Result: model.ResultEasy},
				3: {CardID: 3, Result: model.ResultAgain, FailureCount: 1, NextReviewDate: &yesterday},
			}, nil).Once()

		s := newVocabularyServiceForTest(db, mockUserRepo, mockCardRepo, mockAttemptRepo, now)
		stats, err := s.GetStats(ctx, "user-sub-1")

		require.NoError(t, err)
		assert.Equal(t, 4, stats.TotalCards)
		assert.Equal(t, 2, stats.CompletedCards)
		assert.Equal(t, 2, stats.DueToday) // 未着手のID:4 と 期限到来のID:3
		assert.InDelta(t, 50.0, stats.CompletionPercentage, 0.001)
		mockUserRepo.AssertExpectations(t)
		mockCardRepo.AssertExpectations(t)
		mockAttemptRepo.AssertExpectations(t)
	})

	t.Run("正常系: 未登録ユーザーはゼロ埋めの統計", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockCardRepo := new(mocks.CardRepository)
		mockAttemptRepo := new(mocks.VocabAttemptRepository)

		mockUserRepo.On("FindBySub", ctx, mock.AnythingOfType("*gorm.DB"), "unknown-sub").
			Return(nil, model.ErrNotFound).Once()

		s := newVocabularyServiceForTest(db, mockUserRepo, mockCardRepo, mockAttemptRepo, now)
		stats, err := s.GetStats(ctx, "unknown-sub")

		require.NoError(t, err)
		assert.Equal(t, &model.VocabularyStats{}, stats)
		mockUserRepo.AssertExpectations(t)
		mockCardRepo.AssertExpectations(t)
	})
}
