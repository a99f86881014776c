// internal/handlers/vocabulary_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sat_prep_keep/internal/handlers"
	"sat_prep_keep/internal/model"
	"sat_prep_keep/internal/service/mocks"
)

func TestVocabularyHandler_GetDueCards(t *testing.T) {
	mockService := mocks.NewMockVocabularyService(t)
	handler := handlers.NewVocabularyHandler(mockService, testLogger)
	router := newAuthedRouter()
	router.Get("/vocabulary/due-cards", handler.GetDueCards)

	t.Run("Success - 認証ユーザーの復習対象カードを返す", func(t *testing.T) {
		due := []*model.CardStatus{
			{ID: 1, Word: "alpha", IsDueForReview: true},
			{ID: 3, Word: "charlie", IsDueForReview: true, Reviewed: true, FailureCount: 1},
		}
		mockService.On("GetDueCards", mock.Anything, testUserSub).
			Return(due, nil).Once()

		req := createRequest(t, "GET", "/vocabulary/due-cards", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []*model.CardStatus
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp, 2)
		assert.Equal(t, "alpha", resp[0].Word)
		mockService.AssertExpectations(t)
	})

	t.Run("Fail - 認証コンテキストなしは403", func(t *testing.T) {
		// 認証ミドルウェアを噛ませないルーターで直接呼ぶ
		bare := chi.NewRouter()
		bare.Get("/vocabulary/due-cards", handler.GetDueCards)

		req := createRequest(t, "GET", "/vocabulary/due-cards", nil)
		rr := httptest.NewRecorder()
		bare.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		var errResp model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
		assert.Equal(t, "UNAUTHORIZED", errResp.Error.Code)
	})
}

func TestVocabularyHandler_PostSubmitAttempt(t *testing.T) {
	mockService := mocks.NewMockVocabularyService(t)
	handler := handlers.NewVocabularyHandler(mockService, testLogger)
	router := newAuthedRouter()
	router.Post("/vocabulary/submit-attempt", handler.PostSubmitAttempt)

	validReq := model.SubmitAttemptRequest{CardID: 7, Result: model.ResultAgain, TimeElapsedSeconds: 8.2}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func()
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "Success - 提出結果を返す",
			body: validReq,
			setupMock: func() {
				nextDate := "2025-06-18"
				mockService.On("SubmitAttempt", mock.Anything, testUserSub, &validReq).
					Return(&model.SubmitAttemptResponse{
						Status:         "success",
						Message:        "Vocabulary attempt submitted successfully",
						NextReviewDate: &nextDate,
						FailureCount:   1,
						IntervalDays:   3,
					}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Fail - result が不正値",
			body:           model.SubmitAttemptRequest{CardID: 7, Result: "maybe"},
			setupMock:      func() { /* サービスは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name: "Fail - カードが存在しない",
			body: validReq,
			setupMock: func() {
				mockService.On("SubmitAttempt", mock.Anything, testUserSub, &validReq).
					Return(nil, model.NewAppError("NOT_FOUND", "Vocabulary card not found", "card_id", model.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "NOT_FOUND",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()

			req := createRequest(t, "POST", "/vocabulary/submit-attempt", tc.body)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedStatus == http.StatusOK {
				var resp model.SubmitAttemptResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "success", resp.Status)
				assert.Equal(t, 1, resp.FailureCount)
				require.NotNil(t, resp.NextReviewDate)
				assert.Equal(t, "2025-06-18", *resp.NextReviewDate)
			} else if tc.expectedCode != "" {
				var errResp model.APIErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
				assert.Equal(t, tc.expectedCode, errResp.Error.Code)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestVocabularyHandler_GetStats(t *testing.T) {
	mockService := mocks.NewMockVocabularyService(t)
	handler := handlers.NewVocabularyHandler(mockService, testLogger)
	router := newAuthedRouter()
	router.Get("/vocabulary/stats", handler.GetStats)

	mockService.On("GetStats", mock.Anything, testUserSub).
		Return(&model.VocabularyStats{TotalCards: 40, CompletedCards: 10, DueToday: 5, CompletionPercentage: 25}, nil).Once()

	req := createRequest(t, "GET", "/vocabulary/stats", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp model.VocabularyStats
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 40, resp.TotalCards)
	assert.Equal(t, 5, resp.DueToday)
	mockService.AssertExpectations(t)
}
