// internal/handlers/question_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sat_prep_keep/internal/handlers"
	"sat_prep_keep/internal/model"
	"sat_prep_keep/internal/service/mocks"
)

func TestQuestionHandler_GetQuestions(t *testing.T) {
	mockService := mocks.NewMockQuestionService(t)
	handler := handlers.NewQuestionHandler(mockService, testLogger)
	router := newAuthedRouter()
	router.Get("/questions", handler.GetQuestions)

	domain := "Craft and Structure"
	questions := []*model.Question{
		{ID: 1, QuestionID: "q-001", Question: "First?", Domain: domain},
	}

	tests := []struct {
		name           string
		url            string
		setupMock      func()
		expectedStatus int
		expectedTotal  int64
	}{
		{
			name: "Success - クエリパラメータがフィルタに反映される",
			url:  "/questions?domain=Craft+and+Structure&difficulty=Easy",
			setupMock: func() {
				mockService.On("ListQuestions", mock.Anything, model.FilterOptions{Domain: domain, Difficulty: "Easy"}).
					Return(&model.QuestionsResponse{
						Questions:      questions,
						Total:          1,
						FiltersApplied: model.FilterOptions{Domain: domain, Difficulty: "Easy"}.Applied(),
					}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedTotal:  1,
		},
		{
			name: "Success - パラメータなしは全件",
			url:  "/questions",
			setupMock: func() {
				mockService.On("ListQuestions", mock.Anything, model.FilterOptions{}).
					Return(&model.QuestionsResponse{Questions: []*model.Question{}, Total: 0}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedTotal:  0,
		},
		{
			name: "Fail - サービスが内部エラー",
			url:  "/questions",
			setupMock: func() {
				mockService.On("ListQuestions", mock.Anything, model.FilterOptions{}).
					Return(nil, model.ErrInternalServer).Once()
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()

			req := createRequest(t, "GET", tc.url, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedStatus == http.StatusOK {
				var resp model.QuestionsResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tc.expectedTotal, resp.Total)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestQuestionHandler_GetRandomQuestion(t *testing.T) {
	mockService := mocks.NewMockQuestionService(t)
	handler := handlers.NewQuestionHandler(mockService, testLogger)
	router := newAuthedRouter()
	router.Get("/questions/random", handler.GetRandomQuestion)

	t.Run("Success - 1問返す", func(t *testing.T) {
		mockService.On("GetRandomQuestion", mock.Anything, model.FilterOptions{}).
			Return(&model.RandomQuestionResponse{
				Question: &model.Question{ID: 1, QuestionID: "q-001", Question: "Pick me?"},
			}, nil).Once()

		req := createRequest(t, "GET", "/questions/random", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp model.RandomQuestionResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "q-001", resp.Question.QuestionID)
	})

	t.Run("Fail - 条件に合致する設問なしは404", func(t *testing.T) {
		mockService.On("GetRandomQuestion", mock.Anything, model.FilterOptions{Skill: "Transitions"}).
			Return(nil, model.ErrNotFound).Once()

		req := createRequest(t, "GET", "/questions/random?skill=Transitions", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		var errResp model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
		assert.Equal(t, "NOT_FOUND", errResp.Error.Code)
		assert.Equal(t, "No questions found matching the criteria.", errResp.Error.Message)
	})
}

func TestQuestionHandler_GetFilterOptions(t *testing.T) {
	mockService := mocks.NewMockQuestionService(t)
	handler := handlers.NewQuestionHandler(mockService, testLogger)
	router := newAuthedRouter()
	router.Get("/questions/filter-options", handler.GetFilterOptions)

	mockService.On("GetFilterOptions", mock.Anything).
		Return(&model.FilterOptionsResponse{
			Domains:            model.Domains,
			Skills:             model.AllSkills(),
			Difficulties:       model.Difficulties,
			DomainSkillMapping: model.DomainSkillMap,
		}).Once()

	req := createRequest(t, "GET", "/questions/filter-options", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp model.FilterOptionsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, model.Domains, resp.Domains)
	assert.Len(t, resp.Skills, 10)
}

func TestQuestionHandler_PostQuestion(t *testing.T) {
	mockService := mocks.NewMockQuestionService(t)
	handler := handlers.NewQuestionHandler(mockService, testLogger)
	router := newAuthedRouter()
	router.Post("/questions", handler.PostQuestion)

	validReq := model.CreateQuestionRequest{
		Question:      "Which choice completes the text?",
		ChoiceA:       "a",
		ChoiceB:       "b",
		ChoiceC:       "c",
		ChoiceD:       "d",
		CorrectChoice: "B",
		Difficulty:    "Medium",
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func()
		expectedStatus int
		expectedCode   string // エラー時のみ
	}{
		{
			name: "Success - 作成で201",
			body: validReq,
			setupMock: func() {
				mockService.On("CreateQuestion", mock.Anything, &validReq).
					Return(&model.Question{ID: 1, QuestionID: "generated-id", Question: validReq.Question}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Fail - 必須項目欠落はバリデーションエラー",
			body:           model.CreateQuestionRequest{Question: "no choices"},
			setupMock:      func() { /* サービスは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "Fail - 不正なJSONボディ",
			body:           "not-json",
			setupMock:      func() { /* サービスは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_REQUEST_BODY",
		},
		{
			name: "Fail - question_id 重複は409",
			body: validReq,
			setupMock: func() {
				mockService.On("CreateQuestion", mock.Anything, &validReq).
					Return(nil, model.ErrConflict).Once()
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()

			req := createRequest(t, "POST", "/questions", tc.body)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedCode != "" {
				var errResp model.APIErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
				assert.Equal(t, tc.expectedCode, errResp.Error.Code)
			}
			mockService.AssertExpectations(t)
		})
	}
}
