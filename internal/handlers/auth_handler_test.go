// internal/handlers/auth_handler_test.go
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

func TestAuthHandler_PostGoogleLogin(t *testing.T) {
	mockService := mocks.NewMockAuthService(t)
	handler := handlers.NewAuthHandler(mockService, testLogger)
	// ログインは公開エンドポイントなので認証ミドルウェアなし
	router := chi.NewRouter()
	router.Post("/auth/google", handler.PostGoogleLogin)

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func()
		expectedStatus int
	}{
		{
			name: "Success - プロフィールとアクセストークンを返す",
			body: model.GoogleLoginRequest{Credential: "valid-credential"},
			setupMock: func() {
				mockService.On("LoginWithGoogle", mock.Anything, "valid-credential").
					Return(&model.GoogleLoginResponse{
						User:        model.UserProfile{Name: "Test User", Email: "test@example.com"},
						AccessToken: "signed.jwt.token",
					}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Fail - credential 欠落",
			body:           model.GoogleLoginRequest{},
			setupMock:      func() { /* サービスは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Fail - 不正なクレデンシャルは400",
			body: model.GoogleLoginRequest{Credential: "bad-credential"},
			setupMock: func() {
				mockService.On("LoginWithGoogle", mock.Anything, "bad-credential").
					Return(nil, model.NewAppError("UNAUTHORIZED", "Invalid Google credential", "credential", model.ErrInvalidInput)).Once()
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()

			req := createRequest(t, "POST", "/auth/google", tc.body)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedStatus == http.StatusOK {
				var resp model.GoogleLoginResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "Test User", resp.User.Name)
				assert.NotEmpty(t, resp.AccessToken)
			}
			mockService.AssertExpectations(t)
		})
	}
}
