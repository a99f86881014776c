// internal/service/auth_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"sat_prep_keep/internal/config"
	"sat_prep_keep/internal/model"
	repomocks "sat_prep_keep/internal/repository/mocks"
	svcmocks "sat_prep_keep/internal/service/mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDBAuth() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for auth service testing: " + err.Error())
	}
	if err := db.AutoMigrate(&model.User{}); err != nil {
		panic("failed to migrate database for auth service testing: " + err.Error())
	}
	return db
}

func testAuthConfig() *config.Config {
	var cfg config.Config
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.ExpiryHours = 72
	return &cfg
}

func Test_authService_LoginWithGoogle(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBAuth()
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	googleClaims := &model.GoogleClaims{
		Sub:           "110000000000000000001",
		Name:          "Test User",
		Email:         "test@example.com",
		Picture:       "https://example.com/p.png",
		GivenName:     "Test",
		FamilyName:    "User",
		Locale:        "en",
		EmailVerified: true,
	}

	t.Run("正常系: 検証・プロフィール洗い替え・トークン発行", func(t *testing.T) {
		mockVerifier := svcmocks.NewMockCredentialVerifier(t)
		mockUserRepo := new(repomocks.UserRepository)

		mockVerifier.On("Verify", ctx, "valid-credential").
			Return(googleClaims, nil).Once()
		mockUserRepo.On("Upsert", ctx, mock.AnythingOfType("*gorm.DB"), mock.MatchedBy(func(u *model.User) bool {
			return u.Sub == googleClaims.Sub &&
				u.Email == googleClaims.Email &&
				u.EmailVerified != nil && *u.EmailVerified == "true" &&
				u.Locale != nil && *u.Locale == "en" &&
				u.HD == nil
		})).Return(nil).Once()

		s := NewAuthService(db, mockUserRepo, mockVerifier, testAuthConfig()).(*authService)
		s.clock = func() time.Time { return now }

		resp, err := s.LoginWithGoogle(ctx, "valid-credential")

		require.NoError(t, err)
		assert.Equal(t, "Test User", resp.User.Name)
		assert.Equal(t, "test@example.com", resp.User.Email)

		// 発行されたトークンを検証する
		var claims model.JWTCustomClaims
		token, err := jwt.ParseWithClaims(resp.AccessToken, &claims, func(t *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		}, jwt.WithTimeFunc(func() time.Time { return now }))
		require.NoError(t, err)
		assert.True(t, token.Valid)
		assert.Equal(t, googleClaims.Sub, claims.Subject)
		assert.Equal(t, config.AppName, claims.Issuer)
		assert.Equal(t, now.Add(72*time.Hour).Unix(), claims.ExpiresAt.Unix())

		mockUserRepo.AssertExpectations(t)
	})

	t.Run("異常系: 不正なクレデンシャル", func(t *testing.T) {
		mockVerifier := svcmocks.NewMockCredentialVerifier(t)
		mockUserRepo := new(repomocks.UserRepository)

		mockVerifier.On("Verify", ctx, "bad-credential").
			Return(nil, model.NewAppError("UNAUTHORIZED", "Invalid Google credential", "credential", model.ErrInvalidInput)).Once()

		s := NewAuthService(db, mockUserRepo, mockVerifier, testAuthConfig())
		resp, err := s.LoginWithGoogle(ctx, "bad-credential")

		require.Error(t, err)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "UNAUTHORIZED", appErr.Detail.Code)
		assert.Nil(t, resp)
		mockUserRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: ユーザー保存に失敗", func(t *testing.T) {
		mockVerifier := svcmocks.NewMockCredentialVerifier(t)
		mockUserRepo := new(repomocks.UserRepository)

		mockVerifier.On("Verify", ctx, "valid-credential").
			Return(googleClaims, nil).Once()
		mockUserRepo.On("Upsert", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.User")).
			Return(gorm.ErrInvalidDB).Once()

		s := NewAuthService(db, mockUserRepo, mockVerifier, testAuthConfig())
		resp, err := s.LoginWithGoogle(ctx, "valid-credential")

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInternalServer)
		assert.Nil(t, resp)
	})
}
