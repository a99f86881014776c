// internal/service/auth_service.go
package service

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"sat_prep_keep/internal/config"
	"sat_prep_keep/internal/model"
	"sat_prep_keep/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

// CredentialVerifier はGoogleのIDトークンを検証しクレームを取り出します。
// テストではフェイク実装に差し替えます。
//
//go:generate mockery --name CredentialVerifier --output ./mocks --outpkg mocks --case=underscore
type CredentialVerifier interface {
	Verify(ctx context.Context, credential string) (*model.GoogleClaims, error)
}

// googleVerifier は google.golang.org/api/idtoken による実装
type googleVerifier struct {
	clientID string
}

func NewGoogleVerifier(clientID string) CredentialVerifier {
	return &googleVerifier{clientID: clientID}
}

func (v *googleVerifier) Verify(ctx context.Context, credential string) (*model.GoogleClaims, error) {
	payload, err := idtoken.Validate(ctx, credential, v.clientID)
	if err != nil {
		return nil, model.NewAppError("UNAUTHORIZED", "Invalid Google credential", "credential", model.ErrInvalidInput)
	}

	claims := &model.GoogleClaims{Sub: payload.Subject}
	claims.Name, _ = payload.Claims["name"].(string)
	claims.Email, _ = payload.Claims["email"].(string)
	claims.Picture, _ = payload.Claims["picture"].(string)
	claims.GivenName, _ = payload.Claims["given_name"].(string)
	claims.FamilyName, _ = payload.Claims["family_name"].(string)
	claims.Locale, _ = payload.Claims["locale"].(string)
	claims.HD, _ = payload.Claims["hd"].(string)
	claims.EmailVerified, _ = payload.Claims["email_verified"].(bool)
	return claims, nil
}

type AuthService interface {
	LoginWithGoogle(ctx context.Context, credential string) (*model.GoogleLoginResponse, error)
}

type authService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	verifier CredentialVerifier
	cfg      *config.Config
	clock    func() time.Time
}

func NewAuthService(db *gorm.DB, userRepo repository.UserRepository, verifier CredentialVerifier, cfg *config.Config) AuthService {
	return &authService{
		db:       db,
		userRepo: userRepo,
		verifier: verifier,
		cfg:      cfg,
		clock:    time.Now,
	}
}

func (s *authService) LoginWithGoogle(ctx context.Context, credential string) (*model.GoogleLoginResponse, error) {
	claims, err := s.verifier.Verify(ctx, credential)
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		log.Printf("Error verifying Google credential: %v", err)
		return nil, model.ErrInternalServer
	}

	emailVerified := strconv.FormatBool(claims.EmailVerified)
	user := &model.User{
		Sub:           claims.Sub,
		Name:          claims.Name,
		Email:         claims.Email,
		Picture:       claims.Picture,
		GivenName:     claims.GivenName,
		FamilyName:    claims.FamilyName,
		EmailVerified: &emailVerified,
	}
	if claims.Locale != "" {
		user.Locale = &claims.Locale
	}
	if claims.HD != "" {
		user.HD = &claims.HD
	}

	// プロフィールは毎ログインで最新に洗い替える
	if err := s.userRepo.Upsert(ctx, s.db, user); err != nil {
		log.Printf("Error upserting user on login: %v", err)
		return nil, model.ErrInternalServer
	}

	token, err := s.signToken(claims.Sub)
	if err != nil {
		log.Printf("Error signing access token: %v", err)
		return nil, model.ErrInternalServer
	}

	return &model.GoogleLoginResponse{
		User: model.UserProfile{
			Name:    claims.Name,
			Email:   claims.Email,
			Picture: claims.Picture,
		},
		AccessToken: token,
	}, nil
}

// signToken はアプリ発行のアクセストークン (HS256) を生成します。
func (s *authService) signToken(sub string) (string, error) {
	now := s.clock()
	claims := model.JWTCustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			Issuer:    config.AppName,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.JWT.ExpiryHours) * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWT.SecretKey))
}
