// internal/model/auth.go
package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// GoogleLoginRequest は POST /auth/google のリクエストボディ。
// credential はGoogleサインインが発行したIDトークンです。
type GoogleLoginRequest struct {
	Credential string `json:"credential" validate:"required"`
}

// GoogleLoginResponse はログイン成功時のレスポンス。
// access_token は以降のAPI呼び出しに使うアプリ発行のJWTです。
type GoogleLoginResponse struct {
	User        UserProfile `json:"user"`
	AccessToken string      `json:"access_token"`
}

// GoogleClaims は検証済みIDトークンから取り出すクレーム
type GoogleClaims struct {
	Sub           string
	Name          string
	Email         string
	Picture       string
	GivenName     string
	FamilyName    string
	Locale        string
	EmailVerified bool
	HD            string
}

// JWTCustomClaims はアプリ発行JWTのペイロード。Subject にGoogleの sub を入れます。
type JWTCustomClaims struct {
	jwt.RegisteredClaims
}
