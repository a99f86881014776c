// internal/middleware/auth.go
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"sat_prep_keep/internal/config"
	"sat_prep_keep/internal/model"
	"sat_prep_keep/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
)

// UserAuthMiddleware は Authorization ヘッダーの Bearer トークン (アプリ発行JWT) を検証し、
// Subject に入っているユーザーの sub をコンテキストに設定するミドルウェアです。
// auth.enabled=false の場合はヘッダーを見ず、設定されたデフォルトユーザーの sub を使います。
func UserAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			if !cfg.Auth.Enabled {
				// 認証無効時は固定ユーザーとして動作する (開発・単一ユーザー運用)
				ctx := context.WithValue(r.Context(), model.UserSubKey, cfg.App.DefaultUserSub)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				appErr := model.NewAppError("UNAUTHORIZED", "Authorization header is required.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			// "Bearer {token}" の形式を検証
			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				appErr := model.NewAppError("UNAUTHORIZED", "Invalid Authorization header format.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}
			tokenString := headerParts[1]

			// jwt.Parse は署名と有効期限(exp)の両方を検証してくれる
			token, err := jwt.ParseWithClaims(tokenString, &model.JWTCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.JWT.SecretKey), nil
			})
			if err != nil || !token.Valid {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				appErr := model.NewAppError("UNAUTHORIZED", "Invalid or expired token.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			claims, ok := token.Claims.(*model.JWTCustomClaims)
			if !ok || claims.Subject == "" {
				logger.Warn("JWT auth failed: Missing subject claim")
				appErr := model.NewAppError("UNAUTHORIZED", "Invalid token claims.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			ctx := context.WithValue(r.Context(), model.UserSubKey, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserSubFromContext はコンテキストから認証済みユーザーの sub を取得します。
func GetUserSubFromContext(ctx context.Context) (string, error) {
	sub, ok := ctx.Value(model.UserSubKey).(string)
	if !ok || sub == "" {
		return "", errors.New("user sub not found in context")
	}
	return sub, nil
}
