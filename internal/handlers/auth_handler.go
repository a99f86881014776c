// internal/handlers/auth_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"sat_prep_keep/internal/model"
	"sat_prep_keep/internal/service"
	"sat_prep_keep/internal/webutil"

	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	service service.AuthService
	logger  *slog.Logger
}

func NewAuthHandler(s service.AuthService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		service: s,
		logger:  logger,
	}
}

// PostGoogleLogin はGoogleのIDトークンを受け取り、検証してアプリのアクセストークンを発行するハンドラ
func (h *AuthHandler) PostGoogleLogin(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostGoogleLogin"))

	var req model.GoogleLoginRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "Invalid request body format.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.String("errors", validationErrors.Error()))
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}

	resp, err := h.service.LoginWithGoogle(r.Context(), req.Credential)
	if err != nil {
		// 無効なトークンはサービス側で AppError に変換済み
		logger.Warn("Google login failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Google login succeeded", slog.String("email", resp.User.Email))
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}
