// internal/handlers/progress_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"sat_prep_keep/internal/config"
	"sat_prep_keep/internal/middleware"
	"sat_prep_keep/internal/model"
	"sat_prep_keep/internal/service"
	"sat_prep_keep/internal/webutil"

	"github.com/go-playground/validator/v10"
)

type ProgressHandler struct {
	service     service.ProgressService
	recentLimit int
	logger      *slog.Logger
}

func NewProgressHandler(s service.ProgressService, recentLimit int, logger *slog.Logger) *ProgressHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProgressHandler{
		service:     s,
		recentLimit: recentLimit,
		logger:      logger,
	}
}

// PostSubmitAnswer は設問への解答を記録するハンドラ
func (h *ProgressHandler) PostSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostSubmitAnswer"))

	userSub, err := middleware.GetUserSubFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}

	var req model.SubmitAnswerRequest
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

	resp, err := h.service.SubmitAnswer(r.Context(), userSub, &req)
	if err != nil {
		logger.Error("Error submitting answer in service", slog.Any("error", err), slog.String("question_id", req.QuestionID))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Answer submitted successfully",
		slog.String("question_id", req.QuestionID),
		slog.Bool("is_correct", *req.IsCorrect),
	)
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

// GetStats は進捗ダッシュボード用の統計を返すハンドラ
func (h *ProgressHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetUserStats"))

	userSub, err := middleware.GetUserSubFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}

	stats, err := h.service.GetStats(r.Context(), userSub)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Stats requested for unknown user")
		} else {
			logger.Error("Error getting user stats in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, stats)
}

// GetRecentAttempts は直近の解答履歴を返すハンドラ。limit はクエリで上書きできます。
func (h *ProgressHandler) GetRecentAttempts(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetRecentAttempts"))

	userSub, err := middleware.GetUserSubFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}

	limit := h.recentLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			logger.Warn("Invalid limit query parameter", slog.String("limit", limitStr))
			appErr := model.NewAppError("INVALID_QUERY_PARAM", "limit must be a positive integer.", "limit", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		if parsed > config.MaxRecentLimit {
			parsed = config.MaxRecentLimit
		}
		limit = parsed
	}

	attempts, err := h.service.GetRecentAttempts(r.Context(), userSub, limit)
	if err != nil {
		logger.Error("Error listing recent attempts in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Recent attempts listed successfully", slog.Int("count", len(attempts)))
	webutil.RespondWithJSON(w, http.StatusOK, attempts)
}
