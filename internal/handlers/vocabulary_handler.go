// internal/handlers/vocabulary_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"sat_prep_keep/internal/middleware"
	"sat_prep_keep/internal/model"
	"sat_prep_keep/internal/service"
	"sat_prep_keep/internal/webutil"

	"github.com/go-playground/validator/v10"
)

type VocabularyHandler struct {
	service service.VocabularyService
	logger  *slog.Logger
}

func NewVocabularyHandler(s service.VocabularyService, logger *slog.Logger) *VocabularyHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &VocabularyHandler{
		service: s,
		logger:  logger,
	}
}

// GetCards は全カードの学習状態一覧を返すハンドラ
func (h *VocabularyHandler) GetCards(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCards"))

	userSub, err := middleware.GetUserSubFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}

	cards, err := h.service.GetCards(r.Context(), userSub)
	if err != nil {
		logger.Error("Error listing vocabulary cards in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Vocabulary cards listed successfully", slog.Int("count", len(cards)))
	webutil.RespondWithJSON(w, http.StatusOK, cards)
}

// GetDueCards は今日復習対象のカードのみを返すハンドラ
func (h *VocabularyHandler) GetDueCards(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDueCards"))

	userSub, err := middleware.GetUserSubFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}

	cards, err := h.service.GetDueCards(r.Context(), userSub)
	if err != nil {
		logger.Error("Error listing due cards in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Due cards listed successfully", slog.Int("count", len(cards)))
	webutil.RespondWithJSON(w, http.StatusOK, cards)
}

// PostSubmitAttempt は復習結果を記録するハンドラ
func (h *VocabularyHandler) PostSubmitAttempt(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostSubmitAttempt"))

	userSub, err := middleware.GetUserSubFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}

	var req model.SubmitAttemptRequest
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

	resp, err := h.service.SubmitAttempt(r.Context(), userSub, &req)
	if err != nil {
		logger.Error("Error submitting vocabulary attempt in service", slog.Any("error", err), slog.Uint64("card_id", uint64(req.CardID)))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Vocabulary attempt submitted successfully",
		slog.Uint64("card_id", uint64(req.CardID)),
		slog.String("result", req.Result),
		slog.Int("failure_count", resp.FailureCount),
	)
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

// GetStats は語彙学習の統計を返すハンドラ
func (h *VocabularyHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetVocabularyStats"))

	userSub, err := middleware.GetUserSubFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}

	stats, err := h.service.GetStats(r.Context(), userSub)
	if err != nil {
		logger.Error("Error getting vocabulary stats in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, stats)
}
