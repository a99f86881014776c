// internal/handlers/dialog_handler.go
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

type DialogHandler struct {
	service service.DialogService
	logger  *slog.Logger
}

func NewDialogHandler(s service.DialogService, logger *slog.Logger) *DialogHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DialogHandler{
		service: s,
		logger:  logger,
	}
}

// PostDialog はAIチューターへのフォローアップ質問を処理するハンドラ
func (h *DialogHandler) PostDialog(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostDialog"))

	var req model.DialogRequest
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

	resp, err := h.service.Ask(r.Context(), &req)
	if err != nil {
		logger.Error("Error generating dialog answer in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Dialog answer generated successfully", slog.Int("answer_length", len(resp.Answer)))
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}
