// internal/handlers/question_handler.go
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

type QuestionHandler struct {
	service service.QuestionService
	logger  *slog.Logger
}

func NewQuestionHandler(s service.QuestionService, logger *slog.Logger) *QuestionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuestionHandler{
		service: s,
		logger:  logger,
	}
}

// filtersFromQuery はクエリパラメータからフィルタ条件を組み立てます。
// パラメータが無い次元と "Any" は制約なしとして扱われます。
func filtersFromQuery(r *http.Request) model.FilterOptions {
	q := r.URL.Query()
	return model.FilterOptions{
		Domain:     q.Get("domain"),
		Skill:      q.Get("skill"),
		Difficulty: q.Get("difficulty"),
	}
}

// GetQuestions はフィルタ条件に合致する設問一覧を返すハンドラ
func (h *QuestionHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetQuestions"))

	filters := filtersFromQuery(r)
	resp, err := h.service.ListQuestions(r.Context(), filters)
	if err != nil {
		logger.Error("Error listing questions in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Questions listed successfully", slog.Int64("total", resp.Total))
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

// GetRandomQuestion はフィルタ条件に合致する設問を1問ランダムに返すハンドラ
func (h *QuestionHandler) GetRandomQuestion(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetRandomQuestion"))

	filters := filtersFromQuery(r)
	resp, err := h.service.GetRandomQuestion(r.Context(), filters)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("No questions matched the filters", slog.Any("filters", filters))
			appErr := model.NewAppError("NOT_FOUND", "No questions found matching the criteria.", "", model.ErrNotFound)
			webutil.HandleError(w, logger, appErr)
			return
		}
		logger.Error("Error getting random question in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Random question retrieved successfully", slog.String("question_id", resp.Question.QuestionID))
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

// GetFilterOptions は設問フィルタの選択肢一覧を返すハンドラ
func (h *QuestionHandler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	resp := h.service.GetFilterOptions(r.Context())
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

// PostQuestion は新しい設問を登録するハンドラ
func (h *QuestionHandler) PostQuestion(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostQuestion"))

	var req model.CreateQuestionRequest
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

	question, err := h.service.CreateQuestion(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating question in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Question created successfully", slog.String("question_id", question.QuestionID))
	webutil.RespondWithJSON(w, http.StatusCreated, question)
}
