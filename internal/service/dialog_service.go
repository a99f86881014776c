// internal/service/dialog_service.go
package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"sat_prep_keep/internal/ai"
	"sat_prep_keep/internal/model"
)

// tutorSystemPrompt はSATチューターとしての応答方針。文脈外の質問は定型文で突き返します。
const tutorSystemPrompt = "You are an expert SAT tutor. Use the reading passage, the question, and the official answer explanation to answer the user's follow-up question. " +
	"Be concise, factual, and only answer within the context of the SAT material provided. If the user asks something off-topic, irrelevant, or not related to SAT, respond with: 'Focus on the task, stop crying.' Do not provide generic, evasive, or off-topic responses."

// ChatProvider はLLMとの対話に必要な最小インターフェース
type ChatProvider interface {
	Chat(ctx context.Context, messages []ai.Message) (string, error)
}

type DialogService interface {
	Ask(ctx context.Context, req *model.DialogRequest) (*model.DialogResponse, error)
}

type dialogService struct {
	provider ChatProvider
}

func NewDialogService(provider ChatProvider) DialogService {
	return &dialogService{provider: provider}
}

func (s *dialogService) Ask(ctx context.Context, req *model.DialogRequest) (*model.DialogResponse, error) {
	userPrompt := fmt.Sprintf(
		"Reading Passage: %s\nQuestion: %s\nOfficial Answer Explanation: %s\nUser: %s\nAnswer:",
		req.Passage, req.Question, req.AnswerExplanation, req.UserMessage,
	)

	answer, err := s.provider.Chat(ctx, []ai.Message{
		{Role: ai.RoleSystem, Content: tutorSystemPrompt},
		{Role: ai.RoleUser, Content: userPrompt},
	})
	if err != nil {
		log.Printf("Error generating dialog answer: %v", err)
		return nil, model.ErrInternalServer
	}

	return &model.DialogResponse{Answer: strings.TrimSpace(answer)}, nil
}
