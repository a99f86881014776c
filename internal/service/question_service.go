// internal/service/question_service.go
package service

import (
	"context"
	"errors"
	"log"

	"sat_prep_keep/internal/model"
	"sat_prep_keep/internal/repository"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"
)

type QuestionService interface {
	ListQuestions(ctx context.Context, filters model.FilterOptions) (*model.QuestionsResponse, error)
	GetRandomQuestion(ctx context.Context, filters model.FilterOptions) (*model.RandomQuestionResponse, error)
	GetFilterOptions(ctx context.Context) *model.FilterOptionsResponse
	CreateQuestion(ctx context.Context, req *model.CreateQuestionRequest) (*model.Question, error)
}

type questionService struct {
	db           *gorm.DB
	questionRepo repository.QuestionRepository
}

func NewQuestionService(db *gorm.DB, questionRepo repository.QuestionRepository) QuestionService {
	return &questionService{
		db:           db,
		questionRepo: questionRepo,
	}
}

func (s *questionService) ListQuestions(ctx context.Context, filters model.FilterOptions) (*model.QuestionsResponse, error) {
	questions, err := s.questionRepo.Find(ctx, s.db, filters)
	if err != nil {
		log.Printf("Error listing questions: %v", err)
		return nil, model.ErrInternalServer
	}
	if questions == nil {
		questions = []*model.Question{}
	}

	return &model.QuestionsResponse{
		Questions:      questions,
		Total:          int64(len(questions)),
		FiltersApplied: filters.Applied(),
	}, nil
}

func (s *questionService) GetRandomQuestion(ctx context.Context, filters model.FilterOptions) (*model.RandomQuestionResponse, error) {
	question, err := s.questionRepo.FindRandom(ctx, s.db, filters)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// フィルタに合致する設問が1問も無い
			return nil, model.ErrNotFound
		}
		log.Printf("Error getting random question: %v", err)
		return nil, model.ErrInternalServer
	}

	return &model.RandomQuestionResponse{
		Question:       question,
		FiltersApplied: filters.Applied(),
	}, nil
}

// GetFilterOptions はタクソノミー定義から選択肢一覧を組み立てます。DBは見ません。
func (s *questionService) GetFilterOptions(ctx context.Context) *model.FilterOptionsResponse {
	return &model.FilterOptionsResponse{
		Domains:            model.Domains,
		Skills:             model.AllSkills(),
		Difficulties:       model.Difficulties,
		DomainSkillMapping: model.DomainSkillMap,
	}
}

func (s *questionService) CreateQuestion(ctx context.Context, req *model.CreateQuestionRequest) (*model.Question, error) {
	questionID := req.QuestionID
	if questionID == "" {
		// 外部IDが未指定なら採番する
		id, err := gonanoid.New(12)
		if err != nil {
			log.Printf("Error generating question ID: %v", err)
			return nil, model.ErrInternalServer
		}
		questionID = id
	}

	question := &model.Question{
		QuestionID:    questionID,
		Image:         req.Image,
		Passage:       req.Passage,
		Question:      req.Question,
		ChoiceA:       req.ChoiceA,
		ChoiceB:       req.ChoiceB,
		ChoiceC:       req.ChoiceC,
		ChoiceD:       req.ChoiceD,
		CorrectChoice: req.CorrectChoice,
		RationaleA:    req.RationaleA,
		RationaleB:    req.RationaleB,
		RationaleC:    req.RationaleC,
		RationaleD:    req.RationaleD,
		Difficulty:    req.Difficulty,
		Domain:        req.Domain,
		Skill:         req.Skill,
	}

	if err := s.questionRepo.Create(ctx, s.db, question); err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, model.ErrConflict
		}
		log.Printf("Error creating question: %v", err)
		return nil, model.ErrInternalServer
	}

	return question, nil
}
