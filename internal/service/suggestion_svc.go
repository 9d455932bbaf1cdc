package service

import (
	"context"

	"github.com/Lucien-Luc/Programs/internal/model"
	"github.com/Lucien-Luc/Programs/internal/repository"
)

// MinSuggestionKeywordLen short-circuits trivially short keywords to an
// empty result before touching storage.
const MinSuggestionKeywordLen = 2

type CreateSuggestionRequest struct {
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Priority     string   `json:"priority"`
	DefaultColor string   `json:"defaultColor"`
	DefaultIcon  string   `json:"defaultIcon"`
	Tags         []string `json:"tags"`
}

type SuggestionService struct {
	repo *repository.SuggestionRepository
}

func NewSuggestionService(repo *repository.SuggestionRepository) *SuggestionService {
	return &SuggestionService{repo: repo}
}

func (s *SuggestionService) Search(ctx context.Context, keyword string) ([]model.ProgramSuggestion, error) {
	if len(keyword) < MinSuggestionKeywordLen {
		return []model.ProgramSuggestion{}, nil
	}
	return s.repo.Search(ctx, keyword)
}

func (s *SuggestionService) Create(ctx context.Context, req *CreateSuggestionRequest) (*model.ProgramSuggestion, error) {
	verr := NewValidationError()
	if req.Name == "" {
		verr.Add("name", "name is required")
	}
	if verr.HasErrors() {
		return nil, verr
	}
	suggestion := &model.ProgramSuggestion{
		Name:         req.Name,
		Type:         req.Type,
		Description:  req.Description,
		Category:     req.Category,
		Priority:     req.Priority,
		DefaultColor: req.DefaultColor,
		DefaultIcon:  req.DefaultIcon,
		Tags:         model.StringArray(req.Tags),
	}
	if err := s.repo.Create(ctx, suggestion); err != nil {
		return nil, err
	}
	return suggestion, nil
}
