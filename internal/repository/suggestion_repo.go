package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/Lucien-Luc/Programs/internal/model"
)

type SuggestionRepository struct {
	BaseRepository[model.ProgramSuggestion]
}

func NewSuggestionRepository(db *gorm.DB) *SuggestionRepository {
	return &SuggestionRepository{BaseRepository: BaseRepository[model.ProgramSuggestion]{DB: db}}
}

// Search returns suggestions whose name, type or tags contain the keyword,
// case-insensitively, in storage order. Tags live in a JSON column, so the
// match runs over the loaded rows rather than in SQL.
func (r *SuggestionRepository) Search(ctx context.Context, keyword string) ([]model.ProgramSuggestion, error) {
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(keyword)
	matched := make([]model.ProgramSuggestion, 0)
	for _, s := range all {
		if suggestionMatches(&s, needle) {
			matched = append(matched, s)
		}
	}
	return matched, nil
}

func suggestionMatches(s *model.ProgramSuggestion, needle string) bool {
	if strings.Contains(strings.ToLower(s.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(s.Type), needle) {
		return true
	}
	for _, tag := range s.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
