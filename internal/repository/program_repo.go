package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Lucien-Luc/Programs/internal/model"
)

type ProgramRepository struct {
	BaseRepository[model.Program]
}

func NewProgramRepository(db *gorm.DB) *ProgramRepository {
	return &ProgramRepository{BaseRepository: BaseRepository[model.Program]{DB: db}}
}

// UpdateFields applies a partial update and returns the refreshed record.
func (r *ProgramRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) (*model.Program, error) {
	if _, err := r.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		err := r.DB.WithContext(ctx).Model(&model.Program{}).Where("id = ?", id).Updates(fields).Error
		if err != nil {
			return nil, err
		}
	}
	return r.FindByID(ctx, id)
}

func (r *ProgramRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.DB.WithContext(ctx).Model(&model.Program{}).Count(&total).Error
	return total, err
}
