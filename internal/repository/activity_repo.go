package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Lucien-Luc/Programs/internal/model"
)

type ActivityRepository struct {
	BaseRepository[model.Activity]
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{BaseRepository: BaseRepository[model.Activity]{DB: db}}
}

// FindByProgram lists activities for one program. Deleting a program does
// not cascade here, so orphaned activities remain queryable.
func (r *ActivityRepository) FindByProgram(ctx context.Context, programID uint) ([]model.Activity, error) {
	var activities []model.Activity
	err := r.DB.WithContext(ctx).Where("program_id = ?", programID).Order("id").Find(&activities).Error
	return activities, err
}

// UpdateFields applies a partial update and returns the refreshed record.
func (r *ActivityRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) (*model.Activity, error) {
	if _, err := r.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		err := r.DB.WithContext(ctx).Model(&model.Activity{}).Where("id = ?", id).Updates(fields).Error
		if err != nil {
			return nil, err
		}
	}
	return r.FindByID(ctx, id)
}

func (r *ActivityRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.DB.WithContext(ctx).Model(&model.Activity{}).Count(&total).Error
	return total, err
}
