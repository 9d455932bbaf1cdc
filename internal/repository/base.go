package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is the sentinel for unknown ids. Callers 404 on it without
// exception handling.
var ErrNotFound = errors.New("record not found")

func translateErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

type BaseRepository[T any] struct {
	DB *gorm.DB
}

func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.DB.WithContext(ctx).Create(entity).Error
}

func (r *BaseRepository[T]) Save(ctx context.Context, entity *T) error {
	return r.DB.WithContext(ctx).Save(entity).Error
}

func (r *BaseRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &entity, nil
}

func (r *BaseRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	var entities []T
	err := r.DB.WithContext(ctx).Order("id").Find(&entities).Error
	return entities, err
}

// Delete removes the record permanently. Reports ErrNotFound when nothing
// matched so handlers can 404.
func (r *BaseRepository[T]) Delete(ctx context.Context, id uint) error {
	var entity T
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&entity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
