package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Lucien-Luc/Programs/internal/model"
)

type TableConfigRepository struct {
	BaseRepository[model.TableConfig]
}

func NewTableConfigRepository(db *gorm.DB) *TableConfigRepository {
	return &TableConfigRepository{BaseRepository: BaseRepository[model.TableConfig]{DB: db}}
}

func (r *TableConfigRepository) FindByTableName(ctx context.Context, tableName string) (*model.TableConfig, error) {
	var cfg model.TableConfig
	err := r.DB.WithContext(ctx).Where("table_name = ?", tableName).First(&cfg).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &cfg, nil
}

// Upsert creates or replaces the singleton config for a table name.
func (r *TableConfigRepository) Upsert(ctx context.Context, cfg *model.TableConfig) (*model.TableConfig, error) {
	existing, err := r.FindByTableName(ctx, cfg.TableName)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		if err := r.Create(ctx, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	existing.VisibleColumns = cfg.VisibleColumns
	existing.ColumnOrder = cfg.ColumnOrder
	existing.Settings = cfg.Settings
	if err := r.Save(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

type ColumnHeaderRepository struct {
	BaseRepository[model.ColumnHeader]
}

func NewColumnHeaderRepository(db *gorm.DB) *ColumnHeaderRepository {
	return &ColumnHeaderRepository{BaseRepository: BaseRepository[model.ColumnHeader]{DB: db}}
}

func (r *ColumnHeaderRepository) FindByTableName(ctx context.Context, tableName string) ([]model.ColumnHeader, error) {
	var headers []model.ColumnHeader
	err := r.DB.WithContext(ctx).Where("table_name = ?", tableName).Order("sort_order, id").Find(&headers).Error
	return headers, err
}

// Upsert creates or replaces the header for a (table, column) pair.
func (r *ColumnHeaderRepository) Upsert(ctx context.Context, header *model.ColumnHeader) (*model.ColumnHeader, error) {
	var existing model.ColumnHeader
	err := r.DB.WithContext(ctx).
		Where("table_name = ? AND column_key = ?", header.TableName, header.ColumnKey).
		First(&existing).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if err := r.Create(ctx, header); err != nil {
			return nil, err
		}
		return header, nil
	}
	existing.Label = header.Label
	existing.Visible = header.Visible
	existing.SortOrder = header.SortOrder
	if err := r.Save(ctx, &existing); err != nil {
		return nil, err
	}
	return &existing, nil
}
