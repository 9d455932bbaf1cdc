package service

import (
	"context"

	"github.com/Lucien-Luc/Programs/internal/model"
	"github.com/Lucien-Luc/Programs/internal/repository"
)

type UpsertTableConfigRequest struct {
	TableName      string                 `json:"tableName"`
	VisibleColumns []string               `json:"visibleColumns"`
	ColumnOrder    []string               `json:"columnOrder"`
	Settings       map[string]interface{} `json:"settings"`
}

type UpsertColumnHeaderRequest struct {
	TableName string `json:"tableName"`
	ColumnKey string `json:"columnKey"`
	Label     string `json:"label"`
	Visible   *bool  `json:"visible"`
	SortOrder int    `json:"sortOrder"`
}

type TableConfigService struct {
	configs *repository.TableConfigRepository
	headers *repository.ColumnHeaderRepository
}

func NewTableConfigService(configs *repository.TableConfigRepository, headers *repository.ColumnHeaderRepository) *TableConfigService {
	return &TableConfigService{configs: configs, headers: headers}
}

func (s *TableConfigService) GetConfig(ctx context.Context, tableName string) (*model.TableConfig, error) {
	return s.configs.FindByTableName(ctx, tableName)
}

func (s *TableConfigService) UpsertConfig(ctx context.Context, req *UpsertTableConfigRequest) (*model.TableConfig, error) {
	verr := NewValidationError()
	if req.TableName == "" {
		verr.Add("tableName", "tableName is required")
	}
	if verr.HasErrors() {
		return nil, verr
	}
	cfg := &model.TableConfig{
		TableName:      req.TableName,
		VisibleColumns: model.StringArray(req.VisibleColumns),
		ColumnOrder:    model.StringArray(req.ColumnOrder),
		Settings:       model.JSONMap(req.Settings),
	}
	return s.configs.Upsert(ctx, cfg)
}

func (s *TableConfigService) GetHeaders(ctx context.Context, tableName string) ([]model.ColumnHeader, error) {
	return s.headers.FindByTableName(ctx, tableName)
}

func (s *TableConfigService) UpsertHeader(ctx context.Context, req *UpsertColumnHeaderRequest) (*model.ColumnHeader, error) {
	verr := NewValidationError()
	if req.TableName == "" {
		verr.Add("tableName", "tableName is required")
	}
	if req.ColumnKey == "" {
		verr.Add("columnKey", "columnKey is required")
	}
	if req.Label == "" {
		verr.Add("label", "label is required")
	}
	if verr.HasErrors() {
		return nil, verr
	}
	header := &model.ColumnHeader{
		TableName: req.TableName,
		ColumnKey: req.ColumnKey,
		Label:     req.Label,
		Visible:   true,
		SortOrder: req.SortOrder,
	}
	if req.Visible != nil {
		header.Visible = *req.Visible
	}
	return s.headers.Upsert(ctx, header)
}
