package service

import (
	"context"

	"github.com/Lucien-Luc/Programs/internal/model"
	"github.com/Lucien-Luc/Programs/internal/repository"
)

const exportVersion = "1.0"

// ExportData is the dump format: programs and activities plus provenance.
type ExportData struct {
	Programs   []model.Program  `json:"programs"`
	Activities []model.Activity `json:"activities"`
	ExportDate string           `json:"exportDate"`
	Version    string           `json:"version"`
}

// ImportRequest accepts the export format or any subset of it.
type ImportRequest struct {
	Programs   []model.Program  `json:"programs"`
	Activities []model.Activity `json:"activities"`
}

// ImportResult reports how many records were inserted.
type ImportResult struct {
	Programs   int `json:"programs"`
	Activities int `json:"activities"`
}

// BackupService dumps and restores the program/activity dataset. Import is
// strictly additive: ids and timestamps are stripped and every record is
// inserted as new, so repeating an import duplicates data.
type BackupService struct {
	programs   *repository.ProgramRepository
	activities *repository.ActivityRepository
	now        func() string
}

func NewBackupService(programs *repository.ProgramRepository, activities *repository.ActivityRepository, now func() string) *BackupService {
	return &BackupService{programs: programs, activities: activities, now: now}
}

func (s *BackupService) Export(ctx context.Context) (*ExportData, error) {
	programs, err := s.programs.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	activities, err := s.activities.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return &ExportData{
		Programs:   programs,
		Activities: activities,
		ExportDate: s.now(),
		Version:    exportVersion,
	}, nil
}

func (s *BackupService) Import(ctx context.Context, req *ImportRequest) (*ImportResult, error) {
	result := &ImportResult{}
	for _, p := range req.Programs {
		p.BaseModel = model.BaseModel{}
		if err := s.programs.Create(ctx, &p); err != nil {
			return nil, err
		}
		result.Programs++
	}
	for _, a := range req.Activities {
		a.BaseModel = model.BaseModel{}
		if err := s.activities.Create(ctx, &a); err != nil {
			return nil, err
		}
		result.Activities++
	}
	return result, nil
}
