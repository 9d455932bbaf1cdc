package service

import (
	"context"

	"github.com/Lucien-Luc/Programs/internal/model"
	"github.com/Lucien-Luc/Programs/internal/repository"
)

type CreateActivityRequest struct {
	ProgramID   uint    `json:"programId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Date        *string `json:"date"`
}

type UpdateActivityRequest struct {
	ProgramID   *uint   `json:"programId"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Date        *string `json:"date"`
}

type ActivityService struct {
	repo *repository.ActivityRepository
}

func NewActivityService(repo *repository.ActivityRepository) *ActivityService {
	return &ActivityService{repo: repo}
}

func (s *ActivityService) List(ctx context.Context) ([]model.Activity, error) {
	return s.repo.FindAll(ctx)
}

func (s *ActivityService) ListByProgram(ctx context.Context, programID uint) ([]model.Activity, error) {
	return s.repo.FindByProgram(ctx, programID)
}

func (s *ActivityService) Create(ctx context.Context, req *CreateActivityRequest) (*model.Activity, error) {
	verr := NewValidationError()
	if req.ProgramID == 0 {
		verr.Add("programId", "programId is required")
	}
	if req.Title == "" {
		verr.Add("title", "title is required")
	}
	date, err := parseDate(req.Date)
	if err != nil {
		verr.Add("date", "date must be an ISO date")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	activity := &model.Activity{
		ProgramID:   req.ProgramID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Date:        date,
	}
	if activity.Status == "" {
		activity.Status = "pending"
	}
	if err := s.repo.Create(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *ActivityService) Update(ctx context.Context, id uint, req *UpdateActivityRequest) (*model.Activity, error) {
	verr := NewValidationError()
	fields := make(map[string]interface{})
	if req.ProgramID != nil {
		if *req.ProgramID == 0 {
			verr.Add("programId", "programId must not be zero")
		} else {
			fields["program_id"] = *req.ProgramID
		}
	}
	if req.Title != nil {
		if *req.Title == "" {
			verr.Add("title", "title must not be empty")
		} else {
			fields["title"] = *req.Title
		}
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Date != nil {
		t, err := parseDate(req.Date)
		if err != nil {
			verr.Add("date", "date must be an ISO date")
		} else {
			fields["date"] = t
		}
	}
	if verr.HasErrors() {
		return nil, verr
	}
	return s.repo.UpdateFields(ctx, id, fields)
}

func (s *ActivityService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
