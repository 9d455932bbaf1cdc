package service

import (
	"context"
	"regexp"
	"time"

	"github.com/Lucien-Luc/Programs/internal/model"
	"github.com/Lucien-Luc/Programs/internal/repository"
)

var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// CreateProgramRequest is the full program payload. Omitted optional fields
// get their documented defaults on create.
type CreateProgramRequest struct {
	Name            string                 `json:"name"`
	Description     string                 `json:"description"`
	Status          string                 `json:"status"`
	Progress        *int                   `json:"progress"`
	Participants    *int                   `json:"participants"`
	BudgetAllocated *int                   `json:"budgetAllocated"`
	BudgetUsed      *int                   `json:"budgetUsed"`
	Color           string                 `json:"color"`
	Icon            string                 `json:"icon"`
	StartDate       *string                `json:"startDate"`
	EndDate         *string                `json:"endDate"`
	ImageURL        string                 `json:"imageUrl"`
	ImageData       string                 `json:"imageData"`
	ImageName       string                 `json:"imageName"`
	ImageType       string                 `json:"imageType"`
	DocumentURL     string                 `json:"documentUrl"`
	DocumentName    string                 `json:"documentName"`
	DocumentType    string                 `json:"documentType"`
	Tags            []string               `json:"tags"`
	Partner         string                 `json:"partner"`
	Category        string                 `json:"category"`
	Priority        string                 `json:"priority"`
	Metadata        map[string]interface{} `json:"metadata"`
}

// UpdateProgramRequest carries a partial update. Only provided fields are
// validated and applied.
type UpdateProgramRequest struct {
	Name            *string                `json:"name"`
	Description     *string                `json:"description"`
	Status          *string                `json:"status"`
	Progress        *int                   `json:"progress"`
	Participants    *int                   `json:"participants"`
	BudgetAllocated *int                   `json:"budgetAllocated"`
	BudgetUsed      *int                   `json:"budgetUsed"`
	Color           *string                `json:"color"`
	Icon            *string                `json:"icon"`
	StartDate       *string                `json:"startDate"`
	EndDate         *string                `json:"endDate"`
	ImageURL        *string                `json:"imageUrl"`
	ImageData       *string                `json:"imageData"`
	ImageName       *string                `json:"imageName"`
	ImageType       *string                `json:"imageType"`
	DocumentURL     *string                `json:"documentUrl"`
	DocumentName    *string                `json:"documentName"`
	DocumentType    *string                `json:"documentType"`
	Tags            []string               `json:"tags"`
	Partner         *string                `json:"partner"`
	Category        *string                `json:"category"`
	Priority        *string                `json:"priority"`
	Metadata        map[string]interface{} `json:"metadata"`
}

type ProgramService struct {
	repo *repository.ProgramRepository
}

func NewProgramService(repo *repository.ProgramRepository) *ProgramService {
	return &ProgramService{repo: repo}
}

func (s *ProgramService) List(ctx context.Context) ([]model.Program, error) {
	return s.repo.FindAll(ctx)
}

func (s *ProgramService) GetByID(ctx context.Context, id uint) (*model.Program, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProgramService) Create(ctx context.Context, req *CreateProgramRequest) (*model.Program, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	program := req.toModel()
	if err := s.repo.Create(ctx, program); err != nil {
		return nil, err
	}
	return program, nil
}

func (s *ProgramService) Update(ctx context.Context, id uint, req *UpdateProgramRequest) (*model.Program, error) {
	fields, err := req.fields()
	if err != nil {
		return nil, err
	}
	return s.repo.UpdateFields(ctx, id, fields)
}

func (s *ProgramService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (r *CreateProgramRequest) validate() error {
	verr := NewValidationError()
	if r.Name == "" {
		verr.Add("name", "name is required")
	}
	if r.Color == "" {
		verr.Add("color", "color is required")
	} else if !hexColorRe.MatchString(r.Color) {
		verr.Add("color", "color must be a hex color like #4A90A4")
	}
	if r.Status != "" && !model.ValidProgramStatus(r.Status) {
		verr.Add("status", "status must be one of active, paused, completed, cancelled")
	}
	if r.Progress != nil && (*r.Progress < 0 || *r.Progress > 100) {
		verr.Add("progress", "progress must be between 0 and 100")
	}
	if r.Participants != nil && *r.Participants < 0 {
		verr.Add("participants", "participants must not be negative")
	}
	if r.BudgetAllocated != nil && *r.BudgetAllocated < 0 {
		verr.Add("budgetAllocated", "budgetAllocated must not be negative")
	}
	if r.BudgetUsed != nil && *r.BudgetUsed < 0 {
		verr.Add("budgetUsed", "budgetUsed must not be negative")
	}
	if _, err := parseDate(r.StartDate); err != nil {
		verr.Add("startDate", "startDate must be an ISO date")
	}
	if _, err := parseDate(r.EndDate); err != nil {
		verr.Add("endDate", "endDate must be an ISO date")
	}
	return verr.OrNil()
}

func (r *CreateProgramRequest) toModel() *model.Program {
	program := &model.Program{
		Name:            r.Name,
		Description:     r.Description,
		Status:          r.Status,
		Color:           r.Color,
		Icon:            r.Icon,
		ImageURL:        r.ImageURL,
		ImageData:       r.ImageData,
		ImageName:       r.ImageName,
		ImageType:       r.ImageType,
		DocumentURL:     r.DocumentURL,
		DocumentName:    r.DocumentName,
		DocumentType:    r.DocumentType,
		Partner:         r.Partner,
		Category:        r.Category,
		Priority:        r.Priority,
		BudgetAllocated: r.BudgetAllocated,
		BudgetUsed:      r.BudgetUsed,
	}
	if program.Status == "" {
		program.Status = string(model.ProgramStatusActive)
	}
	if program.Icon == "" {
		program.Icon = model.DefaultProgramIcon
	}
	if r.Progress != nil {
		program.Progress = *r.Progress
	}
	if r.Participants != nil {
		program.Participants = *r.Participants
	}
	if r.Tags != nil {
		program.Tags = model.StringArray(r.Tags)
	}
	if r.Metadata != nil {
		program.Metadata = model.JSONMap(r.Metadata)
	}
	program.StartDate, _ = parseDate(r.StartDate)
	program.EndDate, _ = parseDate(r.EndDate)
	return program
}

func (r *UpdateProgramRequest) fields() (map[string]interface{}, error) {
	verr := NewValidationError()
	fields := make(map[string]interface{})

	if r.Name != nil {
		if *r.Name == "" {
			verr.Add("name", "name must not be empty")
		} else {
			fields["name"] = *r.Name
		}
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Status != nil {
		if !model.ValidProgramStatus(*r.Status) {
			verr.Add("status", "status must be one of active, paused, completed, cancelled")
		} else {
			fields["status"] = *r.Status
		}
	}
	if r.Progress != nil {
		if *r.Progress < 0 || *r.Progress > 100 {
			verr.Add("progress", "progress must be between 0 and 100")
		} else {
			fields["progress"] = *r.Progress
		}
	}
	if r.Participants != nil {
		if *r.Participants < 0 {
			verr.Add("participants", "participants must not be negative")
		} else {
			fields["participants"] = *r.Participants
		}
	}
	if r.BudgetAllocated != nil {
		if *r.BudgetAllocated < 0 {
			verr.Add("budgetAllocated", "budgetAllocated must not be negative")
		} else {
			fields["budget_allocated"] = *r.BudgetAllocated
		}
	}
	if r.BudgetUsed != nil {
		if *r.BudgetUsed < 0 {
			verr.Add("budgetUsed", "budgetUsed must not be negative")
		} else {
			fields["budget_used"] = *r.BudgetUsed
		}
	}
	if r.Color != nil {
		if !hexColorRe.MatchString(*r.Color) {
			verr.Add("color", "color must be a hex color like #4A90A4")
		} else {
			fields["color"] = *r.Color
		}
	}
	if r.Icon != nil {
		fields["icon"] = *r.Icon
	}
	if r.StartDate != nil {
		t, err := parseDate(r.StartDate)
		if err != nil {
			verr.Add("startDate", "startDate must be an ISO date")
		} else {
			fields["start_date"] = t
		}
	}
	if r.EndDate != nil {
		t, err := parseDate(r.EndDate)
		if err != nil {
			verr.Add("endDate", "endDate must be an ISO date")
		} else {
			fields["end_date"] = t
		}
	}
	if r.ImageURL != nil {
		fields["image_url"] = *r.ImageURL
	}
	if r.ImageData != nil {
		fields["image_data"] = *r.ImageData
	}
	if r.ImageName != nil {
		fields["image_name"] = *r.ImageName
	}
	if r.ImageType != nil {
		fields["image_type"] = *r.ImageType
	}
	if r.DocumentURL != nil {
		fields["document_url"] = *r.DocumentURL
	}
	if r.DocumentName != nil {
		fields["document_name"] = *r.DocumentName
	}
	if r.DocumentType != nil {
		fields["document_type"] = *r.DocumentType
	}
	if r.Tags != nil {
		fields["tags"] = model.StringArray(r.Tags)
	}
	if r.Partner != nil {
		fields["partner"] = *r.Partner
	}
	if r.Category != nil {
		fields["category"] = *r.Category
	}
	if r.Priority != nil {
		fields["priority"] = *r.Priority
	}
	if r.Metadata != nil {
		fields["metadata"] = model.JSONMap(r.Metadata)
	}

	if verr.HasErrors() {
		return nil, verr
	}
	return fields, nil
}

// parseDate accepts the date shapes the admin forms send: a bare date or a
// full RFC 3339 timestamp. A nil or empty value is not an error.
func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, *s); err == nil {
			return &t, nil
		}
	}
	return nil, &ValidationError{Fields: map[string]string{"date": "invalid date"}}
}
