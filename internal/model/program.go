package model

import "time"

// ProgramStatus enumerates the lifecycle states a program can be in.
type ProgramStatus string

const (
	ProgramStatusActive    ProgramStatus = "active"
	ProgramStatusPaused    ProgramStatus = "paused"
	ProgramStatusCompleted ProgramStatus = "completed"
	ProgramStatusCancelled ProgramStatus = "cancelled"
)

// ValidProgramStatus reports whether s is one of the known statuses.
func ValidProgramStatus(s string) bool {
	switch ProgramStatus(s) {
	case ProgramStatusActive, ProgramStatusPaused, ProgramStatusCompleted, ProgramStatusCancelled:
		return true
	}
	return false
}

const DefaultProgramIcon = "bullseye"

type Program struct {
	BaseModel
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Status      string `gorm:"size:20;not null;default:'active'" json:"status"`
	Progress    int    `gorm:"default:0" json:"progress"`
	Participants int   `gorm:"default:0" json:"participants"`

	// budgetUsed <= budgetAllocated is intentionally not enforced
	BudgetAllocated *int `json:"budgetAllocated,omitempty"`
	BudgetUsed      *int `json:"budgetUsed,omitempty"`

	Color string `gorm:"size:20;not null" json:"color"`
	Icon  string `gorm:"size:50;default:'bullseye'" json:"icon,omitempty"`

	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`

	// Image reference: either a URL or inline-encoded binary
	ImageURL  string `gorm:"size:500;column:image_url" json:"imageUrl,omitempty"`
	ImageData string `gorm:"type:text" json:"imageData,omitempty"`
	ImageName string `gorm:"size:255" json:"imageName,omitempty"`
	ImageType string `gorm:"size:100" json:"imageType,omitempty"`

	DocumentURL  string `gorm:"size:500;column:document_url" json:"documentUrl,omitempty"`
	DocumentName string `gorm:"size:255" json:"documentName,omitempty"`
	DocumentType string `gorm:"size:100" json:"documentType,omitempty"`

	Tags    StringArray `gorm:"type:text" json:"tags,omitempty"`
	Partner string      `gorm:"size:255" json:"partner,omitempty"`

	// Legacy classification fields, superseded by Partner
	Category string `gorm:"size:100" json:"category,omitempty"`
	Priority string `gorm:"size:20" json:"priority,omitempty"`

	Metadata JSONMap `gorm:"type:text" json:"metadata,omitempty"`
}

func (Program) TableName() string {
	return "programs"
}
