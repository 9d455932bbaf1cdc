package model

import "time"

// Activity is a unit of work or event associated with a program. Beyond the
// program association and the status string used for display coloring, the
// server treats the record as opaque.
type Activity struct {
	BaseModel
	ProgramID   uint       `gorm:"not null;index" json:"programId"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	Status      string     `gorm:"size:20;default:'pending'" json:"status"`
	Date        *time.Time `json:"date,omitempty"`
}

func (Activity) TableName() string {
	return "activities"
}
