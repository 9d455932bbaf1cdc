package model

// ProgramSuggestion is a template record used to pre-fill the program
// creation form. Matched by keyword substring over name, type and tags.
type ProgramSuggestion struct {
	BaseModel
	Name         string      `gorm:"size:255;not null" json:"name"`
	Type         string      `gorm:"size:100" json:"type,omitempty"`
	Description  string      `gorm:"type:text" json:"description,omitempty"`
	Category     string      `gorm:"size:100" json:"category,omitempty"`
	Priority     string      `gorm:"size:20" json:"priority,omitempty"`
	DefaultColor string      `gorm:"size:20" json:"defaultColor,omitempty"`
	DefaultIcon  string      `gorm:"size:50" json:"defaultIcon,omitempty"`
	Tags         StringArray `gorm:"type:text" json:"tags,omitempty"`
}

func (ProgramSuggestion) TableName() string {
	return "program_suggestions"
}
