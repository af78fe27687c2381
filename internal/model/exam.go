package model

import (
	"gorm.io/datatypes"
)

// Exam is one imported exam file: a titled, versioned set of questions.
// Metadata carries the extraction audit trail (source external id, file type,
// original top-level keys) so the importer never has to re-read the source file.
type Exam struct {
	BaseModel
	Title          string         `gorm:"size:200;not null;index" json:"title"`
	Description    string         `gorm:"type:text" json:"description"`
	TimeLimit      int            `gorm:"default:30;not null" json:"timeLimit"` // minutes
	TotalQuestions int            `gorm:"default:0;not null" json:"totalQuestions"`
	SourceFile     string         `gorm:"size:255" json:"sourceFile"`
	Version        string         `gorm:"size:20;default:'1.0';not null" json:"version"`
	IsActive       bool           `gorm:"default:true;not null;index" json:"isActive"`
	Metadata       datatypes.JSON `gorm:"type:json" json:"metadata"`

	Questions []Question `gorm:"foreignKey:ExamID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

func (Exam) TableName() string {
	return "exams"
}
