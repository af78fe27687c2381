package model

import (
	"gorm.io/datatypes"
)

// ImportRun records one batch ingest: aggregate counters plus the rendered
// report, so past runs stay queryable after the log files rotate away.
type ImportRun struct {
	UUIDBase
	Source            string         `gorm:"size:255" json:"source"`
	FilesProcessed    int            `gorm:"default:0" json:"filesProcessed"`
	ExamsCreated      int            `gorm:"default:0" json:"examsCreated"`
	QuestionsImported int            `gorm:"default:0" json:"questionsImported"`
	AnswersImported   int            `gorm:"default:0" json:"answersImported"`
	DuplicatesSkipped int            `gorm:"default:0" json:"duplicatesSkipped"`
	Failures          int            `gorm:"default:0" json:"failures"`
	SuccessRate       float64        `gorm:"default:0" json:"successRate"`
	Summary           datatypes.JSON `gorm:"type:json" json:"summary"`
	Report            string         `gorm:"type:text" json:"report"`
}

func (ImportRun) TableName() string {
	return "import_runs"
}
