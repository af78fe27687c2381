package model

import (
	"gorm.io/datatypes"
)

// Question belongs to exactly one Exam and optionally to a Topic. OriginalID is
// the identifier carried in the source data and is the duplicate-detection key
// for questions; Metadata stores the serialized answer-cardinality result.
type Question struct {
	BaseModel
	ExamID      uint   `gorm:"not null;index" json:"examId"`
	TopicID     *uint  `gorm:"index" json:"topicId,omitempty"`
	OriginalID  string `gorm:"size:50;index" json:"originalId"`
	Text        string `gorm:"type:text;not null" json:"text"`
	HTMLContent string `gorm:"type:text" json:"htmlContent"`
	Difficulty  int    `gorm:"default:1;not null;index" json:"difficulty"` // 1-5
	CodeSnippet string `gorm:"type:text" json:"codeSnippet"`
	Explanation string `gorm:"type:text" json:"explanation"`
	Order       int    `gorm:"column:question_order;default:0;not null;index" json:"order"`

	Metadata datatypes.JSON `gorm:"type:json" json:"metadata"`

	// Source tracking carried over from the imported file.
	SourceExamExternalID   *int `json:"sourceExamExternalId,omitempty"`
	OriginalQuestionNumber int  `gorm:"default:0" json:"originalQuestionNumber"`

	Answers []Answer `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}

type Answer struct {
	BaseModel
	QuestionID  uint   `gorm:"not null;index" json:"questionId"`
	OriginalID  string `gorm:"size:50" json:"originalId"`
	Text        string `gorm:"type:text;not null" json:"text"`
	HTMLContent string `gorm:"type:text" json:"htmlContent"`
	IsCorrect   bool   `gorm:"default:false;not null" json:"isCorrect"`
	Order       int    `gorm:"column:answer_order;default:0;not null" json:"order"`
}

func (Answer) TableName() string {
	return "answers"
}
