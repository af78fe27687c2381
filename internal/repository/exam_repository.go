package repository

import (
	"exam_ingest_backend/internal/model"

	"gorm.io/gorm"
)

type ExamRepository struct {
	DB *gorm.DB
}

func NewExamRepository(db *gorm.DB) *ExamRepository {
	return &ExamRepository{DB: db}
}

func (r *ExamRepository) CreateExam(exam *model.Exam) error {
	return r.DB.Create(exam).Error
}

// FindExamByTitle is the exam-level duplicate check. Title is the authoritative
// duplicate key for exams.
func (r *ExamRepository) FindExamByTitle(title string) (*model.Exam, error) {
	var exam model.Exam
	err := r.DB.Where("title = ?", title).First(&exam).Error
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *ExamRepository) FindExamByID(id uint) (*model.Exam, error) {
	var exam model.Exam
	err := r.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_order asc")
		}).
		Preload("Questions.Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answer_order asc")
		}).
		First(&exam, id).Error
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *ExamRepository) ListExams(page, limit int, activeOnly bool) ([]model.Exam, int64, error) {
	var exams []model.Exam
	var total int64

	query := r.DB.Model(&model.Exam{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&exams).Error
	return exams, total, err
}

func (r *ExamRepository) CreateQuestion(question *model.Question) error {
	return r.DB.Create(question).Error
}

// FindQuestionByOriginalID is the question-level duplicate check.
func (r *ExamRepository) FindQuestionByOriginalID(originalID string) (*model.Question, error) {
	var q model.Question
	err := r.DB.Where("original_id = ?", originalID).First(&q).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *ExamRepository) ListQuestions(examID uint) ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.
		Where("exam_id = ?", examID).
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answer_order asc")
		}).
		Order("question_order asc").
		Find(&qs).Error
	return qs, err
}

func (r *ExamRepository) CreateAnswer(answer *model.Answer) error {
	return r.DB.Create(answer).Error
}

func (r *ExamRepository) CountQuestions(examID uint) (int64, error) {
	var n int64
	err := r.DB.Model(&model.Question{}).Where("exam_id = ?", examID).Count(&n).Error
	return n, err
}
