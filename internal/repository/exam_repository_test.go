package repository

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"exam_ingest_backend/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}

	err = db.AutoMigrate(
		&model.Module{},
		&model.Topic{},
		&model.Exam{},
		&model.Question{},
		&model.Answer{},
		&model.ImportRun{},
	)
	if err != nil {
		t.Fatalf("migrating: %v", err)
	}

	return db
}

func TestFindExamByTitle(t *testing.T) {
	db := setupDB(t)
	repo := NewExamRepository(db)

	if err := repo.CreateExam(&model.Exam{Title: "Basics", IsActive: true}); err != nil {
		t.Fatalf("creating exam: %v", err)
	}

	exam, err := repo.FindExamByTitle("Basics")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if exam.Title != "Basics" {
		t.Errorf("title = %q", exam.Title)
	}

	if _, err := repo.FindExamByTitle("Missing"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("want ErrRecordNotFound, got %v", err)
	}
}

func TestListExamsFiltersInactive(t *testing.T) {
	db := setupDB(t)
	repo := NewExamRepository(db)

	for i := 0; i < 3; i++ {
		if err := repo.CreateExam(&model.Exam{Title: fmt.Sprintf("Active %d", i), IsActive: true}); err != nil {
			t.Fatalf("creating exam: %v", err)
		}
	}
	if err := repo.CreateExam(&model.Exam{Title: "Retired", IsActive: false}); err != nil {
		t.Fatalf("creating exam: %v", err)
	}

	exams, total, err := repo.ListExams(1, 10, true)
	if err != nil {
		t.Fatalf("listing: %v", err)
	}
	if total != 3 || len(exams) != 3 {
		t.Errorf("got %d exams, total %d, want 3", len(exams), total)
	}

	_, total, err = repo.ListExams(1, 10, false)
	if err != nil {
		t.Fatalf("listing all: %v", err)
	}
	if total != 4 {
		t.Errorf("total = %d, want 4", total)
	}

	page2, _, err := repo.ListExams(2, 2, true)
	if err != nil {
		t.Fatalf("paging: %v", err)
	}
	if len(page2) != 1 {
		t.Errorf("page 2 has %d exams, want 1", len(page2))
	}
}

func TestListQuestionsOrdering(t *testing.T) {
	db := setupDB(t)
	repo := NewExamRepository(db)

	exam := &model.Exam{Title: "Ordered", IsActive: true}
	if err := repo.CreateExam(exam); err != nil {
		t.Fatalf("creating exam: %v", err)
	}

	// Inserted out of display order on purpose.
	for _, order := range []int{3, 1, 2} {
		q := &model.Question{
			ExamID:     exam.ID,
			OriginalID: fmt.Sprintf("q%d", order),
			Text:       fmt.Sprintf("Question %d", order),
			Order:      order,
		}
		if err := repo.CreateQuestion(q); err != nil {
			t.Fatalf("creating question: %v", err)
		}
		for j := 0; j < 2; j++ {
			a := &model.Answer{
				QuestionID: q.ID,
				OriginalID: fmt.Sprintf("q%d_%d", order, j),
				Text:       "option",
				Order:      2 - j,
			}
			if err := repo.CreateAnswer(a); err != nil {
				t.Fatalf("creating answer: %v", err)
			}
		}
	}

	questions, err := repo.ListQuestions(exam.ID)
	if err != nil {
		t.Fatalf("listing questions: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("got %d questions", len(questions))
	}
	for i, q := range questions {
		if q.Order != i+1 {
			t.Errorf("position %d has order %d", i, q.Order)
		}
		for j, a := range q.Answers {
			if a.Order != j+1 {
				t.Errorf("question %d answer %d has order %d", i, j, a.Order)
			}
		}
	}

	n, err := repo.CountQuestions(exam.ID)
	if err != nil {
		t.Fatalf("counting: %v", err)
	}
	if n != 3 {
		t.Errorf("count = %d", n)
	}
}

func TestGetOrCreateModuleIdempotent(t *testing.T) {
	db := setupDB(t)
	repo := NewModuleRepository(db)

	first, err := repo.GetOrCreateModule("Python Fundamentals", "desc", 1)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := repo.GetOrCreateModule("Python Fundamentals", "other desc", 9)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("module duplicated: %d vs %d", first.ID, second.ID)
	}

	topicA, err := repo.GetOrCreateTopic(first.ID, "Basics", "desc", 1)
	if err != nil {
		t.Fatalf("topic: %v", err)
	}
	topicB, err := repo.GetOrCreateTopic(first.ID, "Basics", "desc", 1)
	if err != nil {
		t.Fatalf("topic again: %v", err)
	}
	if topicA.ID != topicB.ID {
		t.Errorf("topic duplicated: %d vs %d", topicA.ID, topicB.ID)
	}

	var count int64
	db.Model(&model.Module{}).Count(&count)
	if count != 1 {
		t.Errorf("modules = %d", count)
	}
}
