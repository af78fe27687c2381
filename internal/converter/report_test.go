package converter

import (
	"strings"
	"testing"
)

func TestDetectFileType(t *testing.T) {
	cases := map[string]string{
		"module_quiz_3.json":  "quiz",
		"practice_test.html":  "test",
		"pe1_exam_final.json": "exam",
		"random_material.txt": "assessment",
	}
	for name, want := range cases {
		if got := DetectFileType(name); got != want {
			t.Fatalf("%s: expected %q, got %q", name, want, got)
		}
	}
}

func TestSummarize(t *testing.T) {
	examID := uint(1)
	results := []ImportResult{
		{SourceFile: "a_quiz.json", Status: StatusImported, ExamID: &examID, QuestionsImported: 10, AnswersImported: 40},
		{SourceFile: "b_exam.html", Status: StatusImported, QuestionsImported: 5, AnswersImported: 20, DuplicatesSkipped: 1},
		{SourceFile: "c_exam.html", Status: StatusSkippedDuplicate, DuplicatesSkipped: 1},
		{SourceFile: "d.json", Status: StatusFailed, Errors: []string{"malformed JSON"}},
	}

	s := Summarize(results)

	if s.TotalFiles != 4 {
		t.Fatalf("expected 4 files, got %d", s.TotalFiles)
	}
	if s.Succeeded != 3 || s.Failed != 1 {
		t.Fatalf("unexpected success/fail split: %+v", s)
	}
	if s.ExamsCreated != 2 {
		t.Fatalf("expected 2 exams created, got %d", s.ExamsCreated)
	}
	if s.QuestionsImported != 15 || s.AnswersImported != 60 {
		t.Fatalf("unexpected totals: %+v", s)
	}
	if s.DuplicatesSkipped != 2 {
		t.Fatalf("expected 2 duplicates skipped, got %d", s.DuplicatesSkipped)
	}
	if s.SuccessRate != 75.0 {
		t.Fatalf("expected 75%% success rate, got %v", s.SuccessRate)
	}
	if s.FileTypes["quiz"] != 1 || s.FileTypes["exam"] != 2 || s.FileTypes["assessment"] != 1 {
		t.Fatalf("unexpected file type distribution: %v", s.FileTypes)
	}
}

func TestRenderReport(t *testing.T) {
	results := []ImportResult{
		{SourceFile: "a_quiz.json", Status: StatusImported, QuestionsImported: 3, AnswersImported: 12},
		{SourceFile: "broken.json", Status: StatusFailed, Errors: []string{"malformed JSON"}},
	}
	report := RenderReport(Summarize(results), results)

	for _, want := range []string{
		"EXAM INGESTION REPORT",
		"Files processed: 2",
		"Success rate: 50.0%",
		"SUCCESS: a_quiz.json",
		"FAILED: broken.json",
		"ERROR: malformed JSON",
	} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}
}
