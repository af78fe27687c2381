package converter

import (
	"strings"
	"testing"
)

func TestValidate_NilExamIsFatal(t *testing.T) {
	ok, issues := Validate(nil, "missing.json")
	if ok {
		t.Fatal("expected ok=false for nil exam")
	}
	if len(issues) != 1 {
		t.Fatalf("expected a single issue, got %v", issues)
	}
}

func TestValidate_EmptyQuestionListIsFatal(t *testing.T) {
	raw := &RawExam{HasQuestionsKey: true}
	ok, issues := Validate(raw, "empty.json")
	if ok {
		t.Fatal("expected ok=false for empty question list")
	}
	if len(issues) == 0 {
		t.Fatal("expected issues")
	}
}

func TestValidate_SingleOptionIsValidWithIssues(t *testing.T) {
	raw := &RawExam{
		HasQuestionsKey: true,
		Questions: []RawQuestion{
			{ExternalID: "q1", Text: "Q?", Options: []RawOption{{Text: "only"}}, Correct: []int{0}, HasAnswers: true},
		},
	}

	ok, issues := Validate(raw, "sparse.json")
	if !ok {
		t.Fatal("permissive validator must accept a 1-option question")
	}
	if len(issues) == 0 {
		t.Fatal("expected issues for insufficient options")
	}
	if !containsSubstring(issues, "Insufficient options") {
		t.Fatalf("expected an insufficient-options issue, got %v", issues)
	}
}

func TestValidate_MissingIDAndAnswerKeyAreNonFatal(t *testing.T) {
	raw := &RawExam{
		HasQuestionsKey: true,
		Questions: []RawQuestion{
			{Text: "Q?", Options: []RawOption{{Text: "a"}, {Text: "b"}}},
		},
	}

	ok, issues := Validate(raw, "anon.json")
	if !ok {
		t.Fatal("missing id must not be fatal")
	}
	if !containsSubstring(issues, "Missing question ID") {
		t.Fatalf("expected missing-id issue, got %v", issues)
	}
	if !containsSubstring(issues, "answer key unknown") {
		t.Fatalf("expected answer-key issue, got %v", issues)
	}
}

func TestValidate_CleanExamHasNoIssues(t *testing.T) {
	raw := &RawExam{
		HasQuestionsKey: true,
		Questions: []RawQuestion{
			{ExternalID: "q1", Text: "Q?", Options: []RawOption{{Text: "a"}, {Text: "b"}}, Correct: []int{0}, HasAnswers: true},
		},
	}

	ok, issues := Validate(raw, "clean.json")
	if !ok || len(issues) != 0 {
		t.Fatalf("expected clean validation, got ok=%v issues=%v", ok, issues)
	}
}

func TestValidate_AccumulatesAllViolations(t *testing.T) {
	raw := &RawExam{
		HasQuestionsKey: true,
		Questions: []RawQuestion{
			{Text: "", Options: nil},
			{Text: "Q?", Options: []RawOption{}},
		},
	}

	ok, issues := Validate(raw, "messy.json")
	if !ok {
		t.Fatal("structural issues must not be fatal")
	}
	// Missing text + missing options + missing id + unknown key for q0, then
	// empty options + missing id + unknown key for q1.
	if len(issues) < 6 {
		t.Fatalf("expected accumulated issues, got %v", issues)
	}
}

func containsSubstring(issues []string, sub string) bool {
	for _, issue := range issues {
		if strings.Contains(issue, sub) {
			return true
		}
	}
	return false
}
