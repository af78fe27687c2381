package converter

import (
	"errors"
	"testing"
)

const embeddedHTML = `<!DOCTYPE html>
<html>
<head><title>Practice</title></head>
<body>
<script>
let data = {"questions":[{"question":"Q?","options":["a","b"]}]};
</script>
</body>
</html>`

func TestExtract_EmbeddedLetData(t *testing.T) {
	raw, err := Extract([]byte(embeddedHTML), FormatHTML, "practice.html")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if len(raw.Questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(raw.Questions))
	}
	if len(raw.Questions[0].Options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(raw.Questions[0].Options))
	}
	if raw.Questions[0].Text != "Q?" {
		t.Fatalf("unexpected question text %q", raw.Questions[0].Text)
	}
}

func TestExtract_VarAndConstFallbacks(t *testing.T) {
	for _, decl := range []string{"var", "const"} {
		content := "<html><script>" + decl + ` data = {"questions":[{"question":"Q?","options":["a","b"]}]};</script></html>`
		raw, err := Extract([]byte(content), FormatHTML, "f.html")
		if err != nil {
			t.Fatalf("%s declaration: extract failed: %v", decl, err)
		}
		if len(raw.Questions) != 1 {
			t.Fatalf("%s declaration: expected 1 question, got %d", decl, len(raw.Questions))
		}
	}
}

func TestExtract_OnlyFirstEmbeddedObjectIsUsed(t *testing.T) {
	content := `<script>
let data = {"id": 1, "questions":[{"question":"first","options":["a","b"]}]};
let data = {"id": 2, "questions":[{"question":"second","options":["a","b"]}]};
</script>`
	raw, err := Extract([]byte(content), FormatHTML, "f.html")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if raw.ExternalID == nil || *raw.ExternalID != 1 {
		t.Fatalf("expected first embedded object, got %+v", raw.ExternalID)
	}
	if raw.Questions[0].Text != "first" {
		t.Fatalf("expected first question, got %q", raw.Questions[0].Text)
	}
}

func TestExtract_NoEmbeddedData(t *testing.T) {
	_, err := Extract([]byte("<html><body>nothing here</body></html>"), FormatHTML, "f.html")
	if !errors.Is(err, ErrNoEmbeddedData) {
		t.Fatalf("expected ErrNoEmbeddedData, got %v", err)
	}
}

func TestExtract_MalformedJSON(t *testing.T) {
	_, err := Extract([]byte(`{"questions": [`), FormatJSON, "f.json")
	if !errors.Is(err, ErrMalformedJSON) {
		t.Fatalf("expected ErrMalformedJSON, got %v", err)
	}
}

func TestExtract_TopLevelMetadata(t *testing.T) {
	content := `{"id": 7, "timeLimitInMinutes": 45, "title": "Module Quiz", "questions":[{"question":"Q?","options":["a","b"]}]}`
	raw, err := Extract([]byte(content), FormatJSON, "quiz.json")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if raw.ExternalID == nil || *raw.ExternalID != 7 {
		t.Fatalf("expected external id 7, got %+v", raw.ExternalID)
	}
	if raw.TimeLimitMinutes == nil || *raw.TimeLimitMinutes != 45 {
		t.Fatalf("expected time limit 45, got %+v", raw.TimeLimitMinutes)
	}
	if raw.Title != "Module Quiz" {
		t.Fatalf("unexpected title %q", raw.Title)
	}
	if !raw.HasQuestionsKey {
		t.Fatal("expected HasQuestionsKey")
	}
}

func TestExtract_CorrectAsBareIntBecomesList(t *testing.T) {
	content := `{"questions":[{"id": "q1", "question":"Q?", "options":["a","b","c"], "correct": 2}]}`
	raw, err := Extract([]byte(content), FormatJSON, "f.json")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	q := raw.Questions[0]
	if !q.HasAnswers {
		t.Fatal("expected answer key present")
	}
	if len(q.Correct) != 1 || q.Correct[0] != 2 {
		t.Fatalf("expected correct [2], got %v", q.Correct)
	}
}

func TestExtract_CorrectAsList(t *testing.T) {
	content := `{"questions":[{"question":"Q?", "options":["a","b","c"], "correct": [0, 2]}]}`
	raw, err := Extract([]byte(content), FormatJSON, "f.json")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	q := raw.Questions[0]
	if len(q.Correct) != 2 || q.Correct[0] != 0 || q.Correct[1] != 2 {
		t.Fatalf("expected correct [0 2], got %v", q.Correct)
	}
}

func TestExtract_ObjectOptionsAndFlags(t *testing.T) {
	content := `{"questions":[{"id": 3, "question":"Q?", "options":[
		{"option": "alpha", "correct": true},
		{"text": "beta"},
		{"option": "gamma", "isCorrect": true}
	]}]}`
	raw, err := Extract([]byte(content), FormatJSON, "f.json")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	q := raw.Questions[0]
	if q.ExternalID != "3" {
		t.Fatalf("expected numeric id normalized to string, got %q", q.ExternalID)
	}
	if q.Options[0].Text != "alpha" || q.Options[1].Text != "beta" || q.Options[2].Text != "gamma" {
		t.Fatalf("unexpected option texts: %+v", q.Options)
	}
	if len(q.Correct) != 2 || q.Correct[0] != 0 || q.Correct[1] != 2 {
		t.Fatalf("expected per-option flags folded into [0 2], got %v", q.Correct)
	}
}

func TestExtract_AnswersFieldAsOptionAlias(t *testing.T) {
	content := `{"questions":[{"question":"Q?", "answers":["a","b"]}]}`
	raw, err := Extract([]byte(content), FormatJSON, "f.json")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if len(raw.Questions[0].Options) != 2 {
		t.Fatalf("expected answers alias to populate options, got %+v", raw.Questions[0].Options)
	}
}

func TestExtract_MissingAnswerKey(t *testing.T) {
	content := `{"questions":[{"question":"Q?", "options":["a","b"]}]}`
	raw, err := Extract([]byte(content), FormatJSON, "f.json")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	q := raw.Questions[0]
	if q.HasAnswers {
		t.Fatal("expected no answer key")
	}
	if q.Correct != nil {
		t.Fatalf("expected nil correct list, got %v", q.Correct)
	}
}
