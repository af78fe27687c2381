package converter

import "fmt"

// Validate checks a RawExam for minimum structural soundness before it may
// reach persistence. It accumulates every violation instead of
// short-circuiting, and it is deliberately permissive: only a missing or empty
// question list is fatal. Everything else (missing ids, too few options, an
// unknown answer key) is surfaced as an issue while import proceeds, so messy
// real-world files still get ingested.
func Validate(raw *RawExam, source string) (bool, []string) {
	var issues []string

	if raw == nil {
		return false, []string{"No data extracted from file"}
	}

	if !raw.HasQuestionsKey {
		issues = append(issues, "Missing 'questions' field in exam data")
	}

	if len(raw.Questions) == 0 {
		issues = append(issues, "No questions found in exam data")
		return false, issues
	}

	for i, q := range raw.Questions {
		if q.Text == "" {
			issues = append(issues, fmt.Sprintf("Question %d: Missing question text", i))
		}

		switch {
		case q.Options == nil:
			issues = append(issues, fmt.Sprintf("Question %d: Missing options", i))
		case len(q.Options) == 0:
			issues = append(issues, fmt.Sprintf("Question %d: Empty options list", i))
		case len(q.Options) < 2:
			issues = append(issues, fmt.Sprintf("Question %d: Insufficient options (need at least 2)", i))
		}

		if q.ExternalID == "" {
			issues = append(issues, fmt.Sprintf("Question %d: Missing question ID", i))
		}

		if !q.HasAnswers {
			issues = append(issues, fmt.Sprintf("Question %d: No correct answer indicator (answer key unknown)", i))
		}
	}

	return true, issues
}
