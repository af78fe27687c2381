package converter

import (
	"fmt"
	"strings"
	"time"
)

// Summary aggregates per-file outcomes into run-level statistics.
type Summary struct {
	TotalFiles        int            `json:"totalFiles"`
	Succeeded         int            `json:"succeeded"`
	Failed            int            `json:"failed"`
	ExamsCreated      int            `json:"examsCreated"`
	QuestionsImported int            `json:"questionsImported"`
	AnswersImported   int            `json:"answersImported"`
	DuplicatesSkipped int            `json:"duplicatesSkipped"`
	FileTypes         map[string]int `json:"fileTypes"`
	SuccessRate       float64        `json:"successRate"` // percent
}

// DetectFileType classifies a source file as quiz, test, exam or assessment
// from its filename.
func DetectFileType(filename string) string {
	name := strings.ToLower(filename)
	switch {
	case strings.Contains(name, "quiz"):
		return "quiz"
	case strings.Contains(name, "test"):
		return "test"
	case strings.Contains(name, "exam"):
		return "exam"
	default:
		return "assessment"
	}
}

func Summarize(results []ImportResult) Summary {
	s := Summary{
		TotalFiles: len(results),
		FileTypes:  map[string]int{},
	}

	for _, r := range results {
		switch r.Status {
		case StatusFailed:
			s.Failed++
		case StatusImported:
			s.Succeeded++
			s.ExamsCreated++
		case StatusSkippedDuplicate:
			s.Succeeded++
		}

		s.QuestionsImported += r.QuestionsImported
		s.AnswersImported += r.AnswersImported
		s.DuplicatesSkipped += r.DuplicatesSkipped

		fileType := r.FileType
		if fileType == "" {
			fileType = DetectFileType(r.SourceFile)
		}
		s.FileTypes[fileType]++
	}

	if s.TotalFiles > 0 {
		s.SuccessRate = float64(s.Succeeded) / float64(s.TotalFiles) * 100
	}
	return s
}

// RenderReport formats a summary plus the per-file breakdown as a plain-text
// report. Read-side only; no side effects.
func RenderReport(s Summary, results []ImportResult) string {
	var b strings.Builder
	bar := strings.Repeat("=", 60)
	sub := strings.Repeat("-", 40)

	fmt.Fprintln(&b, bar)
	fmt.Fprintln(&b, "EXAM INGESTION REPORT")
	fmt.Fprintln(&b, bar)
	fmt.Fprintf(&b, "Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))

	fmt.Fprintln(&b, "SUMMARY:")
	fmt.Fprintln(&b, sub)
	fmt.Fprintf(&b, "Files processed: %d\n", s.TotalFiles)
	fmt.Fprintf(&b, "Succeeded: %d\n", s.Succeeded)
	fmt.Fprintf(&b, "Failed: %d\n", s.Failed)
	fmt.Fprintf(&b, "Exams created: %d\n", s.ExamsCreated)
	fmt.Fprintf(&b, "Questions imported: %d\n", s.QuestionsImported)
	fmt.Fprintf(&b, "Answers imported: %d\n", s.AnswersImported)
	fmt.Fprintf(&b, "Duplicates skipped: %d\n", s.DuplicatesSkipped)
	fmt.Fprintf(&b, "Success rate: %.1f%%\n\n", s.SuccessRate)

	fmt.Fprintln(&b, "FILE TYPE DISTRIBUTION:")
	fmt.Fprintln(&b, sub)
	for _, t := range []string{"quiz", "test", "exam", "assessment"} {
		if n := s.FileTypes[t]; n > 0 {
			fmt.Fprintf(&b, "%s: %d\n", strings.ToUpper(t[:1])+t[1:], n)
		}
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "DETAILED RESULTS:")
	fmt.Fprintln(&b, sub)
	for _, r := range results {
		status := "SUCCESS"
		if r.Status == StatusFailed {
			status = "FAILED"
		}
		fmt.Fprintf(&b, "%s: %s\n", status, r.SourceFile)

		if r.Status == StatusSkippedDuplicate {
			fmt.Fprintf(&b, "  - Skipped: exam %q already exists\n", r.ExamTitle)
		}
		if r.Status == StatusImported {
			fmt.Fprintf(&b, "  - Questions: %d, Answers: %d\n", r.QuestionsImported, r.AnswersImported)
		}
		for _, e := range r.Errors {
			fmt.Fprintf(&b, "  - ERROR: %s\n", e)
		}
	}

	return b.String()
}
