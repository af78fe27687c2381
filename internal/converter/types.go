// Package converter holds the pure core of the exam ingestion pipeline:
// format sniffing, data extraction, answer-cardinality classification,
// validation and run reporting. Nothing in this package touches the database.
package converter

import "errors"

type Format string

const (
	FormatJSON Format = "json"
	FormatHTML Format = "html"
)

var (
	ErrMalformedJSON  = errors.New("malformed JSON")
	ErrNoEmbeddedData = errors.New("no embedded data object found")
)

// RawExam is the transient, normalized shape both extractors produce. It lives
// only for the duration of one file's processing.
type RawExam struct {
	ExternalID       *int
	TimeLimitMinutes *int
	Title            string
	Name             string
	SourceFile       string
	HasQuestionsKey  bool
	TopLevelKeys     []string
	Questions        []RawQuestion
}

type RawQuestion struct {
	ExternalID  string // empty when the source carried no id
	Text        string
	Options     []RawOption
	Correct     []int // indices into Options; nil when the answer key is unknown
	HasAnswers  bool  // true when the source carried any correct-answer indicator
	Explanation string
	Difficulty  int
}

type RawOption struct {
	ID   string
	Text string
}

// CardinalityResult is the classifier's verdict on how many answers a question
// expects. For single-select the confidence is the confidence in the
// single-select conclusion (inverted scale), not a multi-select score.
type CardinalityResult struct {
	Type            string  `json:"type"` // single-select or multi-select
	RequiredAnswers int     `json:"required_answers"`
	Confidence      float64 `json:"confidence"`
	DetectionMethod string  `json:"detection_method"` // pattern, structural or default
}

// AllAnswers is the sentinel count meaning "as many as there are options",
// resolved against the option list once it is known.
const AllAnswers = 99

type ImportStatus string

const (
	StatusImported         ImportStatus = "imported"
	StatusSkippedDuplicate ImportStatus = "skipped_duplicate"
	StatusFailed           ImportStatus = "failed"
)

// ImportResult is the per-file outcome every pipeline failure is folded into;
// no error escapes a batch run.
type ImportResult struct {
	SourceFile        string       `json:"sourceFile"`
	Format            Format       `json:"format"`
	FileType          string       `json:"fileType"` // quiz, test, exam or assessment
	ExamID            *uint        `json:"examId,omitempty"`
	ExamTitle         string       `json:"examTitle,omitempty"`
	QuestionsImported int          `json:"questionsImported"`
	AnswersImported   int          `json:"answersImported"`
	DuplicatesSkipped int          `json:"duplicatesSkipped"`
	Status            ImportStatus `json:"status"`
	Errors            []string     `json:"errors,omitempty"`
	Issues            []string     `json:"issues,omitempty"`
}
