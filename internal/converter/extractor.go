package converter

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
)

// Embedded-data assignment patterns, tried in this order. Only the first match
// in the file is used; later embedded objects are ignored.
var embeddedDataPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?si)let\s+data\s*=\s*(\{.*?\})\s*;`),
	regexp.MustCompile(`(?si)var\s+data\s*=\s*(\{.*?\})\s*;`),
	regexp.MustCompile(`(?si)const\s+data\s*=\s*(\{.*?\})\s*;`),
}

// ExtractFile reads path and extracts a RawExam according to the sniffed format.
func ExtractFile(path string, format Format) (*RawExam, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Extract(content, format, path)
}

// Extract pulls a normalized RawExam out of either a pure JSON document or an
// HTML document with an embedded script-assigned data object.
func Extract(content []byte, format Format, source string) (*RawExam, error) {
	payload := content
	if format == FormatHTML {
		captured, ok := findEmbeddedObject(content)
		if !ok {
			return nil, ErrNoEmbeddedData
		}
		payload = captured
	}

	raw, err := decodeExam(payload, source)
	if err != nil {
		if format == FormatHTML {
			// The captured text did not parse; treat it the same as no match.
			return nil, fmt.Errorf("%w: %v", ErrNoEmbeddedData, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	return raw, nil
}

func findEmbeddedObject(content []byte) ([]byte, bool) {
	for _, p := range embeddedDataPatterns {
		if m := p.FindSubmatch(content); m != nil {
			return m[1], true
		}
	}
	return nil, false
}

// Loose document shapes. Exam files are hand-authored and inconsistent: ids may
// be numbers or strings, options may be plain strings or objects, the answer
// key may be a single index, a list, or per-option flags.
type looseDoc struct {
	ID                 *int            `json:"id"`
	TimeLimitInMinutes *int            `json:"timeLimitInMinutes"`
	Title              string          `json:"title"`
	Name               string          `json:"name"`
	Questions          []looseQuestion `json:"questions"`
}

type looseQuestion struct {
	ID          json.RawMessage   `json:"id"`
	Question    string            `json:"question"`
	Options     []json.RawMessage `json:"options"`
	Answers     []json.RawMessage `json:"answers"`
	Correct     json.RawMessage   `json:"correct"`
	Explanation string            `json:"explanation"`
	Difficulty  int               `json:"difficulty"`
}

type looseOption struct {
	ID        json.RawMessage `json:"id"`
	Option    string          `json:"option"`
	Text      string          `json:"text"`
	Correct   *bool           `json:"correct"`
	IsCorrect *bool           `json:"isCorrect"`
}

func decodeExam(payload []byte, source string) (*RawExam, error) {
	var keyed map[string]json.RawMessage
	if err := json.Unmarshal(payload, &keyed); err != nil {
		return nil, err
	}

	var doc looseDoc
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, err
	}

	_, hasQuestions := keyed["questions"]

	raw := &RawExam{
		ExternalID:       doc.ID,
		TimeLimitMinutes: doc.TimeLimitInMinutes,
		Title:            doc.Title,
		Name:             doc.Name,
		SourceFile:       source,
		HasQuestionsKey:  hasQuestions,
		TopLevelKeys:     sortedKeys(keyed),
	}

	for _, q := range doc.Questions {
		raw.Questions = append(raw.Questions, normalizeQuestion(q))
	}
	return raw, nil
}

func normalizeQuestion(q looseQuestion) RawQuestion {
	rq := RawQuestion{
		ExternalID:  scalarToString(q.ID),
		Text:        q.Question,
		Explanation: q.Explanation,
		Difficulty:  q.Difficulty,
	}
	if rq.Difficulty == 0 {
		rq.Difficulty = 1
	}

	entries := q.Options
	if len(entries) == 0 {
		entries = q.Answers
	}

	for i, entry := range entries {
		opt, correct := normalizeOption(entry)
		rq.Options = append(rq.Options, opt)
		if correct {
			rq.Correct = append(rq.Correct, i)
			rq.HasAnswers = true
		}
	}

	// A bare integer answer key is canonically a one-element list.
	if indices, ok := decodeCorrect(q.Correct); ok {
		rq.Correct = indices
		rq.HasAnswers = true
	}

	return rq
}

func normalizeOption(entry json.RawMessage) (RawOption, bool) {
	var s string
	if err := json.Unmarshal(entry, &s); err == nil {
		return RawOption{Text: s}, false
	}

	var obj looseOption
	if err := json.Unmarshal(entry, &obj); err == nil {
		text := obj.Option
		if text == "" {
			text = obj.Text
		}
		correct := (obj.Correct != nil && *obj.Correct) || (obj.IsCorrect != nil && *obj.IsCorrect)
		return RawOption{ID: scalarToString(obj.ID), Text: text}, correct
	}

	return RawOption{Text: string(entry)}, false
}

func decodeCorrect(raw json.RawMessage) ([]int, bool) {
	if len(raw) == 0 {
		return nil, false
	}

	var list []int
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, true
	}

	var single int
	if err := json.Unmarshal(raw, &single); err == nil {
		return []int{single}, true
	}

	return nil, false
}

func scalarToString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.Itoa(n)
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	return ""
}

func sortedKeys(m map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
