package converter

import (
	"regexp"
	"strings"
)

// Weighted multi-answer cues, evaluated against the lower-cased question text.
// Patterns with a capture group contribute a parsed count via numberWords;
// patterns without one set the AllAnswers sentinel directly.
type answerPattern struct {
	re         *regexp.Regexp
	confidence float64
}

var multiAnswerPatterns = []answerPattern{
	// Explicit verb + count instructions.
	{regexp.MustCompile(`select\s+(\w+)\s+(?:of\s+the\s+)?(?:correct\s+)?answers?`), 0.95},
	{regexp.MustCompile(`choose\s+(\w+)\s+(?:of\s+the\s+)?(?:correct\s+)?answers?`), 0.95},
	{regexp.MustCompile(`pick\s+(\w+)\s+(?:of\s+the\s+)?(?:correct\s+)?answers?`), 0.90},
	{regexp.MustCompile(`mark\s+(\w+)\s+(?:of\s+the\s+)?(?:correct\s+)?answers?`), 0.90},
	{regexp.MustCompile(`identify\s+(\w+)\s+(?:correct\s+)?answers?`), 0.85},

	// Parenthetical instructions.
	{regexp.MustCompile(`\(\s*select\s+(\w+)\s*\)`), 0.98},
	{regexp.MustCompile(`\(\s*choose\s+(\w+)\s*\)`), 0.98},
	{regexp.MustCompile(`\(\s*mark\s+(\w+)\s*\)`), 0.95},

	// "All that apply" phrasings; no capture group, count becomes AllAnswers.
	{regexp.MustCompile(`mark\s+all\s+that\s+apply`), 0.99},
	{regexp.MustCompile(`select\s+all\s+that\s+apply`), 0.99},
	{regexp.MustCompile(`choose\s+all\s+that\s+apply`), 0.99},
	{regexp.MustCompile(`identify\s+all\s+that\s+apply`), 0.95},

	// Structural "which N ... are correct/true" phrasing.
	{regexp.MustCompile(`which\s+(\w+)\s+(?:of\s+the\s+following\s+)?(?:are\s+|statements?\s+are\s+)correct`), 0.85},
	{regexp.MustCompile(`which\s+(?:of\s+the\s+following\s+)?(\w+)\s+statements?\s+are\s+true`), 0.85},

	// Weaker hints.
	{regexp.MustCompile(`what\s+are\s+the\s+(\w+)`), 0.70},
	{regexp.MustCompile(`which\s+ones?\s+are`), 0.75},

	// Checkbox glyphs appearing in the question text itself.
	{regexp.MustCompile(`\[\s*\]\s*`), 0.60},
	{regexp.MustCompile(`☐`), 0.80},
	{regexp.MustCompile(`□`), 0.80},
}

var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"all": AllAnswers, "any": AllAnswers, "multiple": AllAnswers,
}

// Plural phrasings checked independently of the weighted table above.
var pluralPatterns = []*regexp.Regexp{
	regexp.MustCompile(`which\s+(?:of\s+the\s+following\s+)?(?:statements?|options?|items?)\s+are`),
	regexp.MustCompile(`what\s+are\s+the`),
	regexp.MustCompile(`identify\s+the\s+(?:correct\s+)?(?:statements?|options?)`),
	regexp.MustCompile(`select\s+(?:the\s+)?(?:correct\s+)?(?:statements?|options?)`),
}

var checkboxGlyphs = []string{"[]", "☐", "□"}
var radioGlyphs = []string{"()", "○", "◯"}

// Classify decides whether a question expects one answer or several, and how
// many, from three independent signals: the weighted pattern table, option
// glyph analysis, and plural phrasing. Pure and deterministic.
func Classify(questionText string, options []string) CardinalityResult {
	text := strings.ToLower(questionText)

	highestConfidence := 0.0
	detectedCount := 1

	for _, p := range multiAnswerPatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil || p.confidence <= highestConfidence {
			continue
		}
		highestConfidence = p.confidence
		if len(m) > 1 {
			if n, ok := numberWords[strings.ToLower(m[1])]; ok {
				detectedCount = n
			} else {
				detectedCount = 1
			}
		} else {
			detectedCount = AllAnswers
		}
	}

	optionConfidence := 0.0
	if len(options) > 0 {
		checkbox, radio := 0, 0
		for _, option := range options {
			optionText := strings.ToLower(option)
			if containsAny(optionText, checkboxGlyphs) {
				checkbox++
			} else if containsAny(optionText, radioGlyphs) {
				radio++
			}
		}
		if checkbox > radio {
			optionConfidence = 0.70
			if detectedCount == 1 {
				detectedCount = 2 // conservative guess when only glyphs suggest multi
			}
		}
	}

	structuralConfidence := 0.0
	for _, p := range pluralPatterns {
		if p.MatchString(text) {
			structuralConfidence = 0.60
			if detectedCount == 1 {
				detectedCount = 2
			}
			break
		}
	}

	finalConfidence := highestConfidence
	if optionConfidence > finalConfidence {
		finalConfidence = optionConfidence
	}
	if structuralConfidence > finalConfidence {
		finalConfidence = structuralConfidence
	}

	if detectedCount > 1 || finalConfidence >= 0.70 {
		required := detectedCount
		if detectedCount >= AllAnswers {
			if len(options) > 0 {
				required = len(options)
			} else {
				required = 2
			}
		}

		method := "structural"
		if highestConfidence == finalConfidence {
			method = "pattern"
		}

		return CardinalityResult{
			Type:            "multi-select",
			RequiredAnswers: required,
			Confidence:      finalConfidence,
			DetectionMethod: method,
		}
	}

	return CardinalityResult{
		Type:            "single-select",
		RequiredAnswers: 1,
		Confidence:      1.0 - finalConfidence,
		DetectionMethod: "default",
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
