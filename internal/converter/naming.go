package converter

import (
	"path/filepath"
	"strings"
)

// DeriveExamTitle derives a deterministic exam title: an in-document title or
// name wins, otherwise a cleaned, capitalized version of the filename stem.
// The title is the exam-level duplicate-detection key, so it must be stable
// for identical inputs.
func DeriveExamTitle(raw *RawExam) string {
	if raw.Title != "" {
		return raw.Title
	}
	if raw.Name != "" {
		return raw.Name
	}
	return TitleFromFilename(raw.SourceFile)
}

func TitleFromFilename(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	cleaned := strings.NewReplacer("_", " ", "-", " ").Replace(stem)

	words := strings.Fields(cleaned)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
