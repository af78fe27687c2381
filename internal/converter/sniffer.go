package converter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// The sniffer is best effort by design: a wrong guess is tolerated downstream
// by extraction failing gracefully, so it never returns an error.

const sniffWindow = 1000

var jsonContentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\s*[\{\[]`),
	regexp.MustCompile(`"[^"]*"\s*:\s*[\{\[\"]`),
	regexp.MustCompile(`^\s*\{\s*"[^"]*"`),
}

var htmlContentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<!DOCTYPE\s+html`),
	regexp.MustCompile(`(?i)<html[^>]*>`),
	regexp.MustCompile(`(?i)<head[^>]*>`),
	regexp.MustCompile(`(?i)<body[^>]*>`),
	regexp.MustCompile(`(?i)<div[^>]*>`),
	regexp.MustCompile(`(?i)<script[^>]*>`),
	regexp.MustCompile(`(?i)let\s+data\s*=`),
	regexp.MustCompile(`(?i)var\s+data\s*=`),
	regexp.MustCompile(`(?i)const\s+data\s*=`),
}

var hybridPattern = regexp.MustCompile(`(?s)<.*>.*[\{\[].*<.*>`)

// DetectFormat decides whether a file is JSON or HTML-with-embedded-JSON.
// Detection order: extension, content heuristics on the first ~1000 bytes,
// hybrid tag-around-braces heuristic, a JSON parse attempt, then an HTML
// fallback. A read error falls back to a filename substring heuristic.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".html", ".htm":
		return FormatHTML
	}

	content, err := readSniffWindow(path)
	if err != nil {
		if strings.Contains(strings.ToLower(filepath.Base(path)), "json") {
			return FormatJSON
		}
		return FormatHTML
	}

	return sniffContent(content)
}

func sniffContent(content string) Format {
	content = strings.TrimSpace(content)

	for _, p := range jsonContentPatterns {
		if p.MatchString(content) {
			return FormatJSON
		}
	}

	for _, p := range htmlContentPatterns {
		if p.MatchString(content) {
			return FormatHTML
		}
	}

	if hybridPattern.MatchString(content) {
		return FormatHTML
	}

	if json.Valid([]byte(content)) {
		return FormatJSON
	}

	return FormatHTML
}

func readSniffWindow(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := make([]byte, sniffWindow)
	n, err := f.Read(buf)
	if n == 0 && err != nil {
		return "", err
	}
	return string(buf[:n]), nil
}
