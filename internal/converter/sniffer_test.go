package converter

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	return path
}

func TestDetectFormat_ExtensionWinsOverContent(t *testing.T) {
	path := writeTemp(t, "x.json", "<!DOCTYPE html><html></html>")
	if got := DetectFormat(path); got != FormatJSON {
		t.Fatalf("expected json for .json extension, got %q", got)
	}

	path = writeTemp(t, "x.html", `{"questions": []}`)
	if got := DetectFormat(path); got != FormatHTML {
		t.Fatalf("expected html for .html extension, got %q", got)
	}
}

func TestDetectFormat_ContentHeuristics(t *testing.T) {
	path := writeTemp(t, "noext", `{"a":1}`)
	if got := DetectFormat(path); got != FormatJSON {
		t.Fatalf("expected json for brace-prefixed content, got %q", got)
	}

	path = writeTemp(t, "page", "<!DOCTYPE html>\n<html><body></body></html>")
	if got := DetectFormat(path); got != FormatHTML {
		t.Fatalf("expected html for doctype content, got %q", got)
	}

	path = writeTemp(t, "script", "let data = {\"questions\": []};")
	// A quoted-key pattern anywhere in the window counts as JSON before the
	// HTML patterns are consulted; this mirrors the detection order.
	if got := DetectFormat(path); got != FormatJSON {
		t.Fatalf("expected json by quoted-key heuristic, got %q", got)
	}
}

func TestDetectFormat_ReadErrorFallsBackToFilename(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "exam_json_dump")
	if got := DetectFormat(missing); got != FormatJSON {
		t.Fatalf("expected json for filename containing 'json', got %q", got)
	}

	missing = filepath.Join(t.TempDir(), "exam_dump")
	if got := DetectFormat(missing); got != FormatHTML {
		t.Fatalf("expected html fallback, got %q", got)
	}
}

func TestDetectFormat_HTMLFallbackForPlainText(t *testing.T) {
	path := writeTemp(t, "notes", "just some plain text, nothing structured")
	if got := DetectFormat(path); got != FormatHTML {
		t.Fatalf("expected html final fallback, got %q", got)
	}
}
