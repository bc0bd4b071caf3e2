package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_TopLevelArray(t *testing.T) {
	data := []byte(`[
		{"title": "One", "url": "https://example.com/1"},
		{"title": "Two", "url": "https://example.com/2"}
	]`)

	records, err := Load(data)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if title, _ := records[0].Text("title"); title != "One" {
		t.Errorf("expected title 'One', got %q", title)
	}
}

func TestLoad_ArticlesWrapper(t *testing.T) {
	data := []byte(`{
		"source": "feed",
		"articles": [
			{"title": "Wrapped", "url": "https://example.com/w"}
		]
	}`)

	records, err := Load(data)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
}

func TestLoad_EmptyArray(t *testing.T) {
	records, err := Load([]byte(`[]`))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func TestLoad_UnrecognizedShapes(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bare string", `"just a string"`},
		{"bare number", `42`},
		{"null", `null`},
		{"object without articles", `{"title": "not wrapped"}`},
		{"articles not an array", `{"articles": {"title": "x"}}`},
		{"empty input", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.data))
			if !errors.Is(err, ErrUnrecognizedShape) {
				t.Errorf("expected ErrUnrecognizedShape, got %v", err)
			}
		})
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	_, err := Load([]byte(`[{"title": `))
	if err == nil {
		t.Fatal("expected error for truncated JSON")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.json")
	content := `[{"title": "From file", "url": "https://example.com/f"}]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	records, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
