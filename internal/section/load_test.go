package section

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "beam.json")
	data := `{"d": 300, "b1": 150, "b2": 150, "tw": 7, "tf1": 10, "tf2": 10}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	dims, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if dims.D != 300 || dims.Tw != 7 {
		t.Errorf("loaded %+v", dims)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"d": 10, "b1": 150, "b2": 150, "tw": 7, "tf1": 10, "tf2": 10}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(bad); err == nil {
		t.Error("invalid dimensions should be rejected on load")
	}

	if _, err := LoadFromFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("missing file should be an error")
	}
}
