package level

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/brick-arena/internal/level/formats"
)

func writeLevel(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func testLevelDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeLevel(t, filepath.Join(dir, "b.yaml"), "id: corridor\nname: Corridor\nmap:\n  - \"#S#S#\"\n  - \"M   L\"\n  - \"     \"\n")
	writeLevel(t, filepath.Join(dir, "nested", "a.yml"), "id: alpha\nmap:\n  - \"###\"\n  - \"   \"\n")
	writeLevel(t, filepath.Join(dir, "broken.yaml"), "id: broken\nmap:\n  - \"##\"\n  - \"#\"\n")
	writeLevel(t, filepath.Join(dir, "noid.yaml"), "map:\n  - \"#\"\n")
	writeLevel(t, filepath.Join(dir, "notes.txt"), "not a level")
	return dir
}

func TestLoaderLoadAll(t *testing.T) {
	levels, err := NewLoader(testLevelDir(t)).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(levels) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(levels))
	}
	if levels[0].ID != "alpha" || levels[1].ID != "corridor" {
		t.Errorf("levels not sorted by id: %s, %s", levels[0].ID, levels[1].ID)
	}
	if levels[0].Name != "alpha" {
		t.Errorf("missing name should default to the id, got %q", levels[0].Name)
	}
	if filepath.Base(levels[1].FilePath) != "b.yaml" {
		t.Errorf("FilePath = %q", levels[1].FilePath)
	}
}

func TestLoaderLoadByID(t *testing.T) {
	loader := NewLoader(testLevelDir(t))

	lvl, err := loader.LoadByID("corridor")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if cols, rows := lvl.Size(); cols != 5 || rows != 3 {
		t.Errorf("expected 5x3, got %dx%d", cols, rows)
	}

	if _, err := loader.LoadByID("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestLoaderLoadFileErrors(t *testing.T) {
	dir := testLevelDir(t)
	loader := NewLoader(dir)

	if _, err := loader.LoadFile(filepath.Join(dir, "broken.yaml")); !errors.Is(err, ErrRaggedMap) {
		t.Errorf("broken map: err = %v, want ErrRaggedMap", err)
	}
	if _, err := loader.LoadFile(filepath.Join(dir, "absent.yaml")); err == nil {
		t.Error("expected error for a missing file")
	}
	if _, err := loader.LoadFile(filepath.Join(dir, "notes.txt")); err == nil {
		t.Error("expected error for an unsupported extension")
	}
}

func TestLoaderMissingRoot(t *testing.T) {
	if _, err := NewLoader(filepath.Join(t.TempDir(), "nope")).LoadAll(); err == nil {
		t.Error("expected error for a missing directory")
	}
}

func TestCatalogAndFind(t *testing.T) {
	dir := testLevelDir(t)
	writeLevel(t, filepath.Join(dir, "classic.yaml"), "id: classic\nname: My Classic\nmap:\n  - \"#\"\n")

	levels, err := Catalog(dir, nil)
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	if want := len(Builtin()) + 2; len(levels) != want {
		t.Errorf("catalog has %d levels, want %d", len(levels), want)
	}

	l, err := Find("", dir, nil)
	if err != nil {
		t.Fatalf("Find default: %v", err)
	}
	if l.Name != "My Classic" {
		t.Errorf("directory level should override the built-in one, got %q", l.Name)
	}

	if _, err := Find("corridor", dir, nil); err != nil {
		t.Errorf("Find corridor: %v", err)
	}
	if _, err := Find("corridor", "", nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("without a directory: err = %v, want ErrNotFound", err)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	l, _ := BuiltinByID("classic")
	data, err := formats.MarshalYAML(formats.Level{ID: l.ID, Name: l.Name, Map: l.Map})
	if err != nil {
		t.Fatalf("MarshalYAML: %v", err)
	}
	path := filepath.Join(t.TempDir(), "classic.yaml")
	writeLevel(t, path, string(data))

	got, err := NewLoader(filepath.Dir(path)).LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got.Name != l.Name || len(got.Map) != len(l.Map) || got.Map[5] != l.Map[5] || got.Map[16] != "     " {
		t.Errorf("round trip changed the level: %+v", got)
	}
}
