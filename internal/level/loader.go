package level

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brick-arena/internal/level/formats"
)

// Loader handles loading levels from a directory.
type Loader struct {
	Root   string
	Logger *log.Logger // Optional; reports skipped files
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files. Files that fail to
// parse are skipped. Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !slices.Contains(formats.FormatExtensions(), ext) {
			return nil
		}

		level, err := l.LoadFile(path)
		if err != nil {
			if l.Logger != nil {
				l.Logger.Warn("skipping level file", "path", path, "err", err)
			}
			return nil
		}

		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadFile loads a single level file and checks that its map parses.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	if _, err := ParseGrid(parsed.Map, 1, 1); err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	return Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Map:      parsed.Map,
		Metadata: parsed.Metadata,
		FilePath: path,
	}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

// Catalog lists the built-in levels followed by those found under dir.
// A directory level whose ID matches a built-in one replaces it.
func Catalog(dir string, logger *log.Logger) ([]Level, error) {
	levels := Builtin()
	if dir == "" {
		return levels, nil
	}
	loader := NewLoader(dir)
	loader.Logger = logger
	found, err := loader.LoadAll()
	if err != nil {
		return nil, err
	}
	for _, f := range found {
		if i := slices.IndexFunc(levels, func(l Level) bool { return l.ID == f.ID }); i >= 0 {
			levels[i] = f
			continue
		}
		levels = append(levels, f)
	}
	return levels, nil
}

// Find looks a level up by ID among the built-in levels and those under dir.
func Find(id, dir string, logger *log.Logger) (Level, error) {
	if id == "" {
		id = DefaultID
	}
	levels, err := Catalog(dir, logger)
	if err != nil {
		return Level{}, err
	}
	for _, l := range levels {
		if l.ID == id {
			return l.Clone(), nil
		}
	}
	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}
