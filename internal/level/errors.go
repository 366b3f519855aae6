package level

import "errors"

var (
	// ErrEmptyMap is returned for a map without rows or columns.
	ErrEmptyMap = errors.New("level: empty map")
	// ErrRaggedMap is returned when map rows differ in length.
	ErrRaggedMap = errors.New("level: rows differ in length")
	// ErrUnknownGlyph is returned for a map character with no brick meaning.
	ErrUnknownGlyph = errors.New("level: unknown glyph")
	// ErrNotFound is returned when no level has the requested id.
	ErrNotFound = errors.New("level: not found")
)
