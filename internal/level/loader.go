package level

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// ErrNoLevels is returned when a level directory holds no supported images.
var ErrNoLevels = errors.New("level: no level images found")

// Extensions lists the file extensions LoadAll picks up.
var Extensions = []string{".png", ".bmp", ".tif", ".tiff", ".webp"}

// Set is an ordered, immutable list of levels.
type Set struct {
	levels []*Oracle
}

// NewSet wraps already built oracles, keeping their order.
func NewSet(levels ...*Oracle) *Set {
	return &Set{levels: append([]*Oracle(nil), levels...)}
}

// Len returns the number of levels.
func (s *Set) Len() int {
	return len(s.levels)
}

// At returns level i.
func (s *Set) At(i int) *Oracle {
	return s.levels[i]
}

// Names returns the level names in order.
func (s *Set) Names() []string {
	names := make([]string, len(s.levels))
	for i, l := range s.levels {
		names[i] = l.Name()
	}
	return names
}

// LoadAll decodes every supported image directly inside dir, ordered by file
// name. Any failure aborts the whole set: a partially loaded campaign is never
// returned.
func LoadAll(fsys fs.FS, dir string) (*Set, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("level: read %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !supported(e.Name()) {
			continue
		}
		files = append(files, e.Name())
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoLevels, dir)
	}
	sort.Strings(files)

	set := &Set{levels: make([]*Oracle, 0, len(files))}
	for _, name := range files {
		o, err := loadFile(fsys, path.Join(dir, name), levelName(name))
		if err != nil {
			return nil, err
		}
		set.levels = append(set.levels, o)
	}
	return set, nil
}

func loadFile(fsys fs.FS, p, name string) (*Oracle, error) {
	f, err := fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("level: open %s: %w", p, err)
	}
	defer f.Close()
	return Decode(name, f)
}

func supported(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// levelName strips the extension: "01-intro.png" -> "01-intro".
func levelName(file string) string {
	return strings.TrimSuffix(file, path.Ext(file))
}
