package session

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed schedule.yaml
var defaultFixture []byte

// Store holds the ordered, read-only session list.
type Store struct {
	sessions []Session
	byID     map[string]int
}

// NewStore copies sessions into a store.
func NewStore(sessions []Session) *Store {
	s := &Store{
		sessions: append([]Session(nil), sessions...),
		byID:     make(map[string]int, len(sessions)),
	}
	for i, sess := range s.sessions {
		s.byID[sess.ID] = i
	}
	return s
}

// Default returns the store built from the embedded schedule.
func Default() (*Store, error) {
	sessions, err := Parse(defaultFixture)
	if err != nil {
		return nil, fmt.Errorf("embedded schedule: %w", err)
	}
	return NewStore(sessions), nil
}

// Load reads sessions from path. An empty path uses the embedded schedule.
// A directory is read as every *.yaml / *.yml file in it, in name order.
func Load(path string) (*Store, error) {
	if path == "" {
		return Default()
	}

	// Expand ~
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		sessions, err := ParseFile(path)
		if err != nil {
			return nil, err
		}
		return NewStore(sessions), nil
	}

	files, err := findFixtureFiles(path)
	if err != nil {
		return nil, err
	}

	var all []Session
	seen := make(map[string]string)
	for _, f := range files {
		sessions, err := ParseFile(f)
		if err != nil {
			return nil, err
		}
		for _, s := range sessions {
			if prev, ok := seen[s.ID]; ok {
				return nil, fmt.Errorf("%w: %s in %s and %s", ErrDuplicateID, s.ID, prev, f)
			}
			seen[s.ID] = f
		}
		all = append(all, sessions...)
	}
	return NewStore(all), nil
}

func findFixtureFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// All returns a copy of the sessions in fixture order.
func (s *Store) All() []Session {
	return append([]Session(nil), s.sessions...)
}

func (s *Store) Len() int {
	return len(s.sessions)
}

// ByID looks a session up by its fixture id.
func (s *Store) ByID(id string) (Session, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Session{}, false
	}
	return s.sessions[i], true
}
