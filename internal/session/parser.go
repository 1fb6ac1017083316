package session

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrDuplicateID is returned when two fixture records share an id.
var ErrDuplicateID = errors.New("duplicate session id")

// fixture is the on-disk document: a top-level "sessions" list.
type fixture struct {
	Sessions []Session `yaml:"sessions"`
}

// ParseFile reads a YAML schedule fixture from disk.
func ParseFile(path string) ([]Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	sessions, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return sessions, nil
}

// Parse decodes a schedule fixture, keeping record order.
func Parse(data []byte) ([]Session, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc fixture
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	seen := make(map[string]bool, len(doc.Sessions))
	for i, s := range doc.Sessions {
		if s.ID == "" {
			return nil, fmt.Errorf("session %d: missing id", i)
		}
		if seen[s.ID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, s.ID)
		}
		seen[s.ID] = true
		checkTimes(s)
	}
	return doc.Sessions, nil
}

// checkTimes logs records that break the day/time pairing the pipeline
// assumes. They are still loaded.
func checkTimes(s Session) {
	switch {
	case s.Scheduled() && (s.StartTime == "" || s.EndTime == ""):
		slog.Warn("scheduled session without times", "id", s.ID, "day", s.Day.String())
	case !s.Scheduled() && s.StartTime != "":
		slog.Warn("unscheduled session with a start time", "id", s.ID)
	}
}
