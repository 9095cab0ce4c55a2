package export

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Write encodes team as one YAML document. Each document starts with a
// separator so repeated writes to one file stay decodable.
func Write(w io.Writer, team Team) error {
	if _, err := io.WriteString(w, "---\n"); err != nil {
		return fmt.Errorf("export: write separator: %w", err)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(team); err != nil {
		return fmt.Errorf("export: encode team: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("export: flush team: %w", err)
	}
	return nil
}

// Read decodes every team document in r. Appended exports in one stream are
// returned in order.
func Read(r io.Reader) ([]Team, error) {
	dec := yaml.NewDecoder(r)
	var teams []Team
	for {
		var t Team
		err := dec.Decode(&t)
		if errors.Is(err, io.EOF) {
			return teams, nil
		}
		if err != nil {
			return nil, fmt.Errorf("export: decode team %d: %w", len(teams)+1, err)
		}
		teams = append(teams, t)
	}
}

// ReadFile reads the teams saved at path. A missing file means no saved teams.
func ReadFile(path string) ([]Team, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("export: open %s: %w", path, err)
	}
	defer f.Close()
	teams, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("export: %s: %w", path, err)
	}
	return teams, nil
}
