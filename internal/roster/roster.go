// Package roster loads gift-exchange participants from line-delimited text
// or YAML.
//
// Text format, one family per line:
//
//	# comments and blank lines are ignored
//	Smith: Alice, Bob
//	Carol, Dave
//
// An optional "Label:" prefix names the family. Unlabelled families get the
// ID "family-<n>", counting families from 1.
//
// YAML format:
//
//	families:
//	  - name: Smith
//	    members: [Alice, Bob]
package roster

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/mmynk/secretsanta/internal/models"
)

var (
	ErrEmptyRoster    = errors.New("roster has no families")
	ErrEmptyFamily    = errors.New("family has no members")
	ErrDuplicateName  = errors.New("name appears more than once")
	ErrDuplicateLabel = errors.New("family label appears more than once")
)

// Load reads a roster file. Files ending in .yaml or .yml are parsed as YAML,
// anything else as text.
func Load(path string) ([]models.Person, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster: %w", err)
	}
	defer f.Close()

	if hasYAMLExt(path) {
		b, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read roster: %w", err)
		}
		return ParseYAML(b)
	}
	return Parse(f)
}

// Parse reads the text format.
func Parse(r io.Reader) ([]models.Person, error) {
	var families []models.Family

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var label string
		if i := strings.IndexByte(line, ':'); i >= 0 {
			label = strings.TrimSpace(line[:i])
			line = line[i+1:]
		}

		var members []string
		for _, name := range strings.Split(line, ",") {
			if name = strings.TrimSpace(name); name != "" {
				members = append(members, name)
			}
		}
		if len(members) == 0 {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrEmptyFamily)
		}
		families = append(families, models.Family{Name: label, Members: members})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}

	return FromFamilies(families)
}

type yamlRoster struct {
	Families []struct {
		Name    string   `yaml:"name"`
		Members []string `yaml:"members"`
	} `yaml:"families"`
}

// ParseYAML reads the YAML format.
func ParseYAML(b []byte) ([]models.Person, error) {
	var yr yamlRoster
	if err := yaml.Unmarshal(b, &yr); err != nil {
		return nil, fmt.Errorf("failed to parse roster: %w", err)
	}

	families := make([]models.Family, 0, len(yr.Families))
	for _, f := range yr.Families {
		families = append(families, models.Family{Name: f.Name, Members: f.Members})
	}
	return FromFamilies(families)
}

// FromFamilies turns families into people with fresh IDs, keeping the
// family and member order. Names must be unique across the whole roster.
func FromFamilies(families []models.Family) ([]models.Person, error) {
	if len(families) == 0 {
		return nil, ErrEmptyRoster
	}

	var people []models.Person
	names := make(map[string]bool)
	labels := make(map[string]bool)
	for i, f := range families {
		familyID := strings.TrimSpace(f.Name)
		if familyID == "" {
			familyID = fmt.Sprintf("family-%d", i+1)
		}
		if labels[familyID] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, familyID)
		}
		labels[familyID] = true

		count := 0
		for _, name := range f.Members {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if names[name] {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
			}
			names[name] = true
			people = append(people, models.Person{
				ID:       uuid.New().String(),
				FamilyID: familyID,
				Name:     name,
			})
			count++
		}
		if count == 0 {
			return nil, fmt.Errorf("family %q: %w", familyID, ErrEmptyFamily)
		}
	}

	return people, nil
}

func hasYAMLExt(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
