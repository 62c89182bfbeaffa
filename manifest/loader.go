package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zero-day-ai/toolsmith/rules"
	"github.com/zero-day-ai/toolsmith/validate"
)

// Sentinel errors for manifest loading.
var (
	// ErrNotFound indicates no manifest file exists for the tool/command.
	ErrNotFound = errors.New("manifest not found")

	// ErrInvalidManifest indicates a manifest that parsed but fails
	// structure validation. Like rules.ErrInvalidRuleSet this is a
	// configuration problem, never a user-input problem.
	ErrInvalidManifest = errors.New("invalid manifest")
)

// Loader locates and parses manifests below a root directory, laid out as
// <root>/<tool>/<command>.yaml.
type Loader struct {
	Root string
}

// NewLoader returns a Loader rooted at dir.
func NewLoader(dir string) *Loader {
	return &Loader{Root: dir}
}

// Load reads, parses, and validates the manifest for tool/command.
// Constraint expressions in the ruleset are compiled here, once, so
// validation runs never pay for expression parsing and malformed
// expressions fail the load instead of a later prompt flow.
func (l *Loader) Load(tool, command string) (*Manifest, error) {
	path := filepath.Join(l.Root, tool, command+".yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidManifest, path, err)
	}

	if err := m.validateStructure(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidManifest, path, err)
	}

	if err := rules.CompileGuards(m.RuleSet()); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidManifest, path, err)
	}

	return &m, nil
}

// List returns available manifests grouped by tool directory, sorted.
func (l *Loader) List() (map[string][]string, error) {
	entries, err := os.ReadDir(l.Root)
	if err != nil {
		return nil, fmt.Errorf("read manifest directory %s: %w", l.Root, err)
	}

	tools := make(map[string][]string)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		files, err := os.ReadDir(filepath.Join(l.Root, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read tool directory %s: %w", entry.Name(), err)
		}
		var commands []string
		for _, f := range files {
			if name, ok := strings.CutSuffix(f.Name(), ".yaml"); ok && !f.IsDir() {
				commands = append(commands, name)
			}
		}
		if len(commands) > 0 {
			sort.Strings(commands)
			tools[entry.Name()] = commands
		}
	}

	return tools, nil
}

// validateStructure enforces the shape rules: a manifest must identify
// itself in exactly one of the two formats, carry the flag/service
// section that format requires, and name only registered validator kinds.
func (m *Manifest) validateStructure() error {
	switch {
	case m.ServiceBased():
		if len(m.Services) == 0 {
			return fmt.Errorf("service-based manifest missing 'services'")
		}
	case m.Tool != "" && m.Command != "":
		if len(m.Flags) == 0 {
			return fmt.Errorf("flag-based manifest missing 'flags'")
		}
	default:
		return fmt.Errorf("manifest must declare either tool_id/command_id or tool/command")
	}

	for _, f := range m.AllFlags() {
		if f.Token == "" {
			return fmt.Errorf("flag with empty token")
		}
		if _, ok := validate.ForKind(f.Kind); !ok {
			return fmt.Errorf("flag '%s': unknown kind %q", f.Token, f.Kind)
		}
	}

	return nil
}
