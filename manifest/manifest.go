// Package manifest provides loading and parsing of tool manifest YAML
// files. A manifest describes one command of a security tool: the
// services (logical flag groups) a user can opt into, the flags each
// service carries, and the compatibility ruleset the validation engine
// enforces over a selection.
package manifest

import (
	"github.com/zero-day-ai/toolsmith/rules"
	"github.com/zero-day-ai/toolsmith/validate"
)

// Manifest represents one <tool>/<command>.yaml file. Two formats are
// supported: the service-based format (tool_id/command_id/services) and
// the legacy flat format (tool/command/flags).
type Manifest struct {
	// Service-based format identity.
	ToolID    string `yaml:"tool_id,omitempty"`
	CommandID string `yaml:"command_id,omitempty"`

	// Legacy flat format identity.
	Tool    string `yaml:"tool,omitempty"`
	Command string `yaml:"command,omitempty"`

	// Binary overrides the executable name; defaults to the command id.
	Binary      string `yaml:"binary,omitempty"`
	Description string `yaml:"description,omitempty"`

	Services []Service `yaml:"services,omitempty"`
	Flags    []Flag    `yaml:"flags,omitempty"`

	ServiceRestrictions map[string]rules.ServiceRestriction `yaml:"service_restrictions,omitempty"`
	FlagRestrictions    map[string]rules.FlagRestriction    `yaml:"flag_restrictions,omitempty"`
	MutexGroups         []rules.MutexGroup                  `yaml:"mutually_exclusive_groups,omitempty"`

	Examples []string `yaml:"examples,omitempty"`
}

// Service is a named logical group of related flags a user opts into.
type Service struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name,omitempty"`
	Description string `yaml:"description,omitempty"`
	Flags       []Flag `yaml:"flags,omitempty"`
}

// Label returns the human-facing name for prompts, falling back to the id.
func (s Service) Label() string {
	if s.Name != "" {
		return s.Name
	}
	return s.ID
}

// Flag describes a single command-line option and how to prompt for it.
type Flag struct {
	// Token is the canonical option token, e.g. "-p" or "--ssl".
	Token string `yaml:"token"`

	// Prompt is the question shown to the user; defaults to the token.
	Prompt string `yaml:"prompt,omitempty"`

	// Kind names the field validator applied to the entered value.
	// Unknown kinds fail the manifest load, not the prompt.
	Kind validate.Kind `yaml:"kind,omitempty"`

	// Default pre-fills the prompt.
	Default any `yaml:"default,omitempty"`

	// Choices restricts the value to a fixed set.
	Choices []string `yaml:"choices,omitempty"`

	// Required refuses an empty value for this flag.
	Required bool `yaml:"required,omitempty"`
}

// Title returns the prompt text, falling back to the token.
func (f Flag) Title() string {
	if f.Prompt != "" {
		return f.Prompt
	}
	return f.Token
}

// Boolean reports whether the flag is a bare switch (no value).
func (f Flag) Boolean() bool {
	return f.Kind == validate.KindBool
}

// ToolName returns the tool identity across both formats.
func (m *Manifest) ToolName() string {
	if m.ToolID != "" {
		return m.ToolID
	}
	return m.Tool
}

// CommandName returns the command identity across both formats.
func (m *Manifest) CommandName() string {
	if m.CommandID != "" {
		return m.CommandID
	}
	return m.Command
}

// BinaryName returns the executable to invoke.
func (m *Manifest) BinaryName() string {
	if m.Binary != "" {
		return m.Binary
	}
	return m.CommandName()
}

// ServiceBased reports whether the manifest uses the service-based format.
func (m *Manifest) ServiceBased() bool {
	return m.ToolID != "" && m.CommandID != ""
}

// AllFlags returns the top-level flags followed by every service's flags,
// in declaration order.
func (m *Manifest) AllFlags() []Flag {
	flags := make([]Flag, 0, len(m.Flags))
	flags = append(flags, m.Flags...)
	for _, svc := range m.Services {
		flags = append(flags, svc.Flags...)
	}
	return flags
}

// FlagOrder returns flag tokens in declaration order, for deterministic
// command assembly.
func (m *Manifest) FlagOrder() []string {
	all := m.AllFlags()
	order := make([]string, 0, len(all))
	seen := make(map[string]bool, len(all))
	for _, f := range all {
		if !seen[f.Token] {
			seen[f.Token] = true
			order = append(order, f.Token)
		}
	}
	return order
}

// ServiceByID returns the service definition for id.
func (m *Manifest) ServiceByID(id string) (Service, bool) {
	for _, svc := range m.Services {
		if svc.ID == id {
			return svc, true
		}
	}
	return Service{}, false
}

// RuleSet assembles the validation ruleset from the manifest's
// restriction sections. The returned value shares the manifest's maps and
// must be treated as read-only, matching the engine's contract.
func (m *Manifest) RuleSet() *rules.RuleSet {
	return &rules.RuleSet{
		ServiceRestrictions: m.ServiceRestrictions,
		FlagRestrictions:    m.FlagRestrictions,
		MutexGroups:         m.MutexGroups,
	}
}
