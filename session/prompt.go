package session

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/zero-day-ai/toolsmith/input"
	"github.com/zero-day-ai/toolsmith/manifest"
	"github.com/zero-day-ai/toolsmith/rules"
	"github.com/zero-day-ai/toolsmith/validate"
)

// collect gathers the user's service selection and flag values. For
// service-based manifests the user first multi-selects services, then
// answers each selected service's flag prompts; flat manifests prompt
// every declared flag directly.
func (s *Session) collect() ([]string, rules.FlagMap, error) {
	m := s.Manifest

	if !m.ServiceBased() {
		flags, err := promptFlags(m.Flags)
		return nil, flags, err
	}

	selected, err := selectServices(m)
	if err != nil {
		return nil, nil, err
	}

	flags := make(rules.FlagMap)
	for _, id := range selected {
		svc, ok := m.ServiceByID(id)
		if !ok {
			continue
		}
		svcFlags, err := promptFlags(svc.Flags)
		if err != nil {
			return nil, nil, err
		}
		for token, value := range svcFlags {
			flags[token] = value
		}
	}

	return selected, flags, nil
}

func selectServices(m *manifest.Manifest) ([]string, error) {
	options := make([]huh.Option[string], 0, len(m.Services))
	for _, svc := range m.Services {
		label := svc.Label()
		if svc.Description != "" {
			label = fmt.Sprintf("%s — %s", label, svc.Description)
		}
		options = append(options, huh.NewOption(label, svc.ID))
	}

	var selected []string
	err := huh.NewForm(huh.NewGroup(
		huh.NewMultiSelect[string]().
			Title(fmt.Sprintf("Select %s services", m.ToolName())).
			Options(options...).
			Value(&selected),
	)).Run()
	if err != nil {
		return nil, fmt.Errorf("service selection: %w", err)
	}
	return selected, nil
}

// promptFlags asks for each flag in order and returns the resulting flag
// map. A declined boolean or an empty optional value leaves the flag
// absent: the engine treats absence as unset, which is distinct from an
// explicit false.
func promptFlags(flags []manifest.Flag) (rules.FlagMap, error) {
	values := make(rules.FlagMap, len(flags))

	for _, f := range flags {
		value, set, err := promptFlag(f)
		if err != nil {
			return nil, err
		}
		if set {
			values[f.Token] = value
		}
	}

	return values, nil
}

func promptFlag(f manifest.Flag) (any, bool, error) {
	title := fmt.Sprintf("%s (%s)", f.Title(), f.Token)

	if f.Boolean() {
		enabled := input.GetBool(map[string]any{f.Token: f.Default}, f.Token, false)
		err := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().Title(title).Value(&enabled),
		)).Run()
		if err != nil {
			return nil, false, fmt.Errorf("prompt %s: %w", f.Token, err)
		}
		if !enabled {
			return nil, false, nil
		}
		return true, true, nil
	}

	if len(f.Choices) > 0 {
		options := make([]huh.Option[string], 0, len(f.Choices)+1)
		if !f.Required {
			options = append(options, huh.NewOption("(skip)", ""))
		}
		for _, c := range f.Choices {
			options = append(options, huh.NewOption(c, c))
		}
		choice := input.GetString(map[string]any{f.Token: f.Default}, f.Token, "")
		err := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().Title(title).Options(options...).Value(&choice),
		)).Run()
		if err != nil {
			return nil, false, fmt.Errorf("prompt %s: %w", f.Token, err)
		}
		if choice == "" {
			return nil, false, nil
		}
		return choice, true, nil
	}

	value := input.GetString(map[string]any{f.Token: f.Default}, f.Token, "")
	err := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(title).
			Validate(fieldValidator(f)).
			Value(&value),
	)).Run()
	if err != nil {
		return nil, false, fmt.Errorf("prompt %s: %w", f.Token, err)
	}
	if strings.TrimSpace(value) == "" {
		return nil, false, nil
	}
	return value, true, nil
}

// fieldValidator wraps the kind's registered validator for inline prompt
// feedback. Empty input passes for optional flags (it means "skip").
func fieldValidator(f manifest.Flag) func(string) error {
	fn, _ := validate.ForKind(f.Kind)
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			if f.Required {
				return fmt.Errorf("%s is required", f.Token)
			}
			return nil
		}
		if fn == nil {
			return nil
		}
		return fn(value)
	}
}
