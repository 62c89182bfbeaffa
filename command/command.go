// Package command assembles a validated flag map into a shell-safe
// invocation. It consumes only the normalized flags of a passing
// validation report, never a raw pre-validation map.
package command

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/zero-day-ai/toolsmith/rules"
)

// ErrNoBinary indicates a Builder without a base command.
var ErrNoBinary = errors.New("base command cannot be empty")

// Builder turns flag maps into argv slices and quoted command strings for
// one binary.
type Builder struct {
	// Binary is the root command name, e.g. "ncat" or "nmap".
	Binary string
}

// Argv returns the invocation as an argument vector: the binary followed
// by flag tokens and their values. Boolean flags emit the bare token;
// valued flags emit the token then the formatted value. Disabled flags
// are skipped entirely.
//
// Tokens listed in order come first, in that order; any remaining enabled
// flags follow sorted, so output is deterministic regardless of map
// iteration.
func (b *Builder) Argv(flags rules.FlagMap, order []string) ([]string, error) {
	if strings.TrimSpace(b.Binary) == "" {
		return nil, ErrNoBinary
	}

	argv := []string{strings.TrimSpace(b.Binary)}
	emitted := make(map[string]bool, len(flags))

	emit := func(token string) {
		v := flags[token]
		if emitted[token] || !rules.Enabled(v) {
			return
		}
		emitted[token] = true
		if _, isBool := v.(bool); isBool {
			argv = append(argv, token)
			return
		}
		argv = append(argv, token, fmt.Sprintf("%v", v))
	}

	for _, token := range order {
		if _, present := flags[token]; present {
			emit(token)
		}
	}

	rest := make([]string, 0, len(flags))
	for token := range flags {
		if !emitted[token] {
			rest = append(rest, token)
		}
	}
	sort.Strings(rest)
	for _, token := range rest {
		emit(token)
	}

	return argv, nil
}

// Build returns the invocation as a single shell-safe string with every
// part quoted.
func (b *Builder) Build(flags rules.FlagMap, order []string) (string, error) {
	argv, err := b.Argv(flags, order)
	if err != nil {
		return "", err
	}
	return QuoteAll(argv), nil
}

// safePattern matches strings that need no quoting in a POSIX shell.
var safePattern = regexp.MustCompile(`^[A-Za-z0-9_@%+=:,./-]+$`)

// Quote returns a POSIX-shell-safe form of s: unchanged when it contains
// only safe characters, otherwise single-quoted with embedded single
// quotes escaped as '"'"'.
func Quote(s string) string {
	if s == "" {
		return "''"
	}
	if safePattern.MatchString(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}

// QuoteAll quotes every part and joins them with single spaces.
func QuoteAll(parts []string) string {
	quoted := make([]string, len(parts))
	for i, p := range parts {
		quoted[i] = Quote(p)
	}
	return strings.Join(quoted, " ")
}
