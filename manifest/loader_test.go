package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zero-day-ai/toolsmith/rules"
)

const ncatManifest = `
tool_id: Nmap
command_id: ncat
description: Concatenate and redirect sockets
services:
  - id: transport
    name: Transport options
    flags:
      - token: -u
        prompt: Use UDP instead of TCP
        kind: bool
      - token: --sctp
        kind: bool
  - id: ssl
    flags:
      - token: --ssl
        kind: bool
      - token: --ssl-verify
        kind: bool
service_restrictions:
  transport:
    incompatible_services: [broker]
flag_restrictions:
  --ssl-verify:
    requires_parent: --ssl
  -u:
    incompatible_with: [--sctp]
    constraint:
      expr: "!('--ssl' in flags)"
      message: SSL is not supported over UDP
mutually_exclusive_groups:
  - name: transport protocol
    flags: [-u, --sctp]
examples:
  - "ncat -l -p 8443 --ssl"
`

const legacyManifest = `
tool: Whois
command: whois
flags:
  - token: -h
    prompt: WHOIS server host
    kind: host
  - token: --verbose
    kind: bool
`

func writeManifest(t *testing.T, root, tool, command, content string) {
	t.Helper()
	dir := filepath.Join(root, tool)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, command+".yaml"), []byte(content), 0o644))
}

func TestLoader_Load(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "Nmap", "ncat", ncatManifest)

	m, err := NewLoader(root).Load("Nmap", "ncat")
	require.NoError(t, err)

	assert.Equal(t, "Nmap", m.ToolName())
	assert.Equal(t, "ncat", m.CommandName())
	assert.Equal(t, "ncat", m.BinaryName())
	assert.True(t, m.ServiceBased())
	require.Len(t, m.Services, 2)
	assert.Equal(t, "Transport options", m.Services[0].Label())
	assert.Equal(t, "ssl", m.Services[1].Label())

	rs := m.RuleSet()
	assert.Contains(t, rs.ServiceRestrictions, "transport")
	assert.Equal(t, "--ssl", rs.FlagRestrictions["--ssl-verify"].RequiresParent)
	require.Len(t, rs.MutexGroups, 1)

	// Guards compile during load.
	g := rs.FlagRestrictions["-u"].Constraint
	require.NotNil(t, g)
	assert.True(t, g.Compiled())
}

func TestLoader_LoadedRulesetValidates(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "Nmap", "ncat", ncatManifest)

	m, err := NewLoader(root).Load("Nmap", "ncat")
	require.NoError(t, err)

	report, err := rules.ValidateAll(
		[]string{"transport", "ssl"},
		rules.FlagMap{"-u": true, "--ssl": true},
		m.RuleSet(),
	)
	require.NoError(t, err)
	assert.False(t, report.Valid)
	assert.Contains(t, report.Errors, "SSL is not supported over UDP")
}

func TestLoader_LegacyFormat(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "Whois", "whois", legacyManifest)

	m, err := NewLoader(root).Load("Whois", "whois")
	require.NoError(t, err)

	assert.False(t, m.ServiceBased())
	assert.Equal(t, "Whois", m.ToolName())
	assert.Equal(t, "whois", m.BinaryName())
	assert.Equal(t, []string{"-h", "--verbose"}, m.FlagOrder())
}

func TestLoader_NotFound(t *testing.T) {
	_, err := NewLoader(t.TempDir()).Load("Nmap", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoader_StructureValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "neither format",
			content: "description: no identity\n",
		},
		{
			name:    "service format without services",
			content: "tool_id: X\ncommand_id: y\n",
		},
		{
			name:    "legacy format without flags",
			content: "tool: X\ncommand: y\n",
		},
		{
			name: "unknown flag kind",
			content: `
tool: X
command: y
flags:
  - token: -z
    kind: quantum
`,
		},
		{
			name: "empty token",
			content: `
tool: X
command: y
flags:
  - prompt: nameless
`,
		},
		{
			name: "bad constraint expression",
			content: `
tool_id: X
command_id: y
services:
  - id: main
    flags:
      - token: -z
        kind: bool
flag_restrictions:
  -z:
    constraint:
      expr: "this is not cel"
`,
		},
		{
			name:    "not yaml",
			content: "\t{{{",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeManifest(t, root, "X", "y", tt.content)
			_, err := NewLoader(root).Load("X", "y")
			assert.ErrorIs(t, err, ErrInvalidManifest)
		})
	}
}

func TestLoader_List(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "Nmap", "ncat", ncatManifest)
	writeManifest(t, root, "Nmap", "nmap", ncatManifest)
	writeManifest(t, root, "Whois", "whois", legacyManifest)
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("x"), 0o644))

	tools, err := NewLoader(root).List()
	require.NoError(t, err)

	assert.Equal(t, map[string][]string{
		"Nmap":  {"ncat", "nmap"},
		"Whois": {"whois"},
	}, tools)
}

func TestManifest_FlagOrderDeduplicates(t *testing.T) {
	m := &Manifest{
		ToolID:    "X",
		CommandID: "y",
		Services: []Service{
			{ID: "a", Flags: []Flag{{Token: "-p"}, {Token: "-l"}}},
			{ID: "b", Flags: []Flag{{Token: "-p"}, {Token: "-u"}}},
		},
	}
	assert.Equal(t, []string{"-p", "-l", "-u"}, m.FlagOrder())
}
