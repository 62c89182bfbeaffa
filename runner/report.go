package runner

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Reporter persists command output under a reports directory, one
// subdirectory per tool.
type Reporter struct {
	// Dir is the root reports directory.
	Dir string
}

// Save writes the result's output to
// <dir>/<tool>/<command>_<runID>.txt and returns the path. Run IDs keep
// successive runs of the same command from clobbering each other.
// Stderr, when present, is appended after a marker so a report captures
// the whole exchange.
func (r *Reporter) Save(tool, command string, res *Result) (string, error) {
	if r.Dir == "" {
		return "", fmt.Errorf("reports directory not configured")
	}

	dir := filepath.Join(r.Dir, strings.ToLower(tool))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports directory: %w", err)
	}

	runID := uuid.NewString()[:8]
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", command, runID))

	var content []byte
	content = append(content, res.Stdout...)
	if len(res.Stderr) > 0 {
		content = append(content, []byte("\n[stderr]\n")...)
		content = append(content, res.Stderr...)
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	slog.Info("report saved", "tool", tool, "command", command, "path", path)
	return path, nil
}
