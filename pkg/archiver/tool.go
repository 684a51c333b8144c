// Package archiver delegates packaging to the external mpqcli binary and
// manages the temporary mirror used for symlink dereferencing.
package archiver

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"github.com/sogladev/mpqbuild/pkg/errors"
	"github.com/sogladev/mpqbuild/pkg/logging"
	"github.com/sogladev/mpqbuild/pkg/types"
)

// DefaultBinary is the external archiver looked up in PATH.
const DefaultBinary = "mpqcli"

// Tool invokes the external archiver. One invocation spawns exactly one
// process and blocks until it exits.
type Tool struct {
	binary string
	logger zerolog.Logger
}

// New creates a Tool for the given binary name; empty means DefaultBinary.
func New(binary string) *Tool {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Tool{
		binary: binary,
		logger: logging.GetLogger("archiver"),
	}
}

// Probe verifies the external binary is reachable in PATH. Callers must probe
// before any filesystem mutation so a missing tool aborts cleanly.
func (t *Tool) Probe() error {
	if _, err := exec.LookPath(t.binary); err != nil {
		return errors.Wrapf(err, errors.ErrToolNotFound,
			"%s not found in PATH, please install it first", t.binary)
	}
	return nil
}

// CreateOptions describe one packaging invocation.
type CreateOptions struct {
	// SourceRoot is the directory the archiver packages; member paths inside
	// the archive are relative to it.
	SourceRoot string
	// Output is the absolute archive path to create.
	Output string
	// Compression is passed through to the archiver verbatim.
	Compression types.Compression
}

// Create packages SourceRoot into the output archive.
func (t *Tool) Create(ctx context.Context, opts CreateOptions) error {
	args := createArgs(opts)
	output, err := t.run(ctx, args, opts.SourceRoot)
	if err != nil {
		return err
	}

	t.logger.Debug().Str("output", opts.Output).Str("toolOutput", output).Msg("Archive created")
	return nil
}

// List returns the archive's member paths, one per line of tool output.
func (t *Tool) List(ctx context.Context, archive string) ([]string, error) {
	output, err := t.run(ctx, []string{"list", archive}, "")
	if err != nil {
		return nil, err
	}

	var members []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			members = append(members, line)
		}
	}
	return members, nil
}

// createArgs builds the create invocation; the source root is passed as "."
// with the process working directory set there, so the archive records
// relative member paths instead of absolute host paths.
func createArgs(opts CreateOptions) []string {
	return []string{
		"create",
		"--compression", string(opts.Compression),
		"--output", opts.Output,
		".",
	}
}

// run executes the tool with captured combined output. Non-zero exit becomes
// a packaging error carrying the output, argv and working directory.
func (t *Tool) run(ctx context.Context, args []string, dir string) (string, error) {
	logging.LogCommand(t.binary, args)

	cmd := exec.CommandContext(ctx, t.binary, args...)
	cmd.Dir = dir

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", errors.Newf(errors.ErrPackaging,
				"%s exited with code %d", t.binary, exitErr.ExitCode()).
				WithDetail("output", buf.String()).
				WithDetail("args", strings.Join(args, " ")).
				WithDetail("dir", dir)
		}
		return "", errors.Wrapf(err, errors.ErrPackaging, "failed to run %s", t.binary)
	}

	return buf.String(), nil
}
