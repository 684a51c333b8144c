// Package validate checks an archive's member paths against the canonical
// client directory whitelist.
package validate

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"

	"github.com/sogladev/mpqbuild/pkg/archiver"
	"github.com/sogladev/mpqbuild/pkg/errors"
	"github.com/sogladev/mpqbuild/pkg/filesystem"
	"github.com/sogladev/mpqbuild/pkg/logging"
	"github.com/sogladev/mpqbuild/pkg/structure"
	"github.com/sogladev/mpqbuild/pkg/types"
)

// Lister is the subset of the external tool the validate command needs,
// injectable for testing.
type Lister interface {
	Probe() error
	List(ctx context.Context, archive string) ([]string, error)
}

// Options holds options for the validate command
type Options struct {
	// Archive is the archive file to validate.
	Archive string
	// Structure is the directory whitelist; nil means the canonical client layout.
	Structure *structure.Structure
	// Tool lists archive members; nil means mpqcli from PATH.
	Tool Lister
	// Verbose prints a verdict line per member.
	Verbose bool
	// FileSystem allows injecting a filesystem for testing.
	FileSystem types.FS
	// Out receives the validation report; nil means stdout.
	Out io.Writer
}

// Result reports the validation verdict. Passed is true only when every
// member sits under a canonical directory.
type Result struct {
	Archive string
	Members []string
	Invalid []string
	Valid   int
	Passed  bool
}

// Run lists the archive's members and classifies each one. An archive with
// disallowed members returns both the full result and a validation error
// carrying the offending list.
func Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.validate")
	logger.Info().Str("archive", opts.Archive).Msg("Validating archive")

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	s := opts.Structure
	if s == nil {
		var err error
		s, err = structure.Canonical()
		if err != nil {
			return nil, err
		}
	}

	archive, err := filepath.Abs(opts.Archive)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid archive path %q", opts.Archive)
	}

	if _, err := fsys.Stat(archive); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrArchiveNotFound, "archive not found: %s", archive)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot access archive %s", archive)
	}

	if opts.Tool == nil {
		opts.Tool = archiver.New("")
	}
	if err := opts.Tool.Probe(); err != nil {
		return nil, err
	}

	members, err := opts.Tool.List(ctx, archive)
	if err != nil {
		return nil, err
	}

	result := &Result{Archive: archive, Members: members}

	if len(members) == 0 {
		pterm.Warning.WithWriter(out).Printfln("Archive appears to be empty")
		result.Passed = true
		return result, nil
	}

	for _, member := range members {
		if s.IsValidPath(member) {
			result.Valid++
			if opts.Verbose {
				fmt.Fprintf(out, "  ok   %s\n", member)
			}
		} else {
			result.Invalid = append(result.Invalid, member)
			if opts.Verbose {
				fmt.Fprintf(out, "  BAD  %s\n", member)
			}
		}
	}

	fmt.Fprintf(out, "Valid files:   %d\n", result.Valid)
	fmt.Fprintf(out, "Invalid files: %d\n", len(result.Invalid))

	if len(result.Invalid) > 0 {
		warn := pterm.Warning.WithWriter(out)
		warn.Printfln("The following files are in invalid locations and will not be loaded by the client:")
		for _, member := range result.Invalid {
			fmt.Fprintf(out, "  - %s\n", member)
		}

		logger.Warn().Int("invalid", len(result.Invalid)).Msg("Validation failed")
		return result, errors.Newf(errors.ErrValidation,
			"%d file(s) in invalid locations", len(result.Invalid)).
			WithDetail("archive", archive).
			WithDetail("invalid", result.Invalid)
	}

	result.Passed = true
	pterm.Success.WithWriter(out).Printfln("All files are in valid client directories")
	logger.Info().Int("members", len(members)).Msg("Validation passed")
	return result, nil
}
