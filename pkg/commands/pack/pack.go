// Package pack turns a staging area into an MPQ archive via the external
// archiver, dereferencing symlinks through a temporary mirror by default.
package pack

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"

	"github.com/sogladev/mpqbuild/pkg/archiver"
	"github.com/sogladev/mpqbuild/pkg/errors"
	"github.com/sogladev/mpqbuild/pkg/filesystem"
	"github.com/sogladev/mpqbuild/pkg/logging"
	"github.com/sogladev/mpqbuild/pkg/scanner"
	"github.com/sogladev/mpqbuild/pkg/types"
)

// Archiver is the subset of the external tool the pack command needs,
// injectable for testing.
type Archiver interface {
	Probe() error
	Create(ctx context.Context, opts archiver.CreateOptions) error
}

// Options holds options for the package command
type Options struct {
	// Staging is the staging area root.
	Staging string
	// Output is the archive path to create.
	Output string
	// Compression is the selector passed to the archiver; empty means zlib.
	Compression types.Compression
	// Dereference replaces symlinks with their target content via a
	// temporary mirror. Enabled by default from the CLI.
	Dereference bool
	// Tool is the external archiver; nil means mpqcli from PATH.
	Tool Archiver
	// FileSystem allows injecting a filesystem for testing.
	FileSystem types.FS
	// Out receives the operator-facing summary; nil means stdout.
	Out io.Writer
}

// Result reports a completed packaging run.
type Result struct {
	Output      string
	Manifest    types.Manifest
	Broken      []types.BrokenLink
	Regular     int
	Symlinked   int
	ArchiveSize int64
}

// Run packages the staging area. Broken and cyclic symlinks are reported as
// warnings and skipped; they never fail the run.
func Run(ctx context.Context, opts Options) (result *Result, err error) {
	logger := logging.GetLogger("commands.pack")
	logger.Info().
		Str("staging", opts.Staging).
		Str("output", opts.Output).
		Str("compression", string(opts.Compression)).
		Bool("dereference", opts.Dereference).
		Msg("Packaging staging area")

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	tool := opts.Tool
	if tool == nil {
		tool = archiver.New("")
	}

	compression := opts.Compression
	if compression == "" {
		compression = types.CompressionZlib
	}
	if _, err := types.ParseCompression(string(compression)); err != nil {
		return nil, err
	}

	// A missing external tool must surface before any filesystem mutation.
	if err := tool.Probe(); err != nil {
		return nil, err
	}

	staging, err := filepath.Abs(opts.Staging)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid staging path %q", opts.Staging)
	}

	scan, err := scanner.Scan(fsys, staging)
	if err != nil {
		return nil, err
	}

	output, err := prepareOutput(fsys, opts.Output, logger)
	if err != nil {
		return nil, err
	}

	reportScan(out, scan)

	sourceRoot := staging
	var mirror *archiver.Mirror
	if opts.Dereference {
		mirror, err = archiver.NewMirror(staging)
		if err != nil {
			return nil, err
		}
		// The mirror must be gone after both success and failure; a cleanup
		// failure never masks an earlier packaging error.
		defer func() {
			if cerr := mirror.Close(); cerr != nil {
				if err == nil {
					err = cerr
				} else {
					logger.Error().Err(cerr).Msg("Mirror cleanup failed after packaging error")
				}
			}
		}()

		if err := mirror.Materialize(scan.Manifest); err != nil {
			return nil, err
		}
		sourceRoot = mirror.Root()
	}

	if err := tool.Create(ctx, archiver.CreateOptions{
		SourceRoot:  sourceRoot,
		Output:      output,
		Compression: compression,
	}); err != nil {
		return nil, err
	}

	result = &Result{
		Output:    output,
		Manifest:  scan.Manifest,
		Broken:    scan.Broken,
		Regular:   scan.Regular,
		Symlinked: scan.Symlinked,
	}
	if info, serr := fsys.Stat(output); serr == nil {
		result.ArchiveSize = info.Size()
	}

	logger.Info().
		Str("output", output).
		Int64("size", result.ArchiveSize).
		Msg("Archive created")
	return result, nil
}

// prepareOutput removes a stale archive and ensures the parent directory
// exists.
func prepareOutput(fsys types.FS, path string, logger zerolog.Logger) (string, error) {
	output, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "invalid output path %q", path)
	}

	if info, err := fsys.Stat(output); err == nil {
		if info.IsDir() {
			return "", errors.Newf(errors.ErrInvalidInput, "output path is a directory: %s", output)
		}
		logger.Info().Str("output", output).Msg("Removing existing archive")
		if err := fsys.Remove(output); err != nil {
			return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to remove existing archive %s", output)
		}
	} else if !os.IsNotExist(err) {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "cannot access output path %s", output)
	}

	if err := fsys.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "failed to create output directory for %s", output)
	}

	return output, nil
}

// reportScan prints the pre-invocation summary so the operator can
// sanity-check counts before trusting the archive.
func reportScan(out io.Writer, scan *types.ScanResult) {
	info := pterm.Info.WithWriter(out)
	warn := pterm.Warning.WithWriter(out)

	if len(scan.Broken) > 0 {
		warn.Printfln("%d unresolvable symbolic link(s) will be skipped:", len(scan.Broken))
		for _, link := range scan.Broken {
			reason := "target not found"
			if link.Class == types.ClassSymlinkCyclic {
				reason = "link cycle"
			}
			if link.Target != "" {
				fmt.Fprintf(out, "  - %s -> %s (%s)\n", link.Logical, link.Target, reason)
			} else {
				fmt.Fprintf(out, "  - %s (%s)\n", link.Logical, reason)
			}
		}
	}

	if len(scan.Manifest) == 0 {
		warn.Printfln("No valid files found in staging area, the archive will be empty")
		return
	}

	info.Printfln("Packaging %d file(s): %d regular, %d symlinked",
		len(scan.Manifest), scan.Regular, scan.Symlinked)
}
