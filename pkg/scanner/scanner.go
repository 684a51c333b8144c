// Package scanner walks a staging tree and classifies every entry for
// packaging: regular files and resolvable symlinks become manifest entries,
// broken and cyclic symlinks are reported and excluded.
package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/sogladev/mpqbuild/pkg/errors"
	"github.com/sogladev/mpqbuild/pkg/logging"
	"github.com/sogladev/mpqbuild/pkg/types"
)

// maxLinkDepth bounds symlink chain resolution. Chains longer than this are
// reported as cyclic rather than followed further.
const maxLinkDepth = 40

// readmeName is the scaffolding artifact written by the create command; it is
// never packaged.
const readmeName = "README.txt"

// Scan classifies every entry under root and builds the packaging manifest.
// Per-entry symlink problems never abort the walk; they accumulate in the
// result's Broken list. The walk itself fails only when root is missing or
// not a directory, or on a duplicate logical path.
func Scan(fsys types.FS, root string) (*types.ScanResult, error) {
	logger := logging.GetLogger("scanner")

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid staging path %q", root)
	}

	info, err := fsys.Stat(absRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrStagingNotFound, "staging area not found: %s", absRoot)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot access staging area %s", absRoot)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrStagingNotFound, "staging path is not a directory: %s", absRoot)
	}

	w := &walker{
		fs:     fsys,
		root:   absRoot,
		logger: logger,
		result: &types.ScanResult{},
		seen:   make(map[string]string),
	}

	if err := w.walk(absRoot); err != nil {
		return nil, err
	}

	logger.Debug().
		Int("entries", len(w.result.Manifest)).
		Int("regular", w.result.Regular).
		Int("symlinked", w.result.Symlinked).
		Int("broken", len(w.result.Broken)).
		Msg("Scan completed")

	return w.result, nil
}

type walker struct {
	fs     types.FS
	root   string
	logger zerolog.Logger
	result *types.ScanResult

	// seen maps case-folded logical paths to their first occurrence so
	// case-insensitive collisions surface as configuration errors instead of
	// silently picking one entry.
	seen map[string]string
}

func (w *walker) walk(dir string) error {
	entries, err := w.fs.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read directory %s", dir)
	}

	// os.ReadDir returns entries sorted by name, which keeps manifest order
	// deterministic across runs.
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		mode := entry.Type()

		switch {
		case mode.IsDir():
			if err := w.walk(path); err != nil {
				return err
			}
		case mode&fs.ModeSymlink != 0:
			if entry.Name() == readmeName {
				continue
			}
			if err := w.classifyLink(path); err != nil {
				return err
			}
		case mode.IsRegular():
			if entry.Name() == readmeName {
				continue
			}
			if err := w.accept(path, path, types.ClassRegular); err != nil {
				return err
			}
		default:
			// Sockets, fifos and other special files do not belong in an
			// archive and are not worth a report entry.
			w.logger.Trace().Str("path", path).Msg("Skipping special file")
		}
	}

	return nil
}

// classifyLink resolves a symlink chain and either accepts the entry with its
// resolved physical path or records it as broken or cyclic.
func (w *walker) classifyLink(path string) error {
	rawTarget, _ := w.fs.Readlink(path)

	physical, state := w.resolveChain(path)
	switch state {
	case linkResolved:
		return w.accept(physical, path, types.ClassSymlinkResolved)
	case linkBroken:
		w.report(path, rawTarget, types.ClassSymlinkBroken)
	case linkCyclic:
		w.report(path, rawTarget, types.ClassSymlinkCyclic)
	case linkNonFile:
		w.logger.Warn().Str("path", path).Str("target", physical).
			Msg("Skipping symlink to non-regular file")
	}
	return nil
}

type linkState int

const (
	linkResolved linkState = iota
	linkBroken
	linkCyclic
	linkNonFile
)

// resolveChain follows a symlink chain step by step, requiring every
// intermediate target to exist. A visited set distinguishes cycles from
// missing targets so the report can label them accurately.
func (w *walker) resolveChain(path string) (string, linkState) {
	visited := map[string]bool{path: true}
	current := path

	for depth := 0; depth < maxLinkDepth; depth++ {
		target, err := w.fs.Readlink(current)
		if err != nil {
			return "", linkBroken
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(current), target)
		}
		target = filepath.Clean(target)

		info, err := w.fs.Lstat(target)
		if err != nil {
			return "", linkBroken
		}

		if info.Mode()&fs.ModeSymlink != 0 {
			if visited[target] {
				return "", linkCyclic
			}
			visited[target] = true
			current = target
			continue
		}

		if info.Mode().IsRegular() {
			return target, linkResolved
		}
		return target, linkNonFile
	}

	// A chain deeper than maxLinkDepth without revisiting a link is
	// pathological; treat it as a cycle for reporting purposes.
	return "", linkCyclic
}

// accept appends a manifest entry, guarding logical-path uniqueness.
func (w *walker) accept(physical, path string, class types.Classification) error {
	logical, err := w.logical(path)
	if err != nil {
		return err
	}

	folded := strings.ToLower(logical)
	if prev, ok := w.seen[folded]; ok {
		return errors.Newf(errors.ErrDuplicatePath,
			"logical path %q collides with %q", logical, prev)
	}
	w.seen[folded] = logical

	w.result.Manifest = append(w.result.Manifest, types.ManifestEntry{
		Physical: physical,
		Logical:  logical,
	})
	if class == types.ClassSymlinkResolved {
		w.result.Symlinked++
	} else {
		w.result.Regular++
	}
	return nil
}

// report records a broken or cyclic link. Packaging proceeds without it.
func (w *walker) report(path, target string, class types.Classification) {
	logical, err := w.logical(path)
	if err != nil {
		logical = path
	}
	w.result.Broken = append(w.result.Broken, types.BrokenLink{
		Logical: logical,
		Target:  target,
		Class:   class,
	})
	w.logger.Debug().
		Str("link", logical).
		Str("target", target).
		Str("class", class.String()).
		Msg("Excluding unresolvable symlink")
}

// logical converts an absolute entry path to its forward-slash
// staging-relative form, the path it will occupy inside the archive.
func (w *walker) logical(path string) (string, error) {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInternal, "cannot relativize %s", path)
	}
	return filepath.ToSlash(rel), nil
}
