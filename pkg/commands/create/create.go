// Package create scaffolds a staging area with the canonical client
// directory layout.
package create

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sogladev/mpqbuild/pkg/errors"
	"github.com/sogladev/mpqbuild/pkg/filesystem"
	"github.com/sogladev/mpqbuild/pkg/logging"
	"github.com/sogladev/mpqbuild/pkg/structure"
	"github.com/sogladev/mpqbuild/pkg/types"
)

// Options holds options for the create command
type Options struct {
	// Path is the staging area root to create.
	Path string
	// Categories selects which category directories to create; empty means all.
	Categories []string
	// Force recreates the staging area even if it exists.
	Force bool
	// Structure is the directory whitelist; nil means the canonical client layout.
	Structure *structure.Structure
	// FileSystem allows injecting a filesystem for testing.
	FileSystem types.FS
}

// Result reports what was scaffolded.
type Result struct {
	Path        string
	Directories []string
}

// Run creates the staging directory skeleton and a README describing it.
func Run(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.create")
	logger.Info().
		Str("path", opts.Path).
		Strs("categories", opts.Categories).
		Bool("force", opts.Force).
		Msg("Creating staging area")

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	s := opts.Structure
	if s == nil {
		var err error
		s, err = structure.Canonical()
		if err != nil {
			return nil, err
		}
	}

	// Validate category names before touching the filesystem.
	dirs, err := s.Directories(opts.Categories...)
	if err != nil {
		return nil, err
	}

	base, err := filepath.Abs(opts.Path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid staging path %q", opts.Path)
	}

	if _, err := fsys.Stat(base); err == nil {
		if !opts.Force {
			return nil, errors.Newf(errors.ErrAlreadyExists,
				"staging area already exists at %s, use --force to recreate it", base)
		}
		logger.Info().Str("path", base).Msg("Removing existing staging area")
		if err := fsys.RemoveAll(base); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to remove %s", base)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot access %s", base)
	}

	for _, dir := range dirs {
		path := filepath.Join(base, filepath.FromSlash(dir))
		if err := fsys.MkdirAll(path, 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", path)
		}
	}

	readme := readmeContent(opts.Categories)
	if err := fsys.WriteFile(filepath.Join(base, "README.txt"), []byte(readme), 0644); err != nil {
		return nil, errors.Wrap(err, errors.ErrFileWrite, "failed to write README.txt")
	}

	logger.Info().Int("directories", len(dirs)).Msg("Staging area created")
	return &Result{Path: base, Directories: dirs}, nil
}

func readmeContent(categories []string) string {
	categoryInfo := ""
	if len(categories) > 0 {
		categoryInfo = fmt.Sprintf("\nCreated categories: %s\n", strings.Join(categories, ", "))
	}

	return fmt.Sprintf(`WoW 3.3.5a Patch Staging Area
================================
%s
This directory structure is required by the WoW 3.3.5a client.
Place your custom files in the appropriate directories:

- DBFilesClient/       - DBC files (game data tables)
- Interface/           - UI, icons, and interface assets
- Fonts/               - Font files
- Sound/               - Audio files (music, effects, voices)
- Textures/            - Environment textures, minimaps
- Character/           - Character models
- Creature/            - Creature models
- Item/                - Item models
- Spells/              - Spell effects and models
- World/               - Map data (ADT, WDT, WMO files)
- Cameras/             - Camera files

After placing your files, use:
  mpqbuild package <staging_dir> <output.mpq>

To validate the MPQ:
  mpqbuild validate <output.mpq>
`, categoryInfo)
}
