package archiver

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/sogladev/mpqbuild/pkg/errors"
	"github.com/sogladev/mpqbuild/pkg/logging"
	"github.com/sogladev/mpqbuild/pkg/types"
)

// Mirror is a temporary directory holding real file content at each manifest
// entry's logical path, so the external archiver sees a plain tree with no
// symlinks. It is created fresh per packaging invocation under an
// invocation-unique temp root and must be released with Close on every exit
// path.
type Mirror struct {
	tempRoot string
	root     string
	logger   zerolog.Logger
}

// NewMirror creates an empty mirror named after the staging directory.
func NewMirror(staging string) (*Mirror, error) {
	tempRoot, err := os.MkdirTemp("", "mpqbuild-")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrMirrorCreate, "failed to create mirror directory")
	}

	root := filepath.Join(tempRoot, filepath.Base(staging))
	if err := os.MkdirAll(root, 0755); err != nil {
		_ = os.RemoveAll(tempRoot)
		return nil, errors.Wrap(err, errors.ErrMirrorCreate, "failed to create mirror root")
	}

	return &Mirror{
		tempRoot: tempRoot,
		root:     root,
		logger:   logging.GetLogger("archiver.mirror"),
	}, nil
}

// Root returns the directory to hand to the external archiver as its source.
func (m *Mirror) Root() string {
	return m.root
}

// Materialize places each manifest entry's physical content at its logical
// path inside the mirror.
func (m *Mirror) Materialize(manifest types.Manifest) error {
	for _, entry := range manifest {
		dest := filepath.Join(m.root, filepath.FromSlash(entry.Logical))

		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate,
				"failed to create mirror directory for %s", entry.Logical)
		}

		if err := placeFile(entry.Physical, dest); err != nil {
			return errors.Wrapf(err, errors.ErrFileCopy,
				"failed to mirror %s", entry.Logical)
		}
	}

	m.logger.Debug().Str("root", m.root).Int("entries", len(manifest)).Msg("Mirror materialized")
	return nil
}

// Close removes the mirror tree. Safe to call more than once.
func (m *Mirror) Close() error {
	if m.tempRoot == "" {
		return nil
	}

	tempRoot := m.tempRoot
	m.tempRoot = ""
	if err := os.RemoveAll(tempRoot); err != nil {
		return errors.Wrapf(err, errors.ErrMirrorCleanup,
			"failed to remove mirror directory %s", tempRoot)
	}
	return nil
}

// placeFile hard links src to dest to avoid duplicating large assets, falling
// back to a content copy when linking fails (cross-device targets, permission
// restrictions).
func placeFile(src, dest string) error {
	if err := os.Link(src, dest); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
