// Package types holds the shared data model for staging-tree scanning,
// packaging and validation.
package types

import (
	"io/fs"

	"github.com/sogladev/mpqbuild/pkg/errors"
)

// Classification is the disposition of one staging-tree entry.
type Classification int

const (
	// ClassRegular is an ordinary file.
	ClassRegular Classification = iota
	// ClassSymlinkResolved is a symlink whose chain ends at a regular file.
	ClassSymlinkResolved
	// ClassSymlinkBroken is a symlink whose chain hits a missing target.
	ClassSymlinkBroken
	// ClassSymlinkCyclic is a symlink whose chain revisits a previous link.
	ClassSymlinkCyclic
)

// String returns the operator-facing label for the classification.
func (c Classification) String() string {
	switch c {
	case ClassRegular:
		return "regular"
	case ClassSymlinkResolved:
		return "symlink-resolved"
	case ClassSymlinkBroken:
		return "symlink-broken"
	case ClassSymlinkCyclic:
		return "symlink-cyclic"
	default:
		return "unknown"
	}
}

// ManifestEntry pairs the physical content source with the logical
// in-archive destination. Physical is absolute and symlink-free; Logical is
// relative to the staging root with forward slashes.
type ManifestEntry struct {
	Physical string
	Logical  string
}

// Manifest is the ordered list of entries handed to the packaging step.
// Order follows the traversal order so repeated scans of an unchanged tree
// produce identical manifests.
type Manifest []ManifestEntry

// BrokenLink describes a symlink excluded from packaging. Class is
// ClassSymlinkBroken or ClassSymlinkCyclic; Target carries the raw readlink
// value when it could be read, for diagnostic display.
type BrokenLink struct {
	Logical string
	Target  string
	Class   Classification
}

// ScanResult is the outcome of classifying a staging tree.
type ScanResult struct {
	Manifest  Manifest
	Broken    []BrokenLink
	Regular   int
	Symlinked int
}

// Compression selects the compression scheme passed through to the external
// archiver.
type Compression string

const (
	// CompressionZlib is zlib compression, the default.
	CompressionZlib Compression = "z"
	// CompressionBzip2 is bzip2 compression.
	CompressionBzip2 Compression = "b"
	// CompressionNone disables compression.
	CompressionNone Compression = "n"
)

// ParseCompression validates a compression selector from the CLI or config.
func ParseCompression(s string) (Compression, error) {
	switch Compression(s) {
	case CompressionZlib, CompressionBzip2, CompressionNone:
		return Compression(s), nil
	default:
		return "", errors.Newf(errors.ErrConfigInvalid,
			"invalid compression %q (valid: z=zlib, b=bzip2, n=none)", s)
	}
}

// FS abstracts filesystem operations so commands and the scanner can be
// tested with an injected implementation.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	Readlink(name string) (string, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Remove(name string) error
	RemoveAll(path string) error
}
