package main

// Message constants
const (
	MsgRootShort = "Build and validate WoW 3.3.5a client patch MPQ files"

	MsgRootLong = `mpqbuild scaffolds the canonical WoW 3.3.5a patch directory structure,
packages a staging area into an MPQ archive using the external mpqcli tool,
and validates that archive members live in directories the client will scan.

Symbolic links in the staging area are dereferenced by default: the archive
receives the link's own path with the target's real content, so assets can
live anywhere on disk while the archive keeps the client's layout.`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
)
