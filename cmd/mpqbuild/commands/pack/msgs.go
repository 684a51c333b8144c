package pack

// Message constants
const (
	MsgShort = "Package a staging area into an MPQ file"

	MsgLong = `Create an MPQ file from the staging directory using mpqcli.

Symbolic links are dereferenced by default: the archive receives each link's
own path with the target file's real content, via a temporary mirror copy
that is removed once packaging finishes. Broken and cyclic links are
reported and skipped; they never fail the run.`

	MsgExample = `  # Package the staging area into an MPQ
  mpqbuild package patch-4.MPQ patch-4.mpq

  # Package without compression
  mpqbuild package patch-4.MPQ patch-4.mpq --compression n

  # Let the archiver see raw symlinks
  mpqbuild package patch-4.MPQ patch-4.mpq --no-dereference`
)
