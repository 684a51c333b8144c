package validate

// Message constants
const (
	MsgShort = "Validate an MPQ file structure"

	MsgLong = `Check that all files in the MPQ are in valid WoW 3.3.5a directories.

The archive's member list is read with mpqcli and every path is checked
against the canonical client directory structure. Files outside it will not
be loaded by the client.`

	MsgExample = `  # Validate the MPQ structure
  mpqbuild validate patch-4.mpq

  # Validate with per-file output
  mpqbuild validate patch-4.mpq --verbose`
)
