package create

// Message constants
const (
	MsgShort = "Create a WoW 3.3.5a patch staging directory structure"

	MsgLong = `Create the canonical WoW 3.3.5a directory structure for patch files.

Category flags (optional - creates all if none specified):
  --dbc         DBC files (DBFilesClient/)
  --interface   UI, icons, addons (Interface/*)
  --fonts       Font files (Fonts/)
  --sound       Audio files (Sound/*)
  --textures    Environment textures (Textures/*)
  --models      Character, creature, item models (Character/, Creature/, Item/, Spells/)
  --world       Map data (World/*)
  --cameras     Camera files (Cameras/)`

	MsgExample = `  # Create full structure (all categories)
  mpqbuild create ./my-patch

  # Create only Interface directories
  mpqbuild create ./ui-patch --interface

  # Create multiple categories
  mpqbuild create ./custom-patch --interface --sound --dbc`
)
