package pack

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/sogladev/mpqbuild/pkg/archiver"
	"github.com/sogladev/mpqbuild/pkg/commands/pack"
	"github.com/sogladev/mpqbuild/pkg/config"
	"github.com/sogladev/mpqbuild/pkg/types"
)

// NewCommand creates the package command
func NewCommand() *cobra.Command {
	var (
		compression   string
		noDereference bool
	)

	cmd := &cobra.Command{
		Use:     "package <staging> <output>",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("compression") {
				compression = cfg.Compression
			}

			result, err := pack.Run(cmd.Context(), pack.Options{
				Staging:     args[0],
				Output:      args[1],
				Compression: types.Compression(compression),
				Dereference: !noDereference,
				Tool:        archiver.New(cfg.Archiver),
			})
			if err != nil {
				return err
			}

			pterm.Success.Printfln("Created %s (%.2f MB)",
				result.Output, float64(result.ArchiveSize)/(1024*1024))
			return nil
		},
	}

	cmd.Flags().StringVarP(&compression, "compression", "c", string(types.CompressionZlib),
		"Compression method: z=zlib (default), b=bzip2, n=none")
	cmd.Flags().BoolVar(&noDereference, "no-dereference", false,
		"Disable dereferencing of symbolic links (by default symlinks are replaced by their target content via a temporary staging copy)")

	return cmd
}
