package validate

import (
	"github.com/spf13/cobra"

	"github.com/sogladev/mpqbuild/pkg/archiver"
	"github.com/sogladev/mpqbuild/pkg/commands/validate"
	"github.com/sogladev/mpqbuild/pkg/config"
)

// NewCommand creates the validate command
func NewCommand() *cobra.Command {
	var showFiles bool

	cmd := &cobra.Command{
		Use:     "validate <archive>",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			_, err = validate.Run(cmd.Context(), validate.Options{
				Archive: args[0],
				Tool:    archiver.New(cfg.Archiver),
				Verbose: showFiles,
			})
			return err
		},
	}

	cmd.Flags().BoolVar(&showFiles, "verbose", false,
		"Show detailed validation output for each file")

	return cmd
}
