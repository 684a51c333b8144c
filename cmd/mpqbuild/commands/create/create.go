package create

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/sogladev/mpqbuild/pkg/commands/create"
	"github.com/sogladev/mpqbuild/pkg/structure"
)

// NewCommand creates the create command
func NewCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "create <path>",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := selectedCategories(cmd)
			if err != nil {
				return err
			}

			result, err := create.Run(create.Options{
				Path:       args[0],
				Categories: categories,
				Force:      force,
			})
			if err != nil {
				return err
			}

			pterm.Success.Printfln("Created %d directories at %s", len(result.Directories), result.Path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Force recreation if staging area already exists")
	registerCategoryFlags(cmd)

	return cmd
}

// registerCategoryFlags adds one boolean flag per canonical category. With no
// category flags set, every category is created.
func registerCategoryFlags(cmd *cobra.Command) {
	s, err := structure.Canonical()
	if err != nil {
		panic(err)
	}
	for _, name := range s.Categories() {
		cmd.Flags().Bool(name, false, "Create "+name+" directories")
	}
}

// selectedCategories collects the category flags the user set.
func selectedCategories(cmd *cobra.Command) ([]string, error) {
	s, err := structure.Canonical()
	if err != nil {
		return nil, err
	}

	var selected []string
	for _, name := range s.Categories() {
		on, err := cmd.Flags().GetBool(name)
		if err != nil {
			return nil, err
		}
		if on {
			selected = append(selected, name)
		}
	}
	return selected, nil
}
