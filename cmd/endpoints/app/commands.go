package app

import (
	"github.com/spf13/cobra"

	"github.com/stable/endpoints/cmd/endpoints/cmd/list"
	"github.com/stable/endpoints/cmd/endpoints/cmd/resolve"
	"github.com/stable/endpoints/cmd/endpoints/cmd/validate"
)

// NewListCommand creates the list command with app dependencies.
func (a *App) NewListCommand() *cobra.Command {
	return list.NewCommand(a)
}

// NewResolveCommand creates the resolve command with app dependencies.
func (a *App) NewResolveCommand() *cobra.Command {
	return resolve.NewCommand(a)
}

// NewValidateCommand creates the validate command with app dependencies.
func (a *App) NewValidateCommand() *cobra.Command {
	return validate.NewCommand(a)
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("endpoints %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
