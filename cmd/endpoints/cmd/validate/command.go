// Package validate provides the validate command, which checks the registry
// invariants for the configured base address.
package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stable/endpoints/internal/appcontext"
	"github.com/stable/endpoints/pkg/logging"
)

// NewCommand creates the validate command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the registry for the configured base address",
		Long: `Validate builds the registry for the configured base address and checks
that every endpoint begins with it, parses as an absolute URL, and resolves
to a URL no other endpoint shares.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.FromContext(cmd.Context())

			reg, err := app.Registry()
			if err != nil {
				return fmt.Errorf("building registry: %w", err)
			}

			if err := reg.Check(); err != nil {
				logger.Error().Err(err).Msg("Registry check failed")
				return fmt.Errorf("registry check failed: %w", err)
			}

			logger.Debug().Int("endpoints", reg.Len()).Msg("Registry check passed")
			cmd.Printf("✓ %d endpoints valid under %s\n", reg.Len(), reg.BaseURL())
			return nil
		},
	}
}
