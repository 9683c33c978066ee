// Package resolve provides the resolve command, which prints the URL of one
// endpoint.
package resolve

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stable/endpoints"
	"github.com/stable/endpoints/internal/appcontext"
	"github.com/stable/endpoints/internal/cmd/completion"
	"github.com/stable/endpoints/internal/cmd/output"
	"github.com/stable/endpoints/pkg/identifier"
	"github.com/stable/endpoints/pkg/logging"
)

// Result is the structured form of a resolved endpoint.
type Result struct {
	Key string `json:"key" yaml:"key"`
	ID  string `json:"id,omitempty" yaml:"id,omitempty"`
	URL string `json:"url" yaml:"url"`
}

// NewCommand creates the resolve command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var strictUUID bool

	cmd := &cobra.Command{
		Use:   "resolve <key> [id]",
		Short: "Print the URL of one endpoint",
		Long: `Resolve prints the URL the backend accepts for an endpoint.

Static endpoints take only a key. Parameterized endpoints also need the
identifier that goes into the path; pass --uuid to require a canonical UUID.
Without --format only the URL is printed, so the output can be used in scripts.`,
		Args:              cobra.RangeArgs(1, 2),
		ValidArgsFunction: completion.Keys,
		Example: `  endpoints resolve createProfile
  endpoints resolve getProfileByUUID 3f2b8c1e-6d0a-4c55-9d7e-1a2b3c4d5e6f --uuid
  endpoints resolve updateProfileByUUID abc-123 -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := app.Registry()
			if err != nil {
				return err
			}

			result, err := Resolve(reg, args, strictUUID)
			if err != nil {
				return err
			}

			logging.FromContext(logging.WithKey(cmd.Context(), result.Key)).Debug().
				Str("url", result.URL).
				Msg("Resolved endpoint")

			format, err := output.ParseFormat(app.OutputFormat())
			if err != nil {
				return err
			}
			if format == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), result.URL)
				return err
			}
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().BoolVar(&strictUUID, "uuid", false, "require the identifier to be a canonical UUID")

	return cmd
}

// Resolve resolves args (a key and an optional identifier) against reg.
// The identifier is checked with identifier.Validate before it reaches the
// registry.
func Resolve(reg *endpoints.Registry, args []string, strictUUID bool) (Result, error) {
	key, err := endpoints.ParseKey(args[0])
	if err != nil {
		return Result{}, err
	}

	if len(args) == 1 {
		url, err := reg.Resolve(key)
		if err != nil {
			return Result{}, err
		}
		return Result{Key: key.String(), URL: url}, nil
	}

	id := args[1]
	if err := identifier.Validate(id, strictUUID); err != nil {
		return Result{}, err
	}

	url, err := reg.ResolveID(key, id)
	if err != nil {
		return Result{}, err
	}
	return Result{Key: key.String(), ID: id, URL: url}, nil
}
