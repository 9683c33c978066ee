// Package list provides the list command, which prints every registry entry.
package list

import (
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/stable/endpoints"
	"github.com/stable/endpoints/internal/appcontext"
	"github.com/stable/endpoints/internal/cmd/completion"
	"github.com/stable/endpoints/internal/cmd/output"
	"github.com/stable/endpoints/pkg/errors"
	"github.com/stable/endpoints/pkg/logging"
)

// Row is one registry entry as printed by list.
type Row struct {
	Key      string `json:"key" yaml:"key"`
	Shape    string `json:"shape" yaml:"shape"`
	Template string `json:"template" yaml:"template"`
}

// NewCommand creates the list command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var shape string

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List every endpoint with its URL template",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		Example: `  endpoints list                       # Table of all endpoints
  endpoints list --shape parameterized # Only endpoints that take an identifier
  endpoints list -o json               # Machine-readable output`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := app.Registry()
			if err != nil {
				return err
			}

			rows, err := Rows(reg, shape)
			if err != nil {
				return err
			}

			logging.FromContext(cmd.Context()).Debug().
				Int("count", len(rows)).
				Msg("Listing endpoints")

			format, err := output.ParseFormat(app.OutputFormat())
			if err != nil {
				return err
			}
			format = output.DetectFormat(string(format))

			var data any = rows
			switch format {
			case output.FormatTable:
				data = titledRows(rows)
			case output.FormatWide:
				data = wideRows(reg, rows)
			}
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), data)
		},
	}

	cmd.Flags().StringVar(&shape, "shape", "", "only list endpoints of this shape: static, parameterized")
	_ = cmd.RegisterFlagCompletionFunc("shape", completion.Shapes)

	return cmd
}

// Rows returns the registry entries in key order, optionally filtered by shape.
func Rows(reg *endpoints.Registry, shape string) ([]Row, error) {
	shape = strings.ToLower(shape)
	if shape != "" && shape != endpoints.Static.String() && shape != endpoints.Parameterized.String() {
		return nil, errors.NewValidationError("shape", shape, "must be static or parameterized")
	}

	rows := make([]Row, 0, reg.Len())
	for _, key := range reg.Keys() {
		entry, err := reg.Entry(key)
		if err != nil {
			return nil, err
		}
		if shape != "" && entry.Shape().String() != shape {
			continue
		}
		rows = append(rows, Row{
			Key:      key.String(),
			Shape:    entry.Shape().String(),
			Template: entry.Template(),
		})
	}
	return rows, nil
}

// WideRow is a Row with the template relative to the base address, shown
// by the wide layout.
type WideRow struct {
	Key      string `json:"key"`
	Shape    string `json:"shape"`
	Template string `json:"template"`
	Path     string `json:"path"`
}

// titledRows copies rows with shape names title-cased for tables.
func titledRows(rows []Row) []Row {
	caser := cases.Title(language.English)

	titled := make([]Row, len(rows))
	for i, r := range rows {
		r.Shape = caser.String(r.Shape)
		titled[i] = r
	}
	return titled
}

func wideRows(reg *endpoints.Registry, rows []Row) []WideRow {
	wide := make([]WideRow, len(rows))
	for i, r := range titledRows(rows) {
		wide[i] = WideRow{
			Key:      r.Key,
			Shape:    r.Shape,
			Template: r.Template,
			Path:     strings.TrimPrefix(r.Template, reg.BaseURL()),
		}
	}
	return wide
}
