// Package completion provides shell completion functions for endpoint keys
// and shapes.
package completion

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/stable/endpoints"
)

// Keys completes the first positional argument with endpoint keys. Later
// arguments are identifiers and get no suggestions.
func Keys(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var keys []string
	for _, key := range endpoints.AllKeys() {
		if strings.HasPrefix(key.String(), toComplete) {
			keys = append(keys, key.String()+"\t"+shapeOf(key))
		}
	}
	return keys, cobra.ShellCompDirectiveNoFileComp
}

// Shapes completes the value of a --shape flag.
func Shapes(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{
		endpoints.Static.String(),
		endpoints.Parameterized.String(),
	}, cobra.ShellCompDirectiveNoFileComp
}

func shapeOf(key endpoints.Key) string {
	entry, err := endpoints.Default().Entry(key)
	if err != nil {
		return ""
	}
	return entry.Shape().String()
}
