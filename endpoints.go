// Package endpoints provides the endpoint registry: a read-only mapping from
// symbolic operation names to the URLs the backend accepts for them.
//
// Every endpoint hangs off one base address. Static endpoints are fully
// resolved when the registry is built; parameterized endpoints render their
// URL from a single identifier, which is interpolated verbatim. The registry
// performs no I/O and is never mutated after New returns, so a *Registry may
// be shared by any number of goroutines.
//
// Example usage:
//
//	reg, err := endpoints.New(endpoints.WithBaseURL("http://127.0.0.1:8787"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Compile-time checked accessors
//	fmt.Println(reg.CreateProfile())
//	fmt.Println(reg.GetProfileByUUID(id))
//
//	// Lookups driven by text, e.g. from a flag
//	key, err := endpoints.ParseKey("updateProfileByUUID")
//	if err != nil {
//	    return err
//	}
//	url, err := reg.ResolveID(key, id)
package endpoints

import (
	"sync"
)

// defaultRegistry is built on first use from constants.DefaultBaseURL.
var defaultRegistry = sync.OnceValue(func() *Registry {
	return MustNew()
})

// Default returns the process-wide registry over the default base address.
// Callers that target another backend should build their own with New.
func Default() *Registry {
	return defaultRegistry()
}
