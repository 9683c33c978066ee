package endpoints

import (
	"fmt"
)

// Shape tells whether an entry needs an identifier to resolve.
type Shape int

const (
	// Static entries are fixed strings.
	Static Shape = iota
	// Parameterized entries are rendered from one identifier.
	Parameterized
)

// String returns the lower-case shape name.
func (s Shape) String() string {
	switch s {
	case Static:
		return "static"
	case Parameterized:
		return "parameterized"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler so shapes serialize by name.
func (s Shape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// IDPlaceholder marks where the identifier goes in a parameterized template.
const IDPlaceholder = "{id}"

// Entry is a registry entry: either a StaticEndpoint or a ParameterizedEndpoint.
type Entry interface {
	// Shape reports which variant the entry is.
	Shape() Shape

	// Template returns the entry's URL with IDPlaceholder standing in for
	// the identifier of parameterized entries.
	Template() string

	sealed()
}

// StaticEndpoint is an entry whose URL is fixed when the registry is built.
type StaticEndpoint struct {
	URL string
}

// Shape implements Entry.
func (StaticEndpoint) Shape() Shape { return Static }

// Template implements Entry.
func (e StaticEndpoint) Template() string { return e.URL }

func (StaticEndpoint) sealed() {}

// ParameterizedEndpoint is an entry whose URL is Prefix followed by an identifier.
type ParameterizedEndpoint struct {
	Prefix string
}

// Shape implements Entry.
func (ParameterizedEndpoint) Shape() Shape { return Parameterized }

// Template implements Entry.
func (e ParameterizedEndpoint) Template() string { return e.Prefix + IDPlaceholder }

// Render appends id to the prefix verbatim. The identifier is not validated
// or escaped.
func (e ParameterizedEndpoint) Render(id string) string {
	return e.Prefix + id
}

func (ParameterizedEndpoint) sealed() {}

var (
	_ Entry = StaticEndpoint{}
	_ Entry = ParameterizedEndpoint{}
)
