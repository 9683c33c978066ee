package endpoints

import (
	"slices"

	"github.com/stable/endpoints/pkg/errors"
)

// Key is the symbolic name of an endpoint. The set of keys is closed: only
// the constants below are valid.
type Key string

// Registry keys
const (
	// KeyMessage is the general message endpoint
	KeyMessage Key = "message"

	// KeyCreateProfile creates a user profile
	KeyCreateProfile Key = "createProfile"

	// KeyGetAllProfiles lists every user profile
	KeyGetAllProfiles Key = "getAllProfiles"

	// KeyGetProfileByUUID fetches one user profile by its UUID
	KeyGetProfileByUUID Key = "getProfileByUUID"

	// KeyUpdateProfileByUUID updates one user profile by its UUID
	KeyUpdateProfileByUUID Key = "updateProfileByUUID"
)

// definition describes one registry entry relative to the base address.
// For parameterized entries path is the prefix the identifier is appended to.
type definition struct {
	key   Key
	shape Shape
	path  string
}

var definitions = []definition{
	{key: KeyMessage, shape: Static, path: "/message"},
	{key: KeyCreateProfile, shape: Static, path: "/user-profile/create-profile"},
	{key: KeyGetAllProfiles, shape: Static, path: "/user-profile/get-all-profiles"},
	{key: KeyGetProfileByUUID, shape: Parameterized, path: "/user-profile/get/"},
	{key: KeyUpdateProfileByUUID, shape: Parameterized, path: "/user-profile/update/"},
}

// String returns the key as written in the registry table.
func (k Key) String() string {
	return string(k)
}

// Valid reports whether k is one of the registry keys.
func (k Key) Valid() bool {
	return slices.ContainsFunc(definitions, func(d definition) bool {
		return d.key == k
	})
}

// AllKeys returns every registry key in table order.
func AllKeys() []Key {
	keys := make([]Key, len(definitions))
	for i, d := range definitions {
		keys[i] = d.key
	}
	return keys
}

// ParseKey converts text into a Key, failing with an UnknownKeyError
// when s does not name a registry entry. Matching is case-sensitive.
func ParseKey(s string) (Key, error) {
	k := Key(s)
	if !k.Valid() {
		return "", errors.NewUnknownKeyError(s)
	}
	return k, nil
}
