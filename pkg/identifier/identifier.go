// Package identifier validates the identifiers callers pass to
// parameterized endpoints. The registry interpolates identifiers verbatim;
// code that accepts identifiers from users or other systems should run them
// through this package first.
package identifier

import (
	"strings"

	"github.com/google/uuid"

	"github.com/stable/endpoints/pkg/errors"
)

// Require fails when id is empty or only whitespace.
func Require(id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.NewValidationError("id", id, "identifier is required")
	}
	return nil
}

// ParseUUID parses id as a UUID in any form uuid.Parse accepts.
func ParseUUID(id string) (uuid.UUID, error) {
	if err := Require(id); err != nil {
		return uuid.Nil, err
	}

	u, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, errors.WrapValidation("id", id, err)
	}
	return u, nil
}

// Validate checks id is present and, when strict is set, a canonical UUID.
// Canonical means the 36-character hyphenated form, so the identifier that
// ends up in the URL is exactly what the server stores.
func Validate(id string, strict bool) error {
	if !strict {
		return Require(id)
	}

	u, err := ParseUUID(id)
	if err != nil {
		return err
	}
	if u.String() != strings.ToLower(id) {
		return errors.NewValidationError("id", id, "identifier must be a canonical UUID")
	}
	return nil
}
