// Package references handles $ref strings. Only references local to the current document
// can be turned into type names; nothing is ever fetched or resolved.
package references

import (
	"fmt"
	"strings"

	"github.com/speakeasy-api/openapi-typegen/errors"
)

const (
	// DefinitionsPrefix is the local reference prefix of Swagger 2.0 definitions.
	DefinitionsPrefix = "#/definitions/"
	// ComponentSchemasPrefix is the local reference prefix of OpenAPI 3.0 component schemas.
	ComponentSchemasPrefix = "#/components/schemas/"
)

type Reference string

var _ fmt.Stringer = (*Reference)(nil)

func (r Reference) GetURI() string {
	parts := strings.Split(string(r), "#")
	if len(parts) < 1 {
		return ""
	}

	return strings.TrimSpace(parts[0])
}

func (r Reference) HasJSONPointer() bool {
	return len(strings.Split(string(r), "#")) > 1
}

// LocalName strips prefix from the reference and returns the declared name it points at.
// The prefix must match exactly and be followed by a non-empty name.
func (r Reference) LocalName(prefix string) (string, error) {
	if r.GetURI() != "" || !r.HasJSONPointer() {
		return "", errors.ErrInvalidReference.Wrapf("external reference %q is not supported", string(r))
	}

	name, ok := strings.CutPrefix(string(r), prefix)
	if !ok {
		return "", errors.ErrInvalidReference.Wrapf("%q must start with %q", string(r), prefix)
	}
	if name == "" {
		return "", errors.ErrInvalidReference.Wrapf("%q does not name a schema", string(r))
	}
	return name, nil
}

func (r Reference) String() string {
	return string(r)
}
