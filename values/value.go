package values

import "gopkg.in/yaml.v3"

// Value represents a raw, untranslated value in a document, such as a schema default.
// An unset Value is the zero node.
type Value = yaml.Node
