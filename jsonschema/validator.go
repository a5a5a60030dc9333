// Package jsonschema checks YAML documents against an embedded JSON Schema, reporting every
// violation as a positioned validation error.
package jsonschema

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsValidator "github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"github.com/speakeasy-api/openapi-typegen/json"
	"github.com/speakeasy-api/openapi-typegen/validation"
	"github.com/speakeasy-api/openapi-typegen/yml"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

var defaultPrinter = message.NewPrinter(language.English)

// Validator validates documents against a single JSON Schema. The schema is compiled on first
// use and shared by all subsequent validations. A Validator is safe for concurrent use.
type Validator struct {
	name   string
	source string

	initMutex sync.Mutex
	schema    *jsValidator.Schema
	initErr   error
}

// NewValidator returns a Validator for the JSON Schema in source. name is the resource name the
// schema is registered under and shows up in messages.
func NewValidator(name, source string) *Validator {
	return &Validator{
		name:   name,
		source: source,
	}
}

// Validate checks node against the schema. It returns nil when the node conforms.
func (v *Validator) Validate(node *yaml.Node) []error {
	schema, err := v.compiled()
	if err != nil {
		return []error{
			validation.NewValidationError(validation.NewValueValidationError("schema %s failed to compile: %s", v.name, err.Error()), node),
		}
	}

	buf := bytes.NewBuffer([]byte{})

	if err := json.YAMLToJSON(node, 0, buf); err != nil {
		return []error{
			validation.NewValidationError(validation.NewTypeMismatchError("document is not valid json: %w", err), yml.Root(node)),
		}
	}

	jsAny, err := jsValidator.UnmarshalJSON(buf)
	if err != nil {
		return []error{
			validation.NewValidationError(validation.NewTypeMismatchError("document is not valid json: %s", err.Error()), yml.Root(node)),
		}
	}

	err = schema.Validate(jsAny)
	if err == nil {
		return nil
	}

	var validationErr *jsValidator.ValidationError
	if !errors.As(err, &validationErr) {
		return []error{
			validation.NewValidationError(validation.NewValueValidationError("document invalid: %s", err.Error()), yml.Root(node)),
		}
	}

	errs := getRootCauses(validationErr, node)
	validation.SortValidationErrors(errs)

	return errs
}

func getRootCauses(err *jsValidator.ValidationError, root *yaml.Node) []error {
	if len(err.Causes) == 0 {
		return []error{rootCause(err, root)}
	}

	errs := []error{}

	for _, cause := range err.Causes {
		if len(cause.Causes) == 0 {
			errs = append(errs, rootCause(cause, root))
		} else {
			errs = append(errs, getRootCauses(cause, root)...)
		}
	}

	return errs
}

func rootCause(cause *jsValidator.ValidationError, root *yaml.Node) error {
	valueNode := yml.Locate(root, cause.InstanceLocation...)
	location := "/" + strings.Join(cause.InstanceLocation, "/")
	msg := cause.ErrorKind.LocalizedString(defaultPrinter)

	switch cause.ErrorKind.(type) {
	case *kind.Type:
		return validation.NewValidationError(validation.NewTypeMismatchError("%s %s", location, msg), valueNode)
	case *kind.Required:
		return validation.NewValidationError(validation.NewMissingFieldError("%s %s", location, msg), valueNode)
	default:
		return validation.NewValidationError(validation.NewValueValidationError("%s %s", location, msg), valueNode)
	}
}

func (v *Validator) compiled() (*jsValidator.Schema, error) {
	v.initMutex.Lock()
	defer v.initMutex.Unlock()

	if v.schema != nil || v.initErr != nil {
		return v.schema, v.initErr
	}

	doc, err := jsValidator.UnmarshalJSON(strings.NewReader(v.source))
	if err != nil {
		v.initErr = fmt.Errorf("invalid schema json: %w", err)
		return nil, v.initErr
	}

	c := jsValidator.NewCompiler()
	if err := c.AddResource(v.name, doc); err != nil {
		v.initErr = err
		return nil, err
	}

	v.schema, v.initErr = c.Compile(v.name)

	return v.schema, v.initErr
}
