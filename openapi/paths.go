package openapi

import (
	"iter"

	"github.com/speakeasy-api/openapi-typegen/sequencedmap"
	"gopkg.in/yaml.v3"
)

// HTTPMethod is an HTTP method.
type HTTPMethod string

const (
	HTTPMethodGet     HTTPMethod = "get"
	HTTPMethodPut     HTTPMethod = "put"
	HTTPMethodPost    HTTPMethod = "post"
	HTTPMethodDelete  HTTPMethod = "delete"
	HTTPMethodOptions HTTPMethod = "options"
	HTTPMethodHead    HTTPMethod = "head"
	HTTPMethodPatch   HTTPMethod = "patch"
	HTTPMethodTrace   HTTPMethod = "trace"
)

// Paths is a map of relative endpoint paths to their corresponding PathItem objects.
type Paths struct {
	*sequencedmap.Map[string, *RefOr[PathItem]]
}

// UnmarshalYAML decodes the paths mapping, keeping document order.
func (p *Paths) UnmarshalYAML(node *yaml.Node) error {
	p.Map = sequencedmap.New[string, *RefOr[PathItem]]()
	return p.Map.UnmarshalYAML(node)
}

// Len returns the number of elements in the paths map. nil safe.
func (p *Paths) Len() int {
	if p == nil || p.Map == nil {
		return 0
	}
	return p.Map.Len()
}

// All returns an iterator over all path items in the paths map. nil safe.
func (p *Paths) All() iter.Seq2[string, *RefOr[PathItem]] {
	if p == nil || p.Map == nil {
		return func(yield func(string, *RefOr[PathItem]) bool) {}
	}
	return p.Map.All()
}

// PathItem describes the operations available on a single path.
type PathItem struct {
	Summary     *string `yaml:"summary,omitempty"`
	Description *string `yaml:"description,omitempty"`

	Get     *Operation `yaml:"get,omitempty"`
	Put     *Operation `yaml:"put,omitempty"`
	Post    *Operation `yaml:"post,omitempty"`
	Delete  *Operation `yaml:"delete,omitempty"`
	Options *Operation `yaml:"options,omitempty"`
	Head    *Operation `yaml:"head,omitempty"`
	Patch   *Operation `yaml:"patch,omitempty"`
	Trace   *Operation `yaml:"trace,omitempty"`

	// Parameters apply to every operation of the path.
	Parameters []*RefOr[Parameter] `yaml:"parameters,omitempty"`
}

// GetOperation returns the operation for method. Returns nil if not set.
func (p *PathItem) GetOperation(method HTTPMethod) *Operation {
	if p == nil {
		return nil
	}
	switch method {
	case HTTPMethodGet:
		return p.Get
	case HTTPMethodPut:
		return p.Put
	case HTTPMethodPost:
		return p.Post
	case HTTPMethodDelete:
		return p.Delete
	case HTTPMethodOptions:
		return p.Options
	case HTTPMethodHead:
		return p.Head
	case HTTPMethodPatch:
		return p.Patch
	case HTTPMethodTrace:
		return p.Trace
	default:
		return nil
	}
}

var methods = []HTTPMethod{
	HTTPMethodGet, HTTPMethodPut, HTTPMethodPost, HTTPMethodDelete,
	HTTPMethodOptions, HTTPMethodHead, HTTPMethodPatch, HTTPMethodTrace,
}

// Operations iterates over the operations that are set, in a fixed method order.
func (p *PathItem) Operations() iter.Seq2[HTTPMethod, *Operation] {
	return func(yield func(HTTPMethod, *Operation) bool) {
		for _, method := range methods {
			op := p.GetOperation(method)
			if op == nil {
				continue
			}
			if !yield(method, op) {
				return
			}
		}
	}
}

// Operation describes a single API operation on a path.
type Operation struct {
	OperationID *string  `yaml:"operationId,omitempty"`
	Summary     *string  `yaml:"summary,omitempty"`
	Description *string  `yaml:"description,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
	Deprecated  *bool    `yaml:"deprecated,omitempty"`

	Parameters  []*RefOr[Parameter]                         `yaml:"parameters,omitempty"`
	RequestBody *RefOr[RequestBody]                         `yaml:"requestBody,omitempty"`
	Responses   *sequencedmap.Map[string, *RefOr[Response]] `yaml:"responses"`
}

// GetOperationID returns the value of the OperationID field. Returns empty string if not set.
func (o *Operation) GetOperationID() string {
	if o == nil || o.OperationID == nil {
		return ""
	}
	return *o.OperationID
}

// ParameterLocation is where a parameter is sent.
type ParameterLocation string

const (
	ParameterLocationQuery  ParameterLocation = "query"
	ParameterLocationHeader ParameterLocation = "header"
	ParameterLocationPath   ParameterLocation = "path"
	ParameterLocationCookie ParameterLocation = "cookie"
)

// Parameter describes a single operation parameter.
type Parameter struct {
	Name       string            `yaml:"name"`
	In         ParameterLocation `yaml:"in"`
	Required   *bool             `yaml:"required,omitempty"`
	Deprecated *bool             `yaml:"deprecated,omitempty"`
	Schema     *RefOr[Schema]    `yaml:"schema,omitempty"`
}

// RequestBody describes a single request body.
type RequestBody struct {
	Description *string                               `yaml:"description,omitempty"`
	Content     *sequencedmap.Map[string, *MediaType] `yaml:"content"`
	Required    *bool                                 `yaml:"required,omitempty"`
}

// Response describes a single response from an API operation.
type Response struct {
	Description string                                    `yaml:"description"`
	Headers     *sequencedmap.Map[string, *RefOr[Header]] `yaml:"headers,omitempty"`
	Content     *sequencedmap.Map[string, *MediaType]     `yaml:"content,omitempty"`
}

// MediaType provides the schema for a single content type.
type MediaType struct {
	Schema *RefOr[Schema] `yaml:"schema,omitempty"`
}

// Header describes a single response header.
type Header struct {
	Required        *bool          `yaml:"required,omitempty"`
	Deprecated      *bool          `yaml:"deprecated,omitempty"`
	AllowEmptyValue *bool          `yaml:"allowEmptyValue,omitempty"`
	Schema          *RefOr[Schema] `yaml:"schema,omitempty"`
}
