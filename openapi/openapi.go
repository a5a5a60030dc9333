// Package openapi models the parts of an OpenAPI 3.0 document that declare data types, and
// lowers its component schemas into TypeScript types.
//
// Every slot that may hold either a $ref or an inline object is a RefOr. References are kept
// as written and never followed.
package openapi

import (
	"iter"

	"github.com/speakeasy-api/openapi-typegen/sequencedmap"
)

// Version is the OpenAPI specification version supported by this package.
const Version = "3.0.3"

// OpenAPI is the root document object of an OpenAPI 3.0 document.
type OpenAPI struct {
	// OpenAPI is the version of the OpenAPI specification that this document uses.
	OpenAPI string `yaml:"openapi"`
	// Info provides metadata about the API.
	Info Info `yaml:"info"`
	// Paths is the available paths and operations for the API.
	Paths *Paths `yaml:"paths"`
	// Components holds reusable objects, including the schemas types are generated from.
	Components *Components `yaml:"components,omitempty"`
}

// GetOpenAPI returns the value of the OpenAPI field. Returns empty string if not set.
func (o *OpenAPI) GetOpenAPI() string {
	if o == nil {
		return ""
	}
	return o.OpenAPI
}

// GetInfo returns the value of the Info field.
func (o *OpenAPI) GetInfo() *Info {
	if o == nil {
		return nil
	}
	return &o.Info
}

// GetPaths returns the value of the Paths field. Returns nil if not set.
func (o *OpenAPI) GetPaths() *Paths {
	if o == nil {
		return nil
	}
	return o.Paths
}

// GetComponents returns the value of the Components field. Returns nil if not set.
func (o *OpenAPI) GetComponents() *Components {
	if o == nil {
		return nil
	}
	return o.Components
}

// Operations iterates over every operation of every inline path item, in document order.
func (o *OpenAPI) Operations() iter.Seq2[HTTPMethod, *Operation] {
	return func(yield func(HTTPMethod, *Operation) bool) {
		for _, item := range o.GetPaths().All() {
			if item == nil || !item.IsRight() {
				continue
			}
			for method, op := range item.GetRight().Operations() {
				if !yield(method, op) {
					return
				}
			}
		}
	}
}

// Info provides metadata about the API.
type Info struct {
	// Title is the title of the application.
	Title string `yaml:"title"`
	// Description is a description of the application.
	Description *string `yaml:"description,omitempty"`
	// TermsOfService is a URL to the Terms of Service for the API.
	TermsOfService *string `yaml:"termsOfService,omitempty"`
	// Contact is the contact information for the exposed API.
	Contact *Contact `yaml:"contact,omitempty"`
	// License is the license information for the exposed API.
	License *License `yaml:"license,omitempty"`
	// Version is the version of the API document (not the OpenAPI version).
	Version string `yaml:"version"`
}

// GetTitle returns the value of the Title field. Returns empty string if not set.
func (i *Info) GetTitle() string {
	if i == nil {
		return ""
	}
	return i.Title
}

// GetVersion returns the value of the Version field. Returns empty string if not set.
func (i *Info) GetVersion() string {
	if i == nil {
		return ""
	}
	return i.Version
}

// Contact information for the exposed API.
type Contact struct {
	Name  *string `yaml:"name,omitempty"`
	URL   *string `yaml:"url,omitempty"`
	Email *string `yaml:"email,omitempty"`
}

// License information for the exposed API.
type License struct {
	Name string  `yaml:"name"`
	URL  *string `yaml:"url,omitempty"`
}

// Components holds reusable objects for different aspects of the document.
type Components struct {
	// Schemas are the named data types. Each becomes one generated declaration.
	Schemas *sequencedmap.Map[string, *RefOr[Schema]] `yaml:"schemas,omitempty"`
	// Responses are reusable responses.
	Responses *sequencedmap.Map[string, *RefOr[Response]] `yaml:"responses,omitempty"`
	// Parameters are reusable parameters.
	Parameters *sequencedmap.Map[string, *RefOr[Parameter]] `yaml:"parameters,omitempty"`
	// RequestBodies are reusable request bodies.
	RequestBodies *sequencedmap.Map[string, *RefOr[RequestBody]] `yaml:"requestBodies,omitempty"`
	// Headers are reusable headers.
	Headers *sequencedmap.Map[string, *RefOr[Header]] `yaml:"headers,omitempty"`
}

// GetSchemas returns the value of the Schemas field. Returns nil if not set.
func (c *Components) GetSchemas() *sequencedmap.Map[string, *RefOr[Schema]] {
	if c == nil {
		return nil
	}
	return c.Schemas
}
