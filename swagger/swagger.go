// Package swagger models the parts of a Swagger 2.0 document that declare data types, and
// lowers its definitions into TypeScript types.
package swagger

import (
	"github.com/speakeasy-api/openapi-typegen/sequencedmap"
)

// Version is the Swagger specification version supported by this package.
const Version = "2.0"

// Swagger is the root document object for the API specification.
type Swagger struct {
	// Swagger is the version of the Swagger specification that this document uses.
	Swagger string `yaml:"swagger"`
	// Info provides metadata about the API.
	Info Info `yaml:"info"`
	// Host is the host (name or ip) serving the API.
	Host *string `yaml:"host,omitempty"`
	// BasePath is the base path on which the API is served.
	BasePath *string `yaml:"basePath,omitempty"`
	// Schemes is the transfer protocol of the API.
	Schemes []string `yaml:"schemes,omitempty"`
	// Consumes is a list of MIME types the APIs can consume.
	Consumes []string `yaml:"consumes,omitempty"`
	// Produces is a list of MIME types the APIs can produce.
	Produces []string `yaml:"produces,omitempty"`
	// Definitions is an object to hold data types produced and consumed by operations.
	Definitions *sequencedmap.Map[string, *Schema] `yaml:"definitions,omitempty"`
}

// GetSwagger returns the value of the Swagger field. Returns empty string if not set.
func (s *Swagger) GetSwagger() string {
	if s == nil {
		return ""
	}
	return s.Swagger
}

// GetInfo returns the value of the Info field.
func (s *Swagger) GetInfo() *Info {
	if s == nil {
		return nil
	}
	return &s.Info
}

// GetHost returns the value of the Host field. Returns empty string if not set.
func (s *Swagger) GetHost() string {
	if s == nil || s.Host == nil {
		return ""
	}
	return *s.Host
}

// GetBasePath returns the value of the BasePath field. Returns empty string if not set.
func (s *Swagger) GetBasePath() string {
	if s == nil || s.BasePath == nil {
		return ""
	}
	return *s.BasePath
}

// GetDefinitions returns the value of the Definitions field. Returns nil if not set.
func (s *Swagger) GetDefinitions() *sequencedmap.Map[string, *Schema] {
	if s == nil {
		return nil
	}
	return s.Definitions
}

// Info provides metadata about the API.
type Info struct {
	// Title is the title of the application.
	Title string `yaml:"title"`
	// Description is a short description of the application.
	Description *string `yaml:"description,omitempty"`
	// Version provides the version of the application API (not to be confused with the specification version).
	Version string `yaml:"version"`
}

// GetTitle returns the value of the Title field. Returns empty string if not set.
func (i *Info) GetTitle() string {
	if i == nil {
		return ""
	}
	return i.Title
}

// GetDescription returns the value of the Description field. Returns empty string if not set.
func (i *Info) GetDescription() string {
	if i == nil || i.Description == nil {
		return ""
	}
	return *i.Description
}

// GetVersion returns the value of the Version field. Returns empty string if not set.
func (i *Info) GetVersion() string {
	if i == nil {
		return ""
	}
	return i.Version
}
