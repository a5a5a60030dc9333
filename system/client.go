package system

import "net/http"

// Client is the subset of *http.Client used to fetch remote documents.
type Client interface {
	Do(req *http.Request) (*http.Response, error)
}

var _ Client = (*http.Client)(nil)
