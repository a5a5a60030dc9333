package loader_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/speakeasy-api/openapi-typegen/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const document = `swagger: "2.0"`

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api.yaml":
			_, _ = w.Write([]byte(document))
		case "/private.yaml":
			user, password, ok := r.BasicAuth()
			if !ok || user != "admin" || password != "secret" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_, _ = w.Write([]byte(document))
		case "/created.yaml":
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(document))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	return server
}

func TestLoader_Load_Success(t *testing.T) {
	t.Parallel()

	server := newServer(t)

	l := &loader.Loader{
		FS: fstest.MapFS{
			"specs/petstore.yaml": &fstest.MapFile{Data: []byte(document)},
		},
		Client: server.Client(),
		Stdin:  strings.NewReader(document),
	}

	tests := []struct {
		name string
		src  loader.Source
	}{
		{name: "file", src: loader.Source{Path: "specs/petstore.yaml"}},
		{name: "url", src: loader.Source{URL: server.URL + "/api.yaml"}},
		{name: "url with basic auth", src: loader.Source{URL: server.URL + "/private.yaml", Username: "admin", Password: "secret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := l.Load(t.Context(), tt.src)
			require.NoError(t, err)
			assert.Equal(t, document, string(data))
		})
	}
}

func TestLoader_Load_Stdin(t *testing.T) {
	t.Parallel()

	l := &loader.Loader{Stdin: strings.NewReader(document)}

	data, err := l.Load(t.Context(), loader.Source{Stdin: true})
	require.NoError(t, err)
	assert.Equal(t, document, string(data))
}

func TestLoader_Load_Error(t *testing.T) {
	t.Parallel()

	server := newServer(t)

	l := &loader.Loader{
		FS:     fstest.MapFS{},
		Client: server.Client(),
	}

	tests := []struct {
		name        string
		src         loader.Source
		expectedErr string
	}{
		{name: "no source", src: loader.Source{}, expectedErr: "no input"},
		{name: "two sources", src: loader.Source{Path: "a.yaml", Stdin: true}, expectedErr: "only one of"},
		{name: "missing file", src: loader.Source{Path: "missing.yaml"}, expectedErr: "failed to open file"},
		{name: "not found", src: loader.Source{URL: server.URL + "/missing.yaml"}, expectedErr: "status 404"},
		{name: "unauthorized", src: loader.Source{URL: server.URL + "/private.yaml", Username: "admin", Password: "wrong"}, expectedErr: "status 401"},
		{name: "non 200 success", src: loader.Source{URL: server.URL + "/created.yaml"}, expectedErr: "status 201"},
		{name: "invalid url", src: loader.Source{URL: "://bad"}, expectedErr: "failed to create request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := l.Load(t.Context(), tt.src)
			require.Error(t, err)
			assert.Nil(t, data)
			assert.Contains(t, err.Error(), tt.expectedErr)
		})
	}
}

func TestLoader_Load_Canceled(t *testing.T) {
	t.Parallel()

	server := newServer(t)
	l := &loader.Loader{Client: server.Client()}

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := l.Load(ctx, loader.Source{URL: server.URL + "/api.yaml"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSource_Name(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "<stdin>", loader.Source{Stdin: true}.Name())
	assert.Equal(t, "https://example.com/api.yaml", loader.Source{URL: "https://example.com/api.yaml"}.Name())
	assert.Equal(t, "api.yaml", loader.Source{Path: "api.yaml"}.Name())
}
