// Package loader reads input documents from files, URLs and standard input.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/speakeasy-api/openapi-typegen/system"
)

// Source describes where a document is read from. Exactly one of Path, URL and Stdin is set.
type Source struct {
	// Path is a file on the loader's file system.
	Path string
	// URL is fetched with a GET request.
	URL string
	// Stdin reads the document from the loader's standard input.
	Stdin bool

	// Username and Password are sent as basic authentication with URL requests when either is
	// set.
	Username string
	Password string
}

// Name returns a human readable name for the source.
func (s Source) Name() string {
	switch {
	case s.Stdin:
		return "<stdin>"
	case s.URL != "":
		return s.URL
	default:
		return s.Path
	}
}

func (s Source) validate() error {
	set := 0
	for _, ok := range []bool{s.Path != "", s.URL != "", s.Stdin} {
		if ok {
			set++
		}
	}
	switch set {
	case 0:
		return errors.New("no input: provide a file, a url or stdin")
	case 1:
		return nil
	default:
		return errors.New("only one of file, url and stdin can be used per input")
	}
}

// Loader reads documents. The zero value reads from the OS file system, http.DefaultClient and
// os.Stdin.
type Loader struct {
	FS     system.VirtualFS
	Client system.Client
	Stdin  io.Reader
}

// Load returns the raw bytes of the document described by src.
func (l *Loader) Load(ctx context.Context, src Source) ([]byte, error) {
	if err := src.validate(); err != nil {
		return nil, err
	}

	switch {
	case src.Stdin:
		return l.loadStdin()
	case src.URL != "":
		return l.loadURL(ctx, src)
	default:
		return l.loadFile(src.Path)
	}
}

func (l *Loader) loadFile(path string) ([]byte, error) {
	vfs := l.FS
	if vfs == nil {
		vfs = &system.FileSystem{}
	}

	f, err := vfs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return data, nil
}

func (l *Loader) loadStdin() ([]byte, error) {
	stdin := l.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return data, nil
}

func (l *Loader) loadURL(ctx context.Context, src Source) ([]byte, error) {
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if src.Username != "" || src.Password != "" {
		req.SetBasicAuth(src.Username, src.Password)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", src.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP request to %s failed with status %d", src.URL, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return data, nil
}
