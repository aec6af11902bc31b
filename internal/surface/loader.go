package surface

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/notedeck/notedeck/internal/errors"
	"github.com/notedeck/notedeck/internal/sandbox"
)

const (
	// DefaultLoadTimeout bounds a single locator load.
	DefaultLoadTimeout = 15 * time.Second

	// MaxDocumentBytes caps how much of a document a surface will read.
	MaxDocumentBytes = 4 << 20
)

// Loader fetches the content behind a locator.
type Loader interface {
	Load(ctx context.Context, locator string) ([]byte, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(ctx context.Context, locator string) ([]byte, error)

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context, locator string) ([]byte, error) {
	return f(ctx, locator)
}

// OriginLoader resolves http(s) URLs over the network and everything else
// against BaseDir, the host's origin. Reading the origin requires the
// allow-same-origin capability.
type OriginLoader struct {
	BaseDir string
	Policy  sandbox.Policy
	Client  *http.Client
	Timeout time.Duration
}

// NewLoader creates an OriginLoader. A zero timeout uses DefaultLoadTimeout.
func NewLoader(baseDir string, policy sandbox.Policy, timeout time.Duration) *OriginLoader {
	if timeout <= 0 {
		timeout = DefaultLoadTimeout
	}
	return &OriginLoader{
		BaseDir: baseDir,
		Policy:  policy,
		Client:  &http.Client{},
		Timeout: timeout,
	}
}

// Load implements Loader.
func (l *OriginLoader) Load(ctx context.Context, locator string) ([]byte, error) {
	u, err := url.Parse(locator)
	if err != nil {
		return nil, errors.DocumentLoadFailed(locator, err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return l.fetch(ctx, locator)
	case "", "file":
		if !l.Policy.AllowSameOrigin {
			return nil, errors.LocatorForbidden(locator)
		}
		p := locator
		if u.Scheme == "file" {
			p = u.Path
		}
		return l.readFile(locator, p)
	default:
		return nil, errors.E(errors.Op("surface.Load"), errors.KindInvalid,
			fmt.Sprintf("unsupported locator scheme %q", u.Scheme))
	}
}

func (l *OriginLoader) readFile(locator, p string) ([]byte, error) {
	if !filepath.IsAbs(p) {
		p = filepath.Join(l.BaseDir, p)
	}
	f, err := os.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.E(errors.Op("surface.Load"), errors.KindNotFound, fmt.Sprintf("%s does not exist", locator), err)
		}
		return nil, errors.DocumentLoadFailed(locator, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxDocumentBytes))
	if err != nil {
		return nil, errors.DocumentLoadFailed(locator, err)
	}
	return data, nil
}

func (l *OriginLoader) fetch(ctx context.Context, locator string) ([]byte, error) {
	timeout := l.Timeout
	if timeout <= 0 {
		timeout = DefaultLoadTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, locator, nil)
	if err != nil {
		return nil, errors.DocumentFetchFailed(locator, err)
	}
	req.Header.Set("Accept", "text/html, text/markdown;q=0.9, text/plain;q=0.8")

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		if stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, errors.DocumentLoadTimeout(locator)
		}
		return nil, errors.DocumentFetchFailed(locator, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.DocumentFetchFailed(locator, fmt.Errorf("unexpected status %s", resp.Status))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxDocumentBytes))
	if err != nil {
		return nil, errors.DocumentFetchFailed(locator, err)
	}
	return data, nil
}
