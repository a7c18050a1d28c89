package dataset

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"github.com/de-tools/rental-atlas/pkg/models/domain"
)

type fileSource struct {
	path string
}

func NewFileSource(path string) Source {
	return &fileSource{path: path}
}

func FileSourceFactory(_ context.Context, uri *url.URL) (Source, error) {
	path := uri.Path
	if uri.Host != "" {
		// file://relative/path
		path = uri.Host + uri.Path
	}
	if path == "" {
		return nil, fmt.Errorf("file uri %q has no path", uri.String())
	}
	return NewFileSource(path), nil
}

func (s *fileSource) Load(_ context.Context) ([]domain.Rental, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, &domain.DataAccessError{Source: s.path, Err: err}
	}
	defer f.Close()

	return Decode(f, s.path)
}
