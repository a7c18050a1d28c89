package dataset

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"sync"
)

// SourceFactory creates a Source for a parsed dataset URI
type SourceFactory func(ctx context.Context, uri *url.URL) (Source, error)

// Registry manages dataset source factories keyed by URI scheme
type Registry interface {
	// Register adds a new source factory for a scheme
	Register(scheme string, factory SourceFactory) error
	// Create instantiates a source for the given dataset URI
	Create(ctx context.Context, uri string) (Source, error)
	// ListSchemes returns the registered schemes in sorted order
	ListSchemes() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]SourceFactory
}

// NewRegistry creates an empty source registry
func NewRegistry() Registry {
	return &registry{
		factories: make(map[string]SourceFactory),
	}
}

// DefaultRegistry knows local files and S3 objects
func DefaultRegistry() Registry {
	r := NewRegistry()
	_ = r.Register(SchemeFile, FileSourceFactory)
	_ = r.Register(SchemeS3, S3SourceFactory)
	return r
}

func (r *registry) Register(scheme string, factory SourceFactory) error {
	if scheme == "" {
		return fmt.Errorf("scheme cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[scheme]; exists {
		return fmt.Errorf("scheme %q is already registered", scheme)
	}

	r.factories[scheme] = factory
	return nil
}

func (r *registry) Create(ctx context.Context, uri string) (Source, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("parse dataset uri %q: %w", uri, err)
	}

	scheme := parsed.Scheme
	if scheme == "" {
		scheme = SchemeFile
	}

	r.mu.RLock()
	factory, exists := r.factories[scheme]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("scheme %q is not registered", scheme)
	}

	return factory(ctx, parsed)
}

func (r *registry) ListSchemes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	schemes := make([]string, 0, len(r.factories))
	for scheme := range r.factories {
		schemes = append(schemes, scheme)
	}
	sort.Strings(schemes)
	return schemes
}
