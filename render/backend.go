package render

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
)

// ErrUnsupportedContainer is returned, wrapped, by exporters asked to
// export a container kind they do not handle.
var ErrUnsupportedContainer = errors.New("render: unsupported container")

// Exporter writes a container to w. Containers are *shape.Page,
// *shape.Document and *shape.Project; each backend documents which of
// them it accepts.
type Exporter interface {
	Export(w io.Writer, container any) error
}

// Unsupported builds the error an exporter returns for container c.
func Unsupported(backend string, c any) error {
	return fmt.Errorf("%s: %w: %T", backend, ErrUnsupportedContainer, c)
}

// BackendFactory creates an exporter drawing through r.
type BackendFactory func(r *Renderer) Exporter

var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
)

// RegisterBackend makes a backend available by name. It is meant to be
// called from the init function of the backend package:
//
//	func init() {
//	    render.RegisterBackend("raster", func(r *render.Renderer) render.Exporter {
//	        return New(r)
//	    })
//	}
//
// RegisterBackend panics if factory is nil or name is already taken.
func RegisterBackend(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("render: RegisterBackend factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("render: RegisterBackend called twice for " + name)
	}
	backends[name] = factory
}

// UnregisterBackend removes a backend. Unknown names are ignored.
func UnregisterBackend(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// NewBackend creates the named exporter. A nil r gets a fresh renderer.
func NewBackend(name string, r *Renderer) (Exporter, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("render: unknown backend %q (forgotten import?)", name)
	}
	if r == nil {
		r = NewRenderer()
	}
	return factory(r), nil
}

// MustBackend is like NewBackend but panics on error.
func MustBackend(name string, r *Renderer) Exporter {
	e, err := NewBackend(name, r)
	if err != nil {
		panic(err)
	}
	return e
}

// Backends returns the registered names in sorted order.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a backend with the given name exists.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}
