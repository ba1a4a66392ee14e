// Package cloud implements URL detection and download-URL resolution for
// documents hosted on third-party cloud services (Google, Dropbox, Box,
// OneDrive/SharePoint). Each service is a ServiceHandler with its own URL
// patterns and resolution strategy chain; the Registry dispatches to the
// first handler that recognizes a URL.
package cloud

import (
	pagegrab "github.com/mstolarz/pagegrab"
)

// Ensure Registry implements pagegrab.HandlerRegistry at compile time.
var _ pagegrab.HandlerRegistry = (*Registry)(nil)

// Registry holds the set of service handlers. It is constructed once at
// startup and read-only thereafter; registration order is the detection
// priority when a URL could structurally match more than one service.
type Registry struct {
	order    []pagegrab.Service
	handlers map[pagegrab.Service]pagegrab.ServiceHandler
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[pagegrab.Service]pagegrab.ServiceHandler),
	}
}

// NewDefaultRegistry creates a Registry with the four built-in services
// registered in their fixed priority order.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewGoogleHandler())
	r.Register(NewDropboxHandler())
	r.Register(NewBoxHandler())
	r.Register(NewOneDriveHandler())
	return r
}

// Register adds a handler. Registering a second handler for the same
// service replaces the first but keeps its priority position.
func (r *Registry) Register(h pagegrab.ServiceHandler) {
	if _, ok := r.handlers[h.Service()]; !ok {
		r.order = append(r.order, h.Service())
	}
	r.handlers[h.Service()] = h
}

// Get returns the handler for a specific service, or nil if none is
// registered.
func (r *Registry) Get(service pagegrab.Service) pagegrab.ServiceHandler {
	return r.handlers[service]
}

// Detect returns the first registered handler whose Detect matches the
// URL. A URL no service recognizes yields (nil, nil).
func (r *Registry) Detect(url string) (pagegrab.ServiceHandler, *pagegrab.ServiceFileInfo) {
	for _, service := range r.order {
		h := r.handlers[service]
		if info := h.Detect(url); info != nil {
			return h, info
		}
	}
	return nil, nil
}

// List returns registered services in registration order.
func (r *Registry) List() []pagegrab.Service {
	out := make([]pagegrab.Service, len(r.order))
	copy(out, r.order)
	return out
}
