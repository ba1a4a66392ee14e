package slog

import (
	"log/slog"
	"time"

	pagegrab "github.com/mstolarz/pagegrab"
)

// Ensure LoggingRegistry implements pagegrab.HandlerRegistry.
var _ pagegrab.HandlerRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a HandlerRegistry with debug logging for service
// detection.
type LoggingRegistry struct {
	next   pagegrab.HandlerRegistry
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next pagegrab.HandlerRegistry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(h pagegrab.ServiceHandler) {
	r.next.Register(h)
}

// Get delegates to the wrapped registry.
func (r *LoggingRegistry) Get(service pagegrab.Service) pagegrab.ServiceHandler {
	return r.next.Get(service)
}

// Detect runs detection on the wrapped registry and logs the outcome.
func (r *LoggingRegistry) Detect(url string) (pagegrab.ServiceHandler, *pagegrab.ServiceFileInfo) {
	begin := time.Now()
	handler, info := r.next.Detect(url)
	serviceName := "(none)"
	if handler != nil {
		serviceName = handler.Name()
	}
	r.logger.Info("service detection",
		"service", serviceName,
		"url", url,
		"duration", time.Since(begin),
	)
	return handler, info
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []pagegrab.Service {
	return r.next.List()
}
