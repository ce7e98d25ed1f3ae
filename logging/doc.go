// Package logging provides a minimal logging interface and adapters used by
// the session stores and request context mocks.
//
// The Logger interface defines the leveled methods (Debug, Info, Warn, Error)
// components call for observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (the default everywhere)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelDebug, "text", false)
//	store := session.NewInMemoryStore(func(o *session.InMemoryOptions) { o.Logger = logger })
package logging
