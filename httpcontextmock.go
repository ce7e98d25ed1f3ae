// Package httpcontextmock provides request context test doubles for code that
// reads and writes the current request session. Most tests interact with this
// package by:
//  1. Creating a ContextMock via New()
//  2. Wiring a session with SetupInMemorySession (a real in-memory store) or
//     SetupSession (a programmable SessionMock)
//  3. Passing the mock as a core.RequestContext to the code under test and
//     asserting on the session afterwards
//
// Both the session slot (ContextMock.Session) and the feature indirection
// (core.SessionFromFeatures on ContextMock.Features) resolve to the same
// session, so framework style helpers such as core.GetString work no matter
// which path the code under test takes.
package httpcontextmock

import (
	"context"

	"github.com/hupe1980/httpcontextmock/core"
	"github.com/hupe1980/httpcontextmock/logging"
	"github.com/hupe1980/httpcontextmock/session"
	"github.com/stretchr/testify/mock"
)

// Options configures a ContextMock.
type Options struct {
	// Context is returned from ContextMock.Context (defaults to context.Background()).
	Context context.Context

	// Logger is handed to sessions created by the setup helpers (defaults to NoOp logger if nil).
	Logger logging.Logger
}

// ContextMock is a core.RequestContext test double. The session slot starts
// empty; use one of the Setup* helpers to populate it.
type ContextMock struct {
	// SessionMock is the programmable session used by SetupSession.
	SessionMock *SessionMock

	// FeaturesMock backs Features(). Tests may program additional features on it.
	FeaturesMock *FeaturesMock

	opts        Options
	session     core.Session
	featureCall *mock.Call
}

// New creates a ContextMock with optional overrides.
func New(optFns ...func(o *Options)) *ContextMock {
	opts := Options{
		Context: context.Background(),
		Logger:  logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	opts.Logger = logging.OrNoOp(opts.Logger)

	return &ContextMock{
		SessionMock:  &SessionMock{},
		FeaturesMock: &FeaturesMock{},
		opts:         opts,
	}
}

// Context returns the ambient context of the simulated request.
func (c *ContextMock) Context() context.Context { return c.opts.Context }

// Features returns the request feature collection.
func (c *ContextMock) Features() core.FeatureCollection { return c.FeaturesMock }

// Session returns the current session or nil if none was set up.
func (c *ContextMock) Session() core.Session { return c.session }

// SetupSession makes SessionMock the current session. Program its behavior
// with SessionMock.On before exercising the code under test.
func (c *ContextMock) SetupSession() *ContextMock {
	c.SessionMock.On("ID").Return("SessionMock").Maybe()
	c.SessionMock.On("IsAvailable").Return(true).Maybe()
	return c.SetupSessionWith(c.SessionMock)
}

// SetupInMemorySession creates an in-memory session store and makes it the
// current session.
func (c *ContextMock) SetupInMemorySession(optFns ...func(o *session.InMemoryOptions)) *ContextMock {
	fns := append([]func(o *session.InMemoryOptions){func(o *session.InMemoryOptions) {
		o.Logger = c.opts.Logger
	}}, optFns...)
	return c.SetupSessionWith(session.NewInMemoryStore(fns...))
}

// SetupSessionWith makes s the current session and registers it as the
// session feature, replacing any earlier registration. A nil s clears the
// slot and the feature, as if no session had been set up.
func (c *ContextMock) SetupSessionWith(s core.Session) *ContextMock {
	if c.featureCall != nil {
		c.featureCall.Unset()
		c.featureCall = nil
	}
	c.session = s
	if s == nil {
		c.opts.Logger.Debug("session removed from request context")
		return c
	}
	c.featureCall = c.FeaturesMock.
		On("Get", core.SessionFeatureName).
		Return(core.NewSessionFeature(s)).
		Maybe()
	c.opts.Logger.Debug("session wired into request context", "session_id", s.ID())
	return c
}
