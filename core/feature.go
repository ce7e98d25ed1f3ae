package core

import (
	"context"
	"errors"
)

// SessionFeatureName is the feature name under which a FeatureCollection
// exposes the SessionFeature of a request.
const SessionFeatureName = "session"

// ErrSessionNotConfigured is returned when a request has no session feature.
var ErrSessionNotConfigured = errors.New("session has not been configured for this request")

// FeatureCollection resolves request features by name. Get returns nil for
// unknown features.
type FeatureCollection interface {
	Get(name string) any
}

// SessionFeature is the handle a FeatureCollection returns for
// SessionFeatureName.
type SessionFeature interface {
	Session() Session
}

// RequestContext is the request scope handed to code under test.
type RequestContext interface {
	Context() context.Context
	Features() FeatureCollection
	Session() Session
}

type sessionFeature struct {
	session Session
}

// NewSessionFeature wraps s as a SessionFeature.
func NewSessionFeature(s Session) SessionFeature {
	return &sessionFeature{session: s}
}

// Session returns the wrapped session.
func (f *sessionFeature) Session() Session { return f.session }

// SessionFromFeatures resolves the current session through the feature
// indirection.
func SessionFromFeatures(fc FeatureCollection) (Session, error) {
	if fc == nil {
		return nil, ErrSessionNotConfigured
	}
	feature, ok := fc.Get(SessionFeatureName).(SessionFeature)
	if !ok || feature == nil {
		return nil, ErrSessionNotConfigured
	}
	s := feature.Session()
	if s == nil {
		return nil, ErrSessionNotConfigured
	}
	return s, nil
}
