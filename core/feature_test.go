package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapFeatures map[string]any

func (m mapFeatures) Get(name string) any { return m[name] }

func TestSessionFromFeatures(t *testing.T) {
	var s Session = nilSession{}

	got, err := SessionFromFeatures(mapFeatures{SessionFeatureName: NewSessionFeature(s)})
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestSessionFromFeatures_NotConfigured(t *testing.T) {
	tests := map[string]FeatureCollection{
		"nil collection":  nil,
		"missing feature": mapFeatures{},
		"wrong type":      mapFeatures{SessionFeatureName: "not a feature"},
		"nil session":     mapFeatures{SessionFeatureName: NewSessionFeature(nil)},
	}

	for name, fc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := SessionFromFeatures(fc)
			assert.ErrorIs(t, err, ErrSessionNotConfigured)
		})
	}
}

// nilSession is an empty Session used to exercise feature resolution.
type nilSession struct{ Session }

func (nilSession) ID() string { return "nil" }
