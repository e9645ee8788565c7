package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigResolveDefaultsToLatest(t *testing.T) {
	cfg := Config{}.Resolve()
	assert.Equal(t, LatestEcmaVersion, cfg.EcmaVersion)
	assert.False(t, cfg.Strict)
}

func TestConfigResolvePreservesExplicitVersion(t *testing.T) {
	cfg := Config{EcmaVersion: Es2018, Strict: true}.Resolve()
	assert.Equal(t, Es2018, cfg.EcmaVersion)
	assert.True(t, cfg.Strict)
}

func TestNoopHandlerSatisfiesInterface(t *testing.T) {
	var h Handler = NoopHandler{}
	h.OnPatternEnter(0)
	h.OnCharacter(0, 1, 'a')
	assert.NotNil(t, h)
}
