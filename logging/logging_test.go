package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduction(t *testing.T) {
	logger, err := New(false)
	require.NoError(t, err)
	assert.NotNil(t, logger)
	defer logger.Sync()
}

func TestNewDevelopment(t *testing.T) {
	logger, err := New(true)
	require.NoError(t, err)
	assert.NotNil(t, logger)
	defer logger.Sync()
}

func TestNop(t *testing.T) {
	assert.NotNil(t, Nop())
}
