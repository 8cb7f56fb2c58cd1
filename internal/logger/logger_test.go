package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbansim/pedflow/internal/logger"
)

func TestNew(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		log, err := logger.New(level)
		require.NoError(t, err, "level %q", level)
		assert.NotNil(t, log)
	}
}

// TestNew_UnknownLevel falls back to info instead of failing.
func TestNew_UnknownLevel(t *testing.T) {
	log, err := logger.New("chatty")
	require.NoError(t, err)
	assert.NotNil(t, log)
}
