package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	logger := New()
	assert.NotNil(t, logger)
	assert.NotNil(t, logger.info)
	assert.NotNil(t, logger.warn)
	assert.NotNil(t, logger.error)
}

func TestLogger_DoesNotPanic(t *testing.T) {
	logger := New()

	logger.Info("user %s fetched video %s", "u1", "v1")
	logger.Warn("asset release failed for key %s", "videos/u1/abc.mp4")
	logger.Error("cascade aborted: %v", "dependent delete failed")
}

func TestLogger_MultipleCalls(t *testing.T) {
	logger := New()

	for i := 0; i < 3; i++ {
		logger.Info("info %d", i)
		logger.Warn("warn %d", i)
		logger.Error("error %d", i)
	}
}
