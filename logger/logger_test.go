package logger

import (
	"testing"
	"time"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
)

func TestLogger_NewLogger(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		logger := NewLogger("DEBUG", "RandWalkTest")
		assert.NotNil(t, logger)
		assert.True(t, logger.IsEnabledFor(logging.DEBUG))
	})

	t.Run("level is case insensitive", func(t *testing.T) {
		logger := NewLogger("notice", "RandWalkTest")
		assert.NotNil(t, logger)
		assert.True(t, logger.IsEnabledFor(logging.NOTICE))
		assert.False(t, logger.IsEnabledFor(logging.INFO))
	})

	t.Run("invalid log level falls back to info", func(t *testing.T) {
		logger := NewLogger("INVALID", "RandWalkTest")
		assert.NotNil(t, logger)
		assert.True(t, logger.IsEnabledFor(logging.INFO))
		assert.False(t, logger.IsEnabledFor(logging.DEBUG))
	})
}

func TestLogger_ParseTime(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		hours   uint32
		minutes uint32
		seconds uint32
	}{
		{0, 0, 0, 0},
		{59 * time.Second, 0, 0, 59},
		{61 * time.Second, 0, 1, 1},
		{3661 * time.Second, 1, 1, 1},
		{1900 * time.Millisecond, 0, 0, 2},
		// durations beyond a day stay in hours
		{25*time.Hour + 30*time.Minute, 25, 30, 0},
	}
	for _, test := range tests {
		hours, minutes, seconds := ParseTime(test.elapsed)
		assert.Equal(t, test.hours, hours, "hours of %v", test.elapsed)
		assert.Equal(t, test.minutes, minutes, "minutes of %v", test.elapsed)
		assert.Equal(t, test.seconds, seconds, "seconds of %v", test.elapsed)
	}
}
