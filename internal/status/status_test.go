package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		running, total int
		want           State
	}{
		{0, 0, Stopped},
		{3, 3, Running},
		{2, 3, PartialRunning},
		{-1, -1, ConfigError},
		{0, 5, Stopped},
		{1, 1, Running},
		{1, 2, PartialRunning},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.running, tt.total), "Classify(%d, %d)", tt.running, tt.total)
	}
}

func TestResultState(t *testing.T) {
	assert.Equal(t, Running, Counts(2, 2).State())
	assert.Equal(t, Stopped, Counts(0, 0).State())
	assert.Equal(t, PartialRunning, Counts(1, 4).State())

	invalid := Invalid("compose file /x.yml: file not found")
	assert.False(t, invalid.Valid())
	assert.Equal(t, ConfigError, invalid.State())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "partial", PartialRunning.String())
	assert.Equal(t, "stopped", Stopped.String())
	assert.Equal(t, "config error", ConfigError.String())
	assert.Equal(t, "stopped", State(42).String())
}
