package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepTimeScale(t *testing.T) {
	var tests = []struct {
		name   string
		ts     float64
		faster bool
		want   float64
	}{
		{"double", 1, true, 2},
		{"halve", 1, false, 0.5},
		{"ceiling", 64, true, 64},
		{"near ceiling", 40, true, 64},
		{"floor", 1.0 / 64, false, 1.0 / 64},
		{"near floor", 0.02, false, 1.0 / 64},
		{"restart", 0, true, 1},
		{"stopped stays stopped", 0, false, 0},
		{"negative restarts", -2, true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stepTimeScale(tt.ts, tt.faster))
		})
	}
}

func TestRepeatedSlowdownStaysPositive(t *testing.T) {
	ts := 1.0
	for i := 0; i < 20; i++ {
		ts = stepTimeScale(ts, false)
	}
	assert.Equal(t, minTimeScale, ts)

	for i := 0; i < 6; i++ {
		ts = stepTimeScale(ts, true)
	}
	assert.Equal(t, 1.0, ts)
}
