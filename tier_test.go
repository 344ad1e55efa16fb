package solarsystem

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectTier(t *testing.T) {
	full := Capabilities{StandardMaterials: true, PostProcessing: true}
	var tests = []struct {
		name   string
		caps   Capabilities
		forced string
		want   RenderingTier
		err    bool
	}{
		{"capable", full, "", TierFull, false},
		{"capable auto", full, "auto", TierFull, false},
		{"no post processing", Capabilities{StandardMaterials: true}, "auto", TierBasic, false},
		{"nothing", Capabilities{}, "", TierBasic, false},
		{"forced basic", full, "basic", TierBasic, false},
		{"forced full", Capabilities{}, "FULL", TierFull, false},
		{"unknown", full, "ultra", TierBasic, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectTier(tt.caps, tt.forced)
			if tt.err {
				assert.True(t, errors.Is(err, ErrInvalidConfig))
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMaterialForTier(t *testing.T) {
	assert.True(t, NewMaterial(TierFull, Hex(0x123456)).HasEmissive)
	basic := NewMaterial(TierBasic, Hex(0x123456))
	assert.False(t, basic.HasEmissive)
	assert.Equal(t, 1.0, basic.Opacity)
	assert.Equal(t, uint8(0x34), basic.Color.G)
}
