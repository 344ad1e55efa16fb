package solarsystem

import (
	"fmt"
	"strings"
)

// RenderingTier selects between the full material/effect set and a plain fallback.
// It is detected once at startup.
type RenderingTier int

const (
	TierFull RenderingTier = iota
	TierBasic
)

func (t RenderingTier) String() string {
	switch t {
	case TierFull:
		return "full"
	case TierBasic:
		return "basic"
	}
	return fmt.Sprintf("RenderingTier(%d)", int(t))
}

// Capabilities reports what the host renderer supports.
type Capabilities struct {
	StandardMaterials bool
	PostProcessing    bool
}

// DetectTier picks the tier the host can render. A forced tier name ("full" or
// "basic") wins over detection; "auto" or "" defers to it.
func DetectTier(caps Capabilities, forced string) (RenderingTier, error) {
	switch strings.ToLower(forced) {
	case "", "auto":
	case "full":
		return TierFull, nil
	case "basic":
		return TierBasic, nil
	default:
		return TierBasic, fmt.Errorf("unknown rendering tier %q: %w", forced, ErrInvalidConfig)
	}
	if caps.StandardMaterials && caps.PostProcessing {
		return TierFull, nil
	}
	return TierBasic, nil
}
