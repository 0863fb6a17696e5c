package settings

import "golang.org/x/exp/constraints"

// Clamp returns v limited to the closed range [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// IntRange is a closed range for an integer option.
type IntRange struct {
	Min, Max int
}

// Clamp limits v to the range.
func (r IntRange) Clamp(v int) int { return Clamp(v, r.Min, r.Max) }

// FloatRange is a closed range for a ratio option.
type FloatRange struct {
	Min, Max float32
}

// Clamp limits v to the range.
func (r FloatRange) Clamp(v float32) float32 { return Clamp(v, r.Min, r.Max) }

// Accepted ranges; values outside are clamped while parsing.
var (
	VertexBitsRange      = IntRange{1, 16}
	TranslationBitsRange = IntRange{1, 24}
	RotationBitsRange    = IntRange{4, 16}
	ScaleBitsRange       = IntRange{1, 24}
	AnimFreqRange        = IntRange{1, 100}
	TextureQualityRange  = IntRange{1, 10}
	MeshletDebugRange    = IntRange{3, 255}

	RatioRange = FloatRange{0, 1}
)
