// Package settings holds the validated packing options handed to the pipeline.
package settings

// TextureClass scopes per-class texture encoding overrides.
type TextureClass int

const (
	ClassColor TextureClass = iota
	ClassNormal
	ClassAttrib

	TextureClassCount = 3
)

var classNames = [TextureClassCount]string{"color", "normal", "attrib"}

// String returns the command-line token for the class.
func (c TextureClass) String() string {
	if c < 0 || int(c) >= TextureClassCount {
		return "unknown"
	}
	return classNames[c]
}

// Settings holds all packing options.
//
// It only contains value fields, so copying a Settings yields an independent clone.
type Settings struct {
	Quantize bool `yaml:"quantize" json:"quantize"`

	PosBits int `yaml:"pos_bits" json:"pos_bits"`
	TexBits int `yaml:"tex_bits" json:"tex_bits"`
	NrmBits int `yaml:"nrm_bits" json:"nrm_bits"`
	ColBits int `yaml:"col_bits" json:"col_bits"`

	TrnBits   int  `yaml:"trn_bits" json:"trn_bits"`
	RotBits   int  `yaml:"rot_bits" json:"rot_bits"`
	SclBits   int  `yaml:"scl_bits" json:"scl_bits"`
	AnimFreq  int  `yaml:"anim_freq" json:"anim_freq"`
	AnimConst bool `yaml:"anim_const" json:"anim_const"`

	KeepNodes      bool `yaml:"keep_nodes" json:"keep_nodes"`
	KeepMaterials  bool `yaml:"keep_materials" json:"keep_materials"`
	KeepExtras     bool `yaml:"keep_extras" json:"keep_extras"`
	MeshMerge      bool `yaml:"mesh_merge" json:"mesh_merge"`
	MeshInstancing bool `yaml:"mesh_instancing" json:"mesh_instancing"`

	SimplifyThreshold  float32 `yaml:"simplify_threshold" json:"simplify_threshold"`
	SimplifyAggressive bool    `yaml:"simplify_aggressive" json:"simplify_aggressive"`
	SimplifyDebug      float32 `yaml:"simplify_debug,omitempty" json:"simplify_debug,omitempty"` // debug builds only
	MeshletDebug       int     `yaml:"meshlet_debug,omitempty" json:"meshlet_debug,omitempty"`    // debug builds only

	TextureKTX2    bool                    `yaml:"texture_ktx2" json:"texture_ktx2"`
	TextureUASTC   [TextureClassCount]bool `yaml:"texture_uastc,flow" json:"texture_uastc"`
	TextureQuality [TextureClassCount]int  `yaml:"texture_quality,flow" json:"texture_quality"`
	TextureScale   float32                 `yaml:"texture_scale" json:"texture_scale"`
	TexturePow2    bool                    `yaml:"texture_pow2" json:"texture_pow2"`
	TextureFlipY   bool                    `yaml:"texture_flipy" json:"texture_flipy"`

	Compress     bool `yaml:"compress" json:"compress"`
	CompressMore bool `yaml:"compress_more" json:"compress_more"`
	Fallback     bool `yaml:"fallback" json:"fallback"`

	Verbose int `yaml:"verbose" json:"verbose"`
}

// Default returns Settings with the documented default values.
func Default() Settings {
	s := Settings{
		Quantize: true,

		PosBits: 14,
		TexBits: 12,
		NrmBits: 8,
		ColBits: 8,

		TrnBits:  16,
		RotBits:  12,
		SclBits:  16,
		AnimFreq: 30,

		SimplifyThreshold: 1,

		TextureScale: 1,
	}
	for i := range s.TextureQuality {
		s.TextureQuality[i] = DefaultTextureQuality
	}
	return s
}

// DefaultTextureQuality is the encoding quality used for classes without an override.
const DefaultTextureQuality = 8

// SetTextureQuality applies q to every class in mask, clamped to the quality range.
func (s *Settings) SetTextureQuality(mask ClassMask, q int) {
	q = Clamp(q, TextureQualityRange.Min, TextureQualityRange.Max)
	for c := TextureClass(0); c < TextureClassCount; c++ {
		if mask.Has(c) {
			s.TextureQuality[c] = q
		}
	}
}

// SetTextureUASTC enables UASTC for every class in mask. UASTC output is always KTX2.
func (s *Settings) SetTextureUASTC(mask ClassMask) {
	for c := TextureClass(0); c < TextureClassCount; c++ {
		if mask.Has(c) {
			s.TextureUASTC[c] = true
		}
	}
	s.TextureKTX2 = true
}
