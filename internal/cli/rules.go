package cli

import "github.com/Faultbox/gltfpack/internal/settings"

type ruleKind int

const (
	ruleSwitch ruleKind = iota
	ruleInt
	ruleFloat
	ruleClassedInt    // -tq [C] N
	ruleClassedSwitch // -tu [C]
	rulePath
	ruleDeprecated
)

// rule matches one flag spelling. Only the fields for its kind are set.
type rule struct {
	flag string
	kind ruleKind

	on       func(*Invocation)
	setInt   func(*settings.Settings, int)
	setFloat func(*settings.Settings, float32)
	classed  func(*settings.Settings, settings.ClassMask, int)
	path     func(*Invocation) *string
	intRange settings.IntRange
	fltRange settings.FloatRange
	warning  string
}

func switchRule(flag string, on func(*Invocation)) rule {
	return rule{flag: flag, kind: ruleSwitch, on: on}
}

func optionRule(flag string, on func(*settings.Settings)) rule {
	return switchRule(flag, func(inv *Invocation) { on(&inv.Settings) })
}

func intRule(flag string, r settings.IntRange, set func(*settings.Settings, int)) rule {
	return rule{flag: flag, kind: ruleInt, intRange: r, setInt: set}
}

func floatRule(flag string, r settings.FloatRange, set func(*settings.Settings, float32)) rule {
	return rule{flag: flag, kind: ruleFloat, fltRange: r, setFloat: set}
}

func pathRule(flag string, path func(*Invocation) *string) rule {
	return rule{flag: flag, kind: rulePath, path: path}
}

func deprecatedRule(flag, warning string) rule {
	return rule{flag: flag, kind: ruleDeprecated, warning: warning}
}

// match tries the rule at args[i] and returns the number of tokens consumed,
// or 0 when the flag or its operand shape does not fit.
func (r rule) match(inv *Invocation, args []string, i int) int {
	if args[i] != r.flag {
		return 0
	}
	next := func(k int) string {
		if i+k < len(args) {
			return args[i+k]
		}
		return ""
	}

	switch r.kind {
	case ruleSwitch:
		r.on(inv)
		return 1

	case ruleInt:
		if !startsWithDigit(next(1)) {
			return 0
		}
		r.setInt(&inv.Settings, r.intRange.Clamp(parseInt(next(1))))
		return 2

	case ruleFloat:
		if !startsWithDigit(next(1)) {
			return 0
		}
		r.setFloat(&inv.Settings, r.fltRange.Clamp(parseFloat(next(1))))
		return 2

	case ruleClassedInt:
		if isClassList(next(1)) && startsWithDigit(next(2)) {
			r.classed(&inv.Settings, inv.classMask(next(1)), parseInt(next(2)))
			return 3
		}
		if startsWithDigit(next(1)) {
			r.classed(&inv.Settings, settings.AllClasses, parseInt(next(1)))
			return 2
		}
		return 0

	case ruleClassedSwitch:
		if isClassList(next(1)) {
			r.classed(&inv.Settings, inv.classMask(next(1)), 0)
			return 2
		}
		r.classed(&inv.Settings, settings.AllClasses, 0)
		return 1

	case rulePath:
		if i+1 >= len(args) {
			return 0
		}
		// First occurrence wins; repeats consume their operand and are ignored.
		if p := r.path(inv); *p == "" {
			*p = args[i+1]
		}
		return 2

	case ruleDeprecated:
		inv.Warnings = append(inv.Warnings, r.warning)
		return 1
	}
	return 0
}

// classMask parses a class list, recording unknown classes as warnings.
func (inv *Invocation) classMask(list string) settings.ClassMask {
	mask, unknown := settings.ParseClassMask(list)
	for _, tok := range unknown {
		inv.Warnings = append(inv.Warnings, "unrecognized texture class "+tok)
	}
	return mask
}

// rules is the flag table in match priority order. Within one spelling the
// class-qualified form is tried before the bare form by the rule itself.
var rules = buildRules()

func buildRules() []rule {
	table := []rule{
		intRule("-vp", settings.VertexBitsRange, func(s *settings.Settings, v int) { s.PosBits = v }),
		intRule("-vt", settings.VertexBitsRange, func(s *settings.Settings, v int) { s.TexBits = v }),
		intRule("-vn", settings.VertexBitsRange, func(s *settings.Settings, v int) { s.NrmBits = v }),
		intRule("-vc", settings.VertexBitsRange, func(s *settings.Settings, v int) { s.ColBits = v }),
		intRule("-at", settings.TranslationBitsRange, func(s *settings.Settings, v int) { s.TrnBits = v }),
		intRule("-ar", settings.RotationBitsRange, func(s *settings.Settings, v int) { s.RotBits = v }),
		intRule("-as", settings.ScaleBitsRange, func(s *settings.Settings, v int) { s.SclBits = v }),
		intRule("-af", settings.AnimFreqRange, func(s *settings.Settings, v int) { s.AnimFreq = v }),
		optionRule("-ac", func(s *settings.Settings) { s.AnimConst = true }),

		optionRule("-kn", func(s *settings.Settings) { s.KeepNodes = true }),
		optionRule("-km", func(s *settings.Settings) { s.KeepMaterials = true }),
		optionRule("-ke", func(s *settings.Settings) { s.KeepExtras = true }),
		optionRule("-mm", func(s *settings.Settings) { s.MeshMerge = true }),
		optionRule("-mi", func(s *settings.Settings) { s.MeshInstancing = true }),

		floatRule("-si", settings.RatioRange, func(s *settings.Settings, v float32) { s.SimplifyThreshold = v }),
		optionRule("-sa", func(s *settings.Settings) { s.SimplifyAggressive = true }),
	}

	if settings.DebugOptions {
		table = append(table,
			floatRule("-sd", settings.RatioRange, func(s *settings.Settings, v float32) { s.SimplifyDebug = v }),
			intRule("-md", settings.MeshletDebugRange, func(s *settings.Settings, v int) { s.MeshletDebug = v }),
		)
	}

	table = append(table,
		rule{flag: "-tu", kind: ruleClassedSwitch, classed: func(s *settings.Settings, m settings.ClassMask, _ int) {
			s.SetTextureUASTC(m)
		}},
		optionRule("-tc", func(s *settings.Settings) { s.TextureKTX2 = true }),
		rule{flag: "-tq", kind: ruleClassedInt, classed: func(s *settings.Settings, m settings.ClassMask, q int) {
			s.SetTextureQuality(m, q)
		}},
		floatRule("-ts", settings.RatioRange, func(s *settings.Settings, v float32) { s.TextureScale = v }),
		optionRule("-tp", func(s *settings.Settings) { s.TexturePow2 = true }),
		optionRule("-tfy", func(s *settings.Settings) { s.TextureFlipY = true }),
		deprecatedRule("-te", "-te is deprecated and will be removed in the future; textures are embedded into GLB files automatically"),

		optionRule("-noq", func(s *settings.Settings) { s.Quantize = false }),

		pathRule("-i", func(inv *Invocation) *string { return &inv.Input }),
		pathRule("-o", func(inv *Invocation) *string { return &inv.Output }),
		pathRule("-r", func(inv *Invocation) *string { return &inv.Report }),

		optionRule("-c", func(s *settings.Settings) { s.Compress = true }),
		optionRule("-cc", func(s *settings.Settings) { s.Compress, s.CompressMore = true, true }),
		optionRule("-cf", func(s *settings.Settings) { s.Compress, s.Fallback = true, true }),

		optionRule("-v", func(s *settings.Settings) { s.Verbose = 1 }),
		optionRule("-vv", func(s *settings.Settings) { s.Verbose = 2 }),
		switchRule("-h", func(inv *Invocation) { inv.Help = true }),
		switchRule("-test", func(inv *Invocation) { inv.Test = true }),
	)
	return table
}

// knownFlag reports whether some rule uses the spelling.
func knownFlag(flag string) bool {
	for _, r := range rules {
		if r.flag == flag {
			return true
		}
	}
	return false
}
