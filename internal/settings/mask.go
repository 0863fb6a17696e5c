package settings

import "strings"

// ClassMask is a set of texture classes.
type ClassMask uint8

// AllClasses selects every texture class.
const AllClasses ClassMask = 1<<TextureClassCount - 1

// MaskOf builds a mask from the given classes.
func MaskOf(classes ...TextureClass) ClassMask {
	var m ClassMask
	for _, c := range classes {
		m |= 1 << c
	}
	return m
}

// Has reports whether c is in the mask.
func (m ClassMask) Has(c TextureClass) bool {
	return m&(1<<c) != 0
}

// String renders the mask as a comma-separated class list.
func (m ClassMask) String() string {
	var parts []string
	for c := TextureClass(0); c < TextureClassCount; c++ {
		if m.Has(c) {
			parts = append(parts, c.String())
		}
	}
	return strings.Join(parts, ",")
}

// ParseClassMask converts a comma-separated list such as "color,normal" into a mask.
// Tokens are case-sensitive. Unknown tokens are left out of the mask and returned
// so the caller can report them.
func ParseClassMask(list string) (ClassMask, []string) {
	var (
		mask    ClassMask
		unknown []string
	)
	for _, tok := range strings.Split(list, ",") {
		c, ok := lookupClass(tok)
		if !ok {
			unknown = append(unknown, tok)
			continue
		}
		mask |= 1 << c
	}
	return mask, unknown
}

func lookupClass(tok string) (TextureClass, bool) {
	for i, name := range classNames {
		if tok == name {
			return TextureClass(i), true
		}
	}
	return 0, false
}
