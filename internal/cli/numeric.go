package cli

import (
	"math"
	"strconv"
)

// Operand shapes are decided by the first character only, so "3x" is numeric
// and converts to 3.

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

// isClassList reports whether s is shaped like a texture class list: lowercase
// names separated by commas. Paths and numbers never match.
func isClassList(s string) bool {
	if s == "" || s[0] == ',' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if (s[i] < 'a' || s[i] > 'z') && s[i] != ',' {
			return false
		}
	}
	return true
}

// parseInt converts the leading decimal digits of s, ignoring anything after them.
// Values beyond int32 saturate.
func parseInt(s string) int {
	n := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
		if n > math.MaxInt32 {
			return math.MaxInt32
		}
	}
	return n
}

// parseFloat converts the longest decimal floating-point prefix of s.
func parseFloat(s string) float32 {
	end := scanDigits(s, 0)
	if end < len(s) && s[end] == '.' {
		end = scanDigits(s, end+1)
	}
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		exp := end + 1
		if exp < len(s) && (s[exp] == '+' || s[exp] == '-') {
			exp++
		}
		if digits := scanDigits(s, exp); digits > exp {
			end = digits
		}
	}

	// Out-of-range exponents still yield +Inf or 0, which clamping handles.
	v, _ := strconv.ParseFloat(s[:end], 32)
	return float32(v)
}

func scanDigits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}
