package helpers

import "unicode"

func IsBetween(val rune, first, last rune) bool {
	if val > last {
		return false
	}
	if val >= first {
		return true
	}
	return false
}

// IsDigit matches \d: ASCII decimal digits only.
func IsDigit(r rune) bool {
	return IsBetween(r, '0', '9')
}

// IsWordChar matches \w: letters and numbers of any script, plus underscore.
func IsWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// RunesEqualAt reports whether want occurs in `in` starting at index pos.
func RunesEqualAt(in []rune, pos int, want []rune) bool {
	if pos < 0 || pos+len(want) > len(in) {
		return false
	}
	for i, c := range want {
		if in[pos+i] != c {
			return false
		}
	}
	return true
}
