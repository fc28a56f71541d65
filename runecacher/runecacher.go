package runecacher

import (
	"unicode/utf8"
)

const cachePrimeSize = 10

// RuneCacher gives random access to the runes of a string or rune slice.
// Runes are decoded on demand and kept, so the matcher can revisit any
// position by index when it backtracks.
type RuneCacher struct {
	runes  []rune
	inpStr string

	// byte offset of the first undecoded rune in inpStr
	inpUncachedPos int
}

func NewFromRunes(runes []rune) *RuneCacher {
	return &RuneCacher{
		runes: runes,
	}
}

func NewFromString(str string) *RuneCacher {
	r := &RuneCacher{
		runes:  make([]rune, 0, min(len(str), 64)),
		inpStr: str,
	}
	// prime cache with some runes
	r.cachedNext(cachePrimeSize)
	return r
}

// Len returns the number of runes in the input. It decodes whatever is
// still uncached.
func (r *RuneCacher) Len() int {
	r.cachedNext(len(r.inpStr))
	return len(r.runes)
}

func (r *RuneCacher) String() string {
	if r.inpStr != "" {
		return r.inpStr
	}

	return string(r.runes)
}

// HasRuneAt reports whether the input has a rune at textPos, decoding up to
// it if needed. A false result at textPos >= 0 means textPos is at or past the end.
func (r *RuneCacher) HasRuneAt(textPos int) bool {
	if textPos < 0 {
		return false
	}
	if textPos < len(r.runes) {
		return true
	}
	r.cachedNext(textPos - len(r.runes) + 1)
	return textPos < len(r.runes)
}

// IsEnd reports whether textPos is exactly the end of the input.
func (r *RuneCacher) IsEnd(textPos int) bool {
	return textPos >= 0 && !r.HasRuneAt(textPos) && (textPos == 0 || r.HasRuneAt(textPos-1))
}

// RuneAt returns the rune at textPos. Callers check HasRuneAt first.
func (r *RuneCacher) RuneAt(textPos int) rune {
	if textPos < len(r.runes) {
		return r.runes[textPos]
	}
	// not in our cache - populate cache
	r.cachedNext(textPos - len(r.runes) + 1)

	return r.runes[textPos]
}

// CachedRunesFromTo returns only the cached runes in [textPos, textEnd).
// Only safe to use if you're sure the runes are cached at those indices.
func (r *RuneCacher) CachedRunesFromTo(textPos, textEnd int) []rune {
	return r.runes[textPos:textEnd]
}

// CachedRunes returns everything decoded so far.
func (r *RuneCacher) CachedRunes() []rune {
	return r.runes
}

func (r *RuneCacher) hasUncached() bool {
	// if we're not passed the end then we have more to cache
	return r.inpUncachedPos < len(r.inpStr)
}

func (r *RuneCacher) cachedNext(count int) {
	// decode up to count more runes, stopping early at the end of input
	for r.hasUncached() && count > 0 {
		newRune, newLen := utf8.DecodeRuneInString(r.inpStr[r.inpUncachedPos:])
		r.runes = append(r.runes, newRune)
		r.inpUncachedPos += newLen
		count--
	}
}
