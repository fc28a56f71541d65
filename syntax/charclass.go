package syntax

import (
	"bytes"
	"fmt"
	"slices"
)

// CharSet is the member list of a bracketed class such as [abc] or [^abc].
// Members are raw characters; there are no ranges or escapes inside a class.
type CharSet struct {
	chars  []rune // sorted, no duplicates
	negate bool
}

// NewCharSet builds a set from the given members.
func NewCharSet(members []rune, negate bool) *CharSet {
	c := &CharSet{negate: negate}
	for _, ch := range members {
		c.addChar(ch)
	}
	return c
}

func (c *CharSet) addChar(ch rune) {
	i, found := slices.BinarySearch(c.chars, ch)
	if found {
		return
	}
	c.chars = slices.Insert(c.chars, i, ch)
}

// CharIn reports whether ch is accepted by the set, taking negation into account.
func (c *CharSet) CharIn(ch rune) bool {
	_, found := slices.BinarySearch(c.chars, ch)
	return found != c.negate
}

func (c *CharSet) IsNegated() bool {
	return c.negate
}

// Members returns a copy of the set's characters in ascending order.
func (c *CharSet) Members() []rune {
	return slices.Clone(c.chars)
}

func (c *CharSet) IsEmpty() bool {
	return len(c.chars) == 0 && !c.negate
}

func (c *CharSet) Equals(other *CharSet) bool {
	if other == nil {
		return false
	}
	return c.negate == other.negate && slices.Equal(c.chars, other.chars)
}

// String produces a human-readable description of the set.
func (c *CharSet) String() string {
	buf := &bytes.Buffer{}
	buf.WriteRune('[')
	if c.negate {
		buf.WriteRune('^')
	}
	for _, ch := range c.chars {
		buf.WriteString(CharDescription(ch))
	}
	buf.WriteRune(']')
	return buf.String()
}

// Produces a human-readable description for a single character.
func CharDescription(ch rune) string {
	if ch == '\\' {
		return "\\\\"
	}

	if ch >= ' ' && ch <= '~' {
		return string(ch)
	}

	return fmt.Sprintf("%U", ch)
}
