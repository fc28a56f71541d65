/*
Package regrep matches a single line of text against a small backtracking regular expression dialect.

The dialect covers literals, ., \d, \w, [abc] and [^abc] classes, the ^ and $ anchors, the greedy ? and +
quantifiers, capturing groups with alternation and \1 through \9 backreferences. Matching is naive
backtracking with no time guarantees: the caller is expected to bound the size of the input.
*/
package regrep

import (
	"strconv"

	"github.com/regrep/regrep/runecacher"
	"github.com/regrep/regrep/syntax"
)

// PatternError is the error returned for a malformed pattern.
type PatternError = syntax.Error

// Regexp is the representation of a compiled pattern.
// A Regexp is safe for concurrent use by multiple goroutines.
type Regexp struct {
	// read-only after Compile
	pattern string // as passed to Compile
	tree    *syntax.RegexTree
}

// Compile parses a pattern and returns, if successful,
// a Regexp object that can be used to match against text.
func Compile(expr string) (*Regexp, error) {
	tree, err := syntax.Parse(expr)
	if err != nil {
		return nil, err
	}

	return &Regexp{
		pattern: expr,
		tree:    tree,
	}, nil
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
// It simplifies safe initialization of global variables holding compiled patterns.
func MustCompile(str string) *Regexp {
	regexp, err := Compile(str)
	if err != nil {
		panic(`regrep: Compile(` + quote(str) + `): ` + err.Error())
	}
	return regexp
}

// MatchString compiles pattern and reports whether it matches s.
func MatchString(pattern string, s string) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(s), nil
}

// String returns the source text used to compile the pattern.
func (re *Regexp) String() string {
	return re.pattern
}

// Tree returns the compiled node tree, suitable for IsMatch.
// It must not be modified.
func (re *Regexp) Tree() *syntax.RegexTree {
	return re.tree
}

// NumCaptures returns the number of capturing constructs in the pattern.
func (re *Regexp) NumCaptures() int {
	return re.tree.Captop
}

// Dump returns a readable listing of the compiled node tree.
func (re *Regexp) Dump() string {
	return re.tree.Dump()
}

// MatchString reports whether the pattern matches s.
func (re *Regexp) MatchString(s string) bool {
	return isMatch(re.tree, runecacher.NewFromString(s))
}

// MatchRunes reports whether the pattern matches r.
func (re *Regexp) MatchRunes(r []rune) bool {
	return isMatch(re.tree, runecacher.NewFromRunes(r))
}

func quote(s string) string {
	if strconv.CanBackquote(s) {
		return "`" + s + "`"
	}
	return strconv.Quote(s)
}
