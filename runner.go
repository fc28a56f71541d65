package regrep

import (
	"github.com/regrep/regrep/helpers"
	"github.com/regrep/regrep/runecacher"
	"github.com/regrep/regrep/syntax"
)

// IsMatch reports whether the compiled tree matches anywhere in text, or
// at offset 0 when the tree starts with ^.
func IsMatch(tree *syntax.RegexTree, text string) bool {
	return isMatch(tree, runecacher.NewFromString(text))
}

func isMatch(tree *syntax.RegexTree, text *runecacher.RuneCacher) bool {
	nodes := tree.Nodes

	if len(nodes) > 0 && nodes[0].T == syntax.NtBeginning {
		return newRunner(text, tree.Captop).scan(nodes[1:], 0)
	}

	// bump along one rune at a time, including the position just past the end
	for start := 0; ; start++ {
		if newRunner(text, tree.Captop).scan(nodes, start) {
			return true
		}
		if !text.HasRuneAt(start) {
			return false
		}
	}
}

// runner holds the state of a single matching attempt at one start offset.
// A new runner is used for every offset so captures never leak between attempts.
type runner struct {
	text *runecacher.RuneCacher
	caps []capture // indexed by capture number, slot 0 unused
}

type capture struct {
	start, end int
	set        bool
}

// cont is the rest of the match: given the position reached so far it
// reports whether everything after succeeds.
type cont func(pos int) bool

func newRunner(text *runecacher.RuneCacher, captop int) *runner {
	return &runner{
		text: text,
		caps: make([]capture, captop+1),
	}
}

func (r *runner) scan(nodes []*syntax.RegexNode, start int) bool {
	return r.matchSeq(nodes, start, func(int) bool { return true })
}

func (r *runner) matchSeq(nodes []*syntax.RegexNode, pos int, k cont) bool {
	if len(nodes) == 0 {
		return k(pos)
	}
	rest := nodes[1:]
	return r.matchNode(nodes[0], pos, func(p int) bool {
		return r.matchSeq(rest, p, k)
	})
}

func (r *runner) matchNode(n *syntax.RegexNode, pos int, k cont) bool {
	switch n.T {
	case syntax.NtOne, syntax.NtDigit, syntax.NtWord, syntax.NtSet, syntax.NtAny:
		if !r.text.HasRuneAt(pos) || !charMatches(n, r.text.RuneAt(pos)) {
			return false
		}
		return k(pos + 1)

	case syntax.NtBeginning:
		return pos == 0 && k(pos)

	case syntax.NtEnd:
		return r.text.IsEnd(pos) && k(pos)

	case syntax.NtZeroOrOne:
		// greedy: present before absent
		if r.matchNode(n.Child(), pos, k) {
			return true
		}
		return k(pos)

	case syntax.NtOneOrMore:
		inner := n.Child()
		return r.matchNode(inner, pos, func(p int) bool {
			return r.repeat(inner, pos, p, k)
		})

	case syntax.NtCapture:
		return r.matchSeq(n.Children, pos, r.capturing(n.M, pos, k))

	case syntax.NtAlternate:
		for _, branch := range n.Branches {
			if r.matchSeq(branch, pos, r.capturing(n.M, pos, k)) {
				return true
			}
		}
		return false

	case syntax.NtRef:
		return r.matchRef(n.M, pos, k)
	}

	return false
}

// repeat is entered after one more repetition of inner took the cursor from
// prev to pos. It tries yet another repetition first and only then hands pos
// to the continuation, so counts are explored from the largest down.
func (r *runner) repeat(inner *syntax.RegexNode, prev, pos int, k cont) bool {
	// an empty repetition can't make progress, stop looping
	if pos != prev && r.matchNode(inner, pos, func(p int) bool {
		return r.repeat(inner, pos, p, k)
	}) {
		return true
	}
	return k(pos)
}

// capturing wraps k so the text from start to the reached position is
// recorded in slot capnum while k runs, and rolled back if k fails.
func (r *runner) capturing(capnum, start int, k cont) cont {
	return func(pos int) bool {
		saved := r.caps[capnum]
		r.caps[capnum] = capture{start: start, end: pos, set: true}
		if k(pos) {
			return true
		}
		r.caps[capnum] = saved
		return false
	}
}

func (r *runner) matchRef(capnum, pos int, k cont) bool {
	if capnum <= 0 || capnum >= len(r.caps) || !r.caps[capnum].set {
		return false
	}
	c := r.caps[capnum]
	want := r.text.CachedRunesFromTo(c.start, c.end)

	if len(want) > 0 && !r.text.HasRuneAt(pos+len(want)-1) {
		return false
	}
	if !helpers.RunesEqualAt(r.text.CachedRunes(), pos, want) {
		return false
	}
	return k(pos + len(want))
}

func charMatches(n *syntax.RegexNode, ch rune) bool {
	switch n.T {
	case syntax.NtOne:
		return ch == n.Ch
	case syntax.NtDigit:
		return helpers.IsDigit(ch)
	case syntax.NtWord:
		return helpers.IsWordChar(ch)
	case syntax.NtSet:
		return n.Set.CharIn(ch)
	case syntax.NtAny:
		return true
	}
	return false
}
