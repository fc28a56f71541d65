package syntax

import (
	"bytes"
	"strconv"
)

// RegexTree is a compiled pattern: the top-level node sequence plus
// the bookkeeping the matcher needs.
type RegexTree struct {
	Nodes   []*RegexNode
	Captop  int // highest capture index assigned, 0 when nothing captures
	Pattern string
}

// Implementation notes:
//
// The node sequence is immutable once Parse returns. Leaves consume one
// character (or, for NtRef, the text of an earlier capture). Interior
// nodes hold nested sequences:
//
//   - NtZeroOrOne / NtOneOrMore wrap exactly one node in Children[0]
//   - NtCapture holds its body sequence in Children
//   - NtAlternate holds one sequence per branch in Branches
//
// M carries the capture index for NtCapture/NtAlternate and the
// referenced index for NtRef.
type RegexNode struct {
	T        NodeType
	Ch       rune
	Set      *CharSet
	Children []*RegexNode
	Branches [][]*RegexNode
	M        int
}

type NodeType int32

const (
	NtUnknown NodeType = -1

	// leaves, each consumes exactly one character
	NtOne   NodeType = 0 // char        a
	NtDigit NodeType = 1 //             \d
	NtWord  NodeType = 2 //             \w
	NtSet   NodeType = 3 // set         [abc] [^abc]
	NtAny   NodeType = 4 //             .

	// zero-width, top level only
	NtBeginning NodeType = 5 // ^
	NtEnd       NodeType = 6 // $

	// interior nodes
	NtZeroOrOne NodeType = 7  // child     ?
	NtOneOrMore NodeType = 8  // child     +
	NtCapture   NodeType = 9  // index     (...)
	NtAlternate NodeType = 10 // index     (a|b)
	NtRef       NodeType = 11 // index     \1
)

func newRegexNode(t NodeType) *RegexNode {
	return &RegexNode{T: t}
}

func newRegexNodeCh(t NodeType, ch rune) *RegexNode {
	return &RegexNode{T: t, Ch: ch}
}

func newRegexNodeSet(set *CharSet) *RegexNode {
	return &RegexNode{T: NtSet, Set: set}
}

func newRegexNodeM(t NodeType, m int) *RegexNode {
	return &RegexNode{T: t, M: m}
}

func (n *RegexNode) makeQuantifier(t NodeType) *RegexNode {
	return &RegexNode{T: t, Children: []*RegexNode{n}}
}

// Child returns the node wrapped by a quantifier.
func (n *RegexNode) Child() *RegexNode {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

// debug functions

var typeStr = []string{
	"One", "Digit", "Word", "Set", "Any",
	"Beginning", "End",
	"ZeroOrOne", "OneOrMore",
	"Capture", "Alternate", "Ref",
}

func (n *RegexNode) Description() string {
	buf := &bytes.Buffer{}

	if n.T < 0 || int(n.T) >= len(typeStr) {
		buf.WriteString("Unknown")
	} else {
		buf.WriteString(typeStr[n.T])
	}

	switch n.T {
	case NtOne:
		buf.WriteString("(Ch = " + CharDescription(n.Ch) + ")")
	case NtSet:
		buf.WriteString("(Set = " + n.Set.String() + ")")
	case NtCapture, NtAlternate, NtRef:
		buf.WriteString("(index = " + strconv.Itoa(n.M) + ")")
	case NtZeroOrOne:
		buf.WriteString("(Min = 0, Max = 1)")
	case NtOneOrMore:
		buf.WriteString("(Min = 1, Max = inf)")
	}

	return buf.String()
}

var padSpace = []byte("                                ")

// Dump renders the tree one node per line, children indented below their parent.
func (t *RegexTree) Dump() string {
	buf := &bytes.Buffer{}
	buf.WriteString("Sequence(captures = " + strconv.Itoa(t.Captop) + ")\n")
	dumpSeq(buf, t.Nodes, 1)
	return buf.String()
}

func dumpSeq(buf *bytes.Buffer, nodes []*RegexNode, depth int) {
	for _, n := range nodes {
		n.dump(buf, depth)
	}
}

func (n *RegexNode) dump(buf *bytes.Buffer, depth int) {
	pad := depth
	if pad > len(padSpace) {
		pad = len(padSpace)
	}
	buf.Write(padSpace[:pad])
	buf.WriteString(n.Description())
	buf.WriteRune('\n')

	if n.T == NtAlternate {
		for i, branch := range n.Branches {
			bp := depth + 1
			if bp > len(padSpace) {
				bp = len(padSpace)
			}
			buf.Write(padSpace[:bp])
			buf.WriteString("Branch(" + strconv.Itoa(i) + ")\n")
			dumpSeq(buf, branch, depth+2)
		}
		return
	}
	dumpSeq(buf, n.Children, depth+1)
}
