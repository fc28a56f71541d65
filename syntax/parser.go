package syntax

// Parse compiles a pattern into its node sequence. It either returns a
// complete tree or an *Error; a malformed pattern is never partially compiled.
func Parse(pattern string) (*RegexTree, error) {
	p := parser{
		pattern: []rune(pattern),
		expr:    pattern,
		closed:  make(map[int]bool),
	}

	nodes, err := p.scanTop()
	if err != nil {
		return nil, err
	}

	return &RegexTree{
		Nodes:   nodes,
		Captop:  p.captop,
		Pattern: pattern,
	}, nil
}

type parser struct {
	pattern []rune
	pos     int
	expr    string

	// last capture index handed out; indexes start at 1 and are assigned
	// when the opening paren is scanned
	captop int
	// capture indexes whose closing paren has been scanned
	closed map[int]bool
}

func (p *parser) getErr(code ErrorCode, args ...interface{}) error {
	return &Error{Code: code, Expr: p.expr, Args: args}
}

func (p *parser) charsRight() int {
	return len(p.pattern) - p.pos
}

func (p *parser) rightChar(i int) rune {
	return p.pattern[p.pos+i]
}

func (p *parser) moveRightGetChar() rune {
	ch := p.pattern[p.pos]
	p.pos++
	return ch
}

// scanTop handles the leading ^ and then the rest of the pattern as one sequence.
func (p *parser) scanTop() ([]*RegexNode, error) {
	var nodes []*RegexNode

	if p.charsRight() > 0 && p.rightChar(0) == '^' {
		p.pos++
		nodes = append(nodes, newRegexNode(NtBeginning))
	}

	rest, err := p.scanSequence(true)
	if err != nil {
		return nil, err
	}

	return append(nodes, rest...), nil
}

// scanSequence reads nodes until the end of the pattern or, inside a
// group, until an unconsumed | or ) is next.
func (p *parser) scanSequence(topLevel bool) ([]*RegexNode, error) {
	var nodes []*RegexNode

	for p.charsRight() > 0 {
		ch := p.rightChar(0)

		if !topLevel && (ch == '|' || ch == ')') {
			break
		}

		p.pos++

		switch ch {
		case '^':
			return nil, p.getErr(ErrMisplacedAnchor, ch)

		case '$':
			if !topLevel || p.charsRight() != 0 {
				return nil, p.getErr(ErrMisplacedAnchor, ch)
			}
			nodes = append(nodes, newRegexNode(NtEnd))

		case '[':
			set, err := p.scanCharSet()
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, newRegexNodeSet(set))

		case '\\':
			node, err := p.scanBackslash()
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, node)

		case '(':
			node, err := p.scanGroup()
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, node)

		case '.':
			nodes = append(nodes, newRegexNode(NtAny))

		case '?', '+':
			if len(nodes) == 0 {
				return nil, p.getErr(ErrQuantifierAfterNothing)
			}
			t := NtZeroOrOne
			if ch == '+' {
				t = NtOneOrMore
			}
			last := len(nodes) - 1
			nodes[last] = nodes[last].makeQuantifier(t)

		default:
			nodes = append(nodes, newRegexNodeCh(NtOne, ch))
		}
	}

	return nodes, nil
}

// scanCharSet reads the members of a class up to the first ]. The opening
// [ has already been consumed.
func (p *parser) scanCharSet() (*CharSet, error) {
	var members []rune

	for {
		if p.charsRight() == 0 {
			return nil, p.getErr(ErrUnterminatedBracket)
		}
		ch := p.moveRightGetChar()
		if ch == ']' {
			break
		}
		members = append(members, ch)
	}

	if len(members) > 0 && members[0] == '^' {
		return NewCharSet(members[1:], true), nil
	}
	return NewCharSet(members, false), nil
}

// scanBackslash turns an escape into a node. The \ has already been consumed.
func (p *parser) scanBackslash() (*RegexNode, error) {
	if p.charsRight() == 0 {
		return nil, p.getErr(ErrIllegalEndEscape)
	}

	ch := p.moveRightGetChar()
	switch {
	case ch == 'd':
		return newRegexNode(NtDigit), nil
	case ch == 'w':
		return newRegexNode(NtWord), nil
	case ch >= '1' && ch <= '9':
		capnum := int(ch - '0')
		// a group can only be referenced once it is complete
		if !p.closed[capnum] {
			return nil, p.getErr(ErrUndefinedBackRef, capnum)
		}
		return newRegexNodeM(NtRef, capnum), nil
	default:
		return newRegexNodeCh(NtOne, ch), nil
	}
}

// scanGroup reads the branches of a parenthesized construct. The ( has
// already been consumed. A single branch is a plain capture; several
// branches share one capture index as an alternation.
func (p *parser) scanGroup() (*RegexNode, error) {
	p.captop++
	capnum := p.captop

	var branches [][]*RegexNode
	for {
		seq, err := p.scanSequence(false)
		if err != nil {
			return nil, err
		}
		branches = append(branches, seq)

		if p.charsRight() == 0 {
			return nil, p.getErr(ErrMissingParen)
		}
		if p.moveRightGetChar() == ')' {
			break
		}
	}
	p.closed[capnum] = true

	if len(branches) == 1 {
		node := newRegexNodeM(NtCapture, capnum)
		node.Children = branches[0]
		return node, nil
	}

	node := newRegexNodeM(NtAlternate, capnum)
	node.Branches = branches
	return node, nil
}
