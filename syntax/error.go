package syntax

import "fmt"

// An Error describes a failure to parse a pattern and gives the offending pattern.
type Error struct {
	Code ErrorCode
	Expr string
	Args []interface{}
}

func (e *Error) Error() string {
	if len(e.Args) == 0 {
		return "error parsing regexp: " + e.Code.String() + " in `" + e.Expr + "`"
	}
	return "error parsing regexp: " + fmt.Sprintf(e.Code.String(), e.Args...) + " in `" + e.Expr + "`"
}

// An ErrorCode describes a failure to parse a pattern.
type ErrorCode string

const (
	ErrIllegalEndEscape       ErrorCode = "illegal \\ at end of pattern"
	ErrQuantifierAfterNothing ErrorCode = "quantifier following nothing"
	ErrUnterminatedBracket    ErrorCode = "unterminated [] set"
	ErrMissingParen           ErrorCode = "not enough )'s"
	ErrMisplacedAnchor        ErrorCode = "anchor %c outside its valid position"
	ErrUndefinedBackRef       ErrorCode = "reference to undefined group number %v"
)

func (e ErrorCode) String() string {
	return string(e)
}
