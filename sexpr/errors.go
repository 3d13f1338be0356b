package sexpr

// ErrorKind identifies what a parse attempt expected or ran into.
type ErrorKind int

const (
	// ErrExpectedExpr reports that no expression form matched here.
	ErrExpectedExpr ErrorKind = iota
	// ErrExpectedNumber reports that a numeric literal did not start here.
	ErrExpectedNumber
	// ErrExpectedSymbol reports that a symbol did not start here.
	ErrExpectedSymbol
	// ErrExpectedKeyword reports that no boolean keyword matched here.
	ErrExpectedKeyword
	// ErrUnterminatedList reports a list whose closing paren never came.
	ErrUnterminatedList
	// ErrUnterminatedString reports a string literal without a closing quote.
	ErrUnterminatedString
	// ErrBadEscape reports an unknown escape sequence in a string literal.
	ErrBadEscape
	// ErrNumberRange reports an integer literal that overflows int64.
	ErrNumberRange
	// ErrTrailingInput reports leftover input after a complete expression.
	ErrTrailingInput
)

// ParseError is the failure payload of every parser in this package.
type ParseError struct {
	Kind ErrorKind
}

// Recoverable classifies by kind: "this form doesn't start here" lets
// the driver try the next alternative, while structural damage inside a
// form that already committed (an open list or string) aborts the parse.
func (e ParseError) Recoverable() bool {
	switch e.Kind {
	case ErrUnterminatedList, ErrUnterminatedString, ErrBadEscape, ErrNumberRange, ErrTrailingInput:
		return false
	}
	return true
}

func (e ParseError) Error() string {
	switch e.Kind {
	case ErrExpectedExpr:
		return "expected an expression"
	case ErrExpectedNumber:
		return "expected a number"
	case ErrExpectedSymbol:
		return "expected a symbol"
	case ErrExpectedKeyword:
		return "expected a keyword"
	case ErrUnterminatedList:
		return "unterminated list"
	case ErrUnterminatedString:
		return "unterminated string literal"
	case ErrBadEscape:
		return "invalid escape sequence"
	case ErrNumberRange:
		return "integer literal out of range"
	case ErrTrailingInput:
		return "unexpected trailing input"
	}
	return "parse error"
}
