package sexpr

import (
	"strconv"
	"strings"

	"github.com/seritools/peresil"
)

type point = peresil.StringPoint

type master = peresil.ParseMaster[point, ParseError]

type nodeProgress = peresil.Progress[point, Node, ParseError]

// Parse parses a single s-expression. Leading and trailing whitespace is
// allowed; anything else after the expression is an error. Failures
// report the furthest offset any parse attempt reached.
func Parse(input string) (Node, error) {
	m := peresil.NewMaster[point, ParseError]()
	pt := skipSpace(peresil.NewStringPoint(input))

	r := peresil.Finish(m, parseExpr(m, pt))
	v, ok := r.Status.Value()
	if !ok {
		err, _ := r.Status.Err()
		return nil, &peresil.PosError{Offset: r.Point.Pos(), Err: err}
	}

	if rest := skipSpace(r.Point); !rest.IsEmpty() {
		return nil, &peresil.PosError{Offset: rest.Pos(), Err: ParseError{ErrTrailingInput}}
	}
	return v, nil
}

// ParseAll parses a whitespace-separated sequence of s-expressions, such
// as the contents of a file. An empty input yields an empty slice.
func ParseAll(input string) ([]Node, error) {
	m := peresil.NewMaster[point, ParseError]()
	pt := peresil.NewStringPoint(input)

	r := peresil.Finish(m, peresil.ZeroOrMore(m, pt, parseItem))
	nodes, ok := r.Status.Value()
	if !ok {
		err, _ := r.Status.Err()
		return nil, &peresil.PosError{Offset: r.Point.Pos(), Err: err}
	}

	if rest := skipSpace(r.Point); !rest.IsEmpty() {
		return nil, &peresil.PosError{Offset: rest.Pos(), Err: ParseError{ErrExpectedExpr}}
	}
	return nodes, nil
}

// parseExpr tries every expression form from the same point. Order
// matters: keywords run before symbols so that true parses as a Bool,
// and numbers run before symbols so that -5 parses as a Number while a
// bare - stays a symbol.
func parseExpr(m *master, pt point) nodeProgress {
	return peresil.Alternate[Node](m, pt).
		One(parseList).
		One(parseString).
		One(parseNumber).
		One(parseBool).
		One(parseSymbol).
		Finish()
}

// parseItem is the repetition step of list bodies and top-level input:
// whitespace, then one expression.
func parseItem(m *master, pt point) nodeProgress {
	return parseExpr(m, skipSpace(pt))
}

func parseList(m *master, pt point) nodeProgress {
	open := pt.ConsumeLiteral("(")
	if !open.Status.IsSuccess() {
		return failAt(pt, ErrExpectedExpr)
	}

	items := peresil.ZeroOrMore(m, open.Point, parseItem)
	nodes, ok := items.Status.Value()
	if !ok {
		// A fatal failure inside an element aborts the list too.
		err, _ := items.Status.Err()
		return peresil.FailureAt[Node](items.Point, err)
	}

	after := skipSpace(items.Point)
	closed := after.ConsumeLiteral(")")
	if !closed.Status.IsSuccess() {
		return failAt(after, ErrUnterminatedList)
	}
	return peresil.SuccessAt[ParseError](closed.Point, Node(List(nodes)))
}

func parseString(m *master, pt point) nodeProgress {
	if !strings.HasPrefix(pt.Rest, `"`) {
		return failAt(pt, ErrExpectedExpr)
	}

	var buf strings.Builder
	i := 1
	for i < len(pt.Rest) {
		switch c := pt.Rest[i]; c {
		case '"':
			r := pt.ConsumeTo(i+1, true)
			return peresil.SuccessAt[ParseError](r.Point, Node(Str(buf.String())))
		case '\\':
			if i+1 >= len(pt.Rest) {
				return failAt(at(pt, i), ErrUnterminatedString)
			}
			switch pt.Rest[i+1] {
			case '"':
				buf.WriteByte('"')
			case '\\':
				buf.WriteByte('\\')
			case 'n':
				buf.WriteByte('\n')
			case 't':
				buf.WriteByte('\t')
			default:
				return failAt(at(pt, i), ErrBadEscape)
			}
			i += 2
		default:
			buf.WriteByte(c)
			i++
		}
	}
	return failAt(at(pt, i), ErrUnterminatedString)
}

func parseNumber(m *master, pt point) nodeProgress {
	s := pt.Rest
	n := 0
	if n < len(s) && s[n] == '-' {
		n++
	}
	digits := n
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		digits++
	}
	if digits == n {
		return failAt(pt, ErrExpectedNumber)
	}

	r := pt.ConsumeTo(digits, true)
	text, _ := r.Status.Value()
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return failAt(pt, ErrNumberRange)
	}
	return peresil.SuccessAt[ParseError](r.Point, Node(Number(v)))
}

var keywords = []peresil.Identifier[Node]{
	{Literal: "true", Value: Bool(true)},
	{Literal: "false", Value: Bool(false)},
}

func parseBool(m *master, pt point) nodeProgress {
	r := peresil.ConsumeIdentifier(pt, keywords)
	v, ok := r.Status.Value()
	if !ok {
		return failAt(pt, ErrExpectedKeyword)
	}
	// ConsumeIdentifier matches prefixes, so reject keywords that
	// continue into a longer symbol such as truest.
	if r.Point.Rest != "" && isSymbolByte(r.Point.Rest[0]) {
		return failAt(pt, ErrExpectedKeyword)
	}
	return peresil.SuccessAt[ParseError](r.Point, v)
}

func parseSymbol(m *master, pt point) nodeProgress {
	n := 0
	for n < len(pt.Rest) && isSymbolByte(pt.Rest[n]) {
		n++
	}
	if n == 0 {
		return failAt(pt, ErrExpectedSymbol)
	}
	r := pt.ConsumeTo(n, true)
	text, _ := r.Status.Value()
	return peresil.SuccessAt[ParseError](r.Point, Node(Symbol(text)))
}

func isSymbolByte(c byte) bool {
	switch c {
	case '(', ')', '"', ';', ' ', '\t', '\n', '\r':
		return false
	}
	return true
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// skipSpace returns the point past any whitespace. Skipping nothing is
// fine; this is not a parse step and cannot fail.
func skipSpace(pt point) point {
	n := 0
	for n < len(pt.Rest) && isSpaceByte(pt.Rest[n]) {
		n++
	}
	if n == 0 {
		return pt
	}
	r := pt.ConsumeTo(n, true)
	return r.Point
}

// at returns the point i bytes into pt's remaining input, for reporting
// failure sites inside a partially matched form.
func at(pt point, i int) point {
	return point{Offset: pt.Offset + i, Rest: pt.Rest[i:]}
}

func failAt(pt point, kind ErrorKind) nodeProgress {
	return peresil.FailureAt[Node](pt, ParseError{Kind: kind})
}
