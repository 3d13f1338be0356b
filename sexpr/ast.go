// Package sexpr parses s-expressions. It is built entirely on the
// public peresil API and doubles as the worked example for composing the
// cursor primitives and the combinator driver into a complete parser.
package sexpr

import (
	"fmt"
	"strconv"
	"strings"
)

// Node is an element of a parsed s-expression tree.
type Node interface {
	// String renders the node back as s-expression text.
	String() string
}

// Symbol is a bare identifier such as add or <=.
type Symbol string

func (s Symbol) String() string { return string(s) }

// Number is a decimal integer literal.
type Number int64

func (n Number) String() string { return strconv.FormatInt(int64(n), 10) }

// Str is a double-quoted string literal, stored decoded.
type Str string

func (s Str) String() string { return strconv.Quote(string(s)) }

// Bool is one of the literals true or false.
type Bool bool

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// List is a parenthesized sequence of nodes.
type List []Node

func (l List) String() string {
	parts := make([]string, len(l))
	for i, n := range l {
		parts[i] = n.String()
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, " "))
}
