// Package format renders parsed s-expression trees in machine-readable
// formats.
package format

import "github.com/seritools/peresil/sexpr"

// Encoder writes one s-expression tree to an output stream.
type Encoder interface {
	Encode(node sexpr.Node) error
	MarshalText(node sexpr.Node) ([]byte, error)
}

// node is the serialization shape shared by the JSON and YAML encoders.
type node struct {
	Kind     string  `json:"kind" yaml:"kind"`
	Symbol   string  `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	Number   *int64  `json:"number,omitempty" yaml:"number,omitempty"`
	Text     *string `json:"text,omitempty" yaml:"text,omitempty"`
	Bool     *bool   `json:"bool,omitempty" yaml:"bool,omitempty"`
	Children []*node `json:"children,omitempty" yaml:"children,omitempty"`
}

func toNode(n sexpr.Node) *node {
	switch v := n.(type) {
	case sexpr.Symbol:
		return &node{Kind: "symbol", Symbol: string(v)}
	case sexpr.Number:
		num := int64(v)
		return &node{Kind: "number", Number: &num}
	case sexpr.Str:
		text := string(v)
		return &node{Kind: "string", Text: &text}
	case sexpr.Bool:
		b := bool(v)
		return &node{Kind: "bool", Bool: &b}
	case sexpr.List:
		jn := &node{Kind: "list"}
		if len(v) > 0 {
			jn.Children = make([]*node, len(v))
			for i, child := range v {
				jn.Children[i] = toNode(child)
			}
		}
		return jn
	default:
		return &node{Kind: "unknown"}
	}
}
