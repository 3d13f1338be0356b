package format

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/seritools/peresil/sexpr"
)

type YAMLEncoder struct {
	w io.Writer
}

func NewYAMLEncoder(w io.Writer) *YAMLEncoder {
	return &YAMLEncoder{w: w}
}

func (e *YAMLEncoder) Encode(n sexpr.Node) error {
	text, err := e.MarshalText(n)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *YAMLEncoder) MarshalText(n sexpr.Node) ([]byte, error) {
	return yaml.Marshal(toNode(n))
}
