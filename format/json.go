package format

import (
	"encoding/json"
	"io"

	"github.com/seritools/peresil/sexpr"
)

type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(n sexpr.Node) error {
	text, err := e.MarshalText(n)
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText(n sexpr.Node) ([]byte, error) {
	return json.MarshalIndent(toNode(n), "", "  ")
}
