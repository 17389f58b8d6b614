package format

import (
	"io"

	"github.com/dhamidi/cadkit/cad"
	"gopkg.in/yaml.v3"
)

type YAMLEncoder struct {
	w   io.Writer
	doc *cad.Document
}

func NewYAMLEncoder(w io.Writer) *YAMLEncoder {
	return &YAMLEncoder{w: w}
}

func (e *YAMLEncoder) Encode(doc *cad.Document) error {
	e.doc = doc
	return write(e.w, e)
}

func (e *YAMLEncoder) MarshalText() ([]byte, error) {
	return yaml.Marshal(buildDocument(e.doc))
}
