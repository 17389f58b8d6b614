package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/cadkit/cad"
)

type JSONEncoder struct {
	w   io.Writer
	doc *cad.Document
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(doc *cad.Document) error {
	e.doc = doc
	return write(e.w, e)
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(buildDocument(e.doc), "", "  ")
}
