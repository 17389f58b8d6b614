package format

import (
	"io"

	"github.com/dhamidi/cadkit/cad"
	"github.com/fxamacker/cbor/v2"
)

// cborMode sorts map keys so equal documents encode to equal bytes.
var cborMode = func() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// CBOREncoder writes the document as deterministic CBOR. MarshalText
// returns binary data despite its name.
type CBOREncoder struct {
	w   io.Writer
	doc *cad.Document
}

func NewCBOREncoder(w io.Writer) *CBOREncoder {
	return &CBOREncoder{w: w}
}

func (e *CBOREncoder) Encode(doc *cad.Document) error {
	e.doc = doc
	return write(e.w, e)
}

func (e *CBOREncoder) MarshalText() ([]byte, error) {
	return cborMode.Marshal(buildDocument(e.doc))
}
