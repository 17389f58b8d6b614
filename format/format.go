package format

import (
	"encoding"
	"fmt"
	"io"
	"sort"

	"github.com/dhamidi/cadkit/cad"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(doc *cad.Document) error
}

var encoders = map[string]func(w io.Writer) Encoder{
	"line": func(w io.Writer) Encoder { return NewLineEncoder(w) },
	"json": func(w io.Writer) Encoder { return NewJSONEncoder(w) },
	"yaml": func(w io.Writer) Encoder { return NewYAMLEncoder(w) },
	"cbor": func(w io.Writer) Encoder { return NewCBOREncoder(w) },
}

// New returns the encoder registered under name.
func New(name string, w io.Writer) (Encoder, error) {
	newEncoder, ok := encoders[name]
	if !ok {
		return nil, fmt.Errorf("unknown format %q (available: %v)", name, Names())
	}
	return newEncoder(w), nil
}

// Names lists the available formats.
func Names() []string {
	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// write is the Encode step shared by every encoder.
func write(w io.Writer, m encoding.TextMarshaler) error {
	text, err := m.MarshalText()
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
