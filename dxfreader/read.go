package dxfreader

import (
	"errors"
	"io"
	"strings"

	"github.com/dhamidi/cadkit/cad"
	"github.com/dhamidi/cadkit/dxf"
)

type sectionReader func(s *stream)

var sectionReaders = map[string]sectionReader{
	dxf.SectionHeader:   readHeader,
	dxf.SectionTables:   readTables,
	dxf.SectionBlocks:   readBlocks,
	dxf.SectionEntities: readEntities,
	dxf.SectionObjects:  readObjects,
}

// Parse reads an ASCII DXF stream and reconstructs its document.
func Parse(r io.Reader, opts ...Option) (*cad.Document, error) {
	return ReadStream(dxf.NewTextReader(r), opts...)
}

// ParseFile reads the DXF file at path. The path is used in errors and
// notifications.
func ParseFile(path string, opts ...Option) (*cad.Document, error) {
	r, f, err := dxf.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadStream(r, append([]Option{WithFile(path)}, opts...)...)
}

// ReadStream reconstructs a document from a record stream. It returns
// either a complete document or a *FormatError.
func ReadStream(r dxf.Reader, opts ...Option) (*cad.Document, error) {
	o := newOptions(opts)
	doc := cad.NewDocument()
	b := newBuilder(doc, o.notify)
	s := &stream{r: r, b: b}

	readSections(s)
	if s.err == nil {
		s.err = b.build()
	}
	if s.err != nil {
		var fe *FormatError
		if errors.As(s.err, &fe) && fe.File == "" {
			fe.File = o.file
		}
		return nil, s.err
	}
	return doc, nil
}

// nextSection advances at section level. The end of the stream is allowed
// here, in place of a final EOF record.
func (s *stream) nextSection() bool {
	for {
		if err := s.r.Next(); err != nil {
			if !errors.Is(err, io.EOF) {
				s.err = &FormatError{Line: s.rec.Line, Msg: "read record", Err: err}
			}
			return false
		}
		s.rec = s.r.Record()
		if s.rec.Code != dxf.CodeComment {
			return true
		}
	}
}

func readSections(s *stream) {
	for s.nextSection() {
		if s.at(dxf.CodeStart, dxf.TokenEOF) {
			return
		}
		if !s.at(dxf.CodeStart, dxf.TokenSection) {
			s.fail(ErrUnexpectedToken, "expected SECTION or EOF")
			return
		}
		s.next()
		if !s.ok() {
			return
		}
		if s.rec.Code != dxf.CodeName {
			s.fail(ErrUnexpectedToken, "expected section name")
			return
		}
		name := strings.ToUpper(s.rec.Token())
		s.next()

		if read, ok := sectionReaders[name]; ok {
			read(s)
		} else {
			s.notify(NotificationInfo, "skipping section %s", name)
			for s.ok() && !s.at(dxf.CodeStart, dxf.TokenEndSec) {
				s.next()
			}
		}
		if !s.ok() {
			return
		}
		if !s.at(dxf.CodeStart, dxf.TokenEndSec) {
			s.fail(ErrUnexpectedToken, "section %s is not terminated by ENDSEC", name)
			return
		}
	}
}
