package dxfreader

import (
	"github.com/dhamidi/cadkit/dxf"
)

const (
	varVersion    = "$ACADVER"
	varHandleSeed = "$HANDSEED"
)

// readHeader keeps every variable of the HEADER section as raw values and
// decodes the version and the handle seed.
func readHeader(s *stream) {
	h := &s.b.doc.Header
	for s.ok() && !s.atStart() {
		switch s.rec.Code {
		case dxf.CodeVariableName:
		default:
			s.warn("header value without variable name (code %d)", s.rec.Code)
			s.next()
			continue
		}

		name := s.rec.Token()
		s.next()
		var values []string
		for s.ok() && !s.atStart() && s.rec.Code != dxf.CodeVariableName {
			v := value{rec: s.rec, s: s}
			switch name {
			case varVersion:
				if v.code() == dxf.CodeText {
					h.Version = v.token()
				}
			case varHandleSeed:
				if v.code() == dxf.CodeHandle {
					h.HandleSeed = v.handle()
				}
			}
			values = append(values, s.rec.Value)
			s.next()
		}
		h.Set(name, values...)
	}
}
