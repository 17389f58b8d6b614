package dxfreader

import (
	"strings"

	"github.com/dhamidi/cadkit/dxf"
)

// readObjects reads the OBJECTS section. Only book colors are kept.
func readObjects(s *stream) {
	for s.ok() && !s.at(dxf.CodeStart, dxf.TokenEndSec) {
		if s.structural() {
			s.fail(ErrUnexpectedToken, "expected an object")
			return
		}
		switch kind := strings.ToUpper(s.rec.Token()); kind {
		case "DBCOLOR":
			t := newColorTemplate()
			if readObject(s, kind, t) {
				s.b.doc.AddBookColor(t.color)
			}
		default:
			s.notify(NotificationNotImplemented, "object %s is not supported", kind)
			s.skipObject()
		}
	}
}
