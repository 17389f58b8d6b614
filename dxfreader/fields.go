package dxfreader

import "github.com/dhamidi/cadkit/dxf"

// subclassFields maps the group codes of one subclass onto an object. set
// reports whether it recognised the code.
type subclassFields struct {
	marker string
	set    func(v value) bool
}

// mapped is implemented by every template whose object is read through
// field tables. fields is the single place a kind declares its codes.
type mapped interface {
	template
	fields() []subclassFields
}

const (
	noSubclass      = -1
	unknownSubclass = -2
)

// readFields maps records onto t until the next code 0 record. Code 100
// selects the active subclass; fields read before any marker, as R12 files
// write them, are offered to every subclass in declaration order. It
// returns the markers it saw.
func readFields(s *stream, kind string, t mapped) []string {
	table := t.fields()
	active := noSubclass
	var seen []string

	for s.ok() && !s.atStart() {
		v := value{rec: s.rec, s: s}
		switch code := s.rec.Code; {
		case code == dxf.CodeSubclass:
			marker := s.rec.Token()
			seen = append(seen, marker)
			active = unknownSubclass
			for i, f := range table {
				if f.marker == marker {
					active = i
					break
				}
			}
			if active == unknownSubclass {
				s.notify(NotificationNotImplemented, "subclass %s of %s is not supported", marker, kind)
			}
		case code == dxf.CodeControlString:
			s.skipGroup()
		case code >= 1000:
			// extended data
		default:
			if !setField(table, active, v) {
				s.notify(NotificationWarning, "unhandled dxf code %d in %s", code, kind)
			}
		}
		s.next()
	}
	return seen
}

func setField(table []subclassFields, active int, v value) bool {
	switch active {
	case unknownSubclass:
		return true
	case noSubclass:
		for _, f := range table {
			if f.set(v) {
				return true
			}
		}
		return false
	default:
		return table[active].set(v)
	}
}

func hasMarker(seen []string, marker string) bool {
	for _, m := range seen {
		if m == marker {
			return true
		}
	}
	return false
}

// expectMarkers warns about subclass markers the object should have
// carried. Their fields were still read in declaration order.
func expectMarkers(s *stream, kind string, line int, seen []string, markers ...string) {
	if len(seen) == 0 {
		return
	}
	for _, m := range markers {
		if !hasMarker(seen, m) {
			s.b.notify(Notification{
				Type:    NotificationWarning,
				Message: "missing subclass marker " + m + " in " + kind,
				Line:    line,
			})
		}
	}
}
