package dxfreader

import (
	"errors"
	"fmt"
	"io"

	"github.com/dhamidi/cadkit/cad"
	"github.com/dhamidi/cadkit/dxf"
)

// stream is the cursor the section readers share. The first failure is
// kept in err; once it is set every further step is a no-op and the loops
// of the readers fall through.
type stream struct {
	r   dxf.Reader
	rec dxf.Record
	err error
	b   *builder
}

func (s *stream) ok() bool { return s.err == nil }

// next advances to the following record, skipping 999 comments.
func (s *stream) next() {
	for s.err == nil {
		if err := s.r.Next(); err != nil {
			if errors.Is(err, io.EOF) {
				s.fail(ErrUnexpectedEOF, "stream ended inside a section")
			} else {
				s.err = &FormatError{Line: s.rec.Line, Msg: "read record", Err: err}
			}
			s.rec = dxf.Record{Code: -1, Line: s.rec.Line}
			return
		}
		s.rec = s.r.Record()
		if s.rec.Code != dxf.CodeComment {
			return
		}
	}
}

func (s *stream) fail(err error, format string, args ...any) {
	if s.err != nil {
		return
	}
	s.err = &FormatError{
		Line:  s.rec.Line,
		Token: s.rec.Token(),
		Msg:   fmt.Sprintf(format, args...),
		Err:   err,
	}
}

func (s *stream) at(code int, token string) bool { return s.rec.Is(code, token) }

func (s *stream) atStart() bool { return s.rec.Code == dxf.CodeStart }

func (s *stream) notify(t NotificationType, format string, args ...any) {
	s.b.notify(Notification{Type: t, Message: fmt.Sprintf(format, args...), Line: s.rec.Line})
}

func (s *stream) warn(format string, args ...any) {
	s.notify(NotificationWarning, format, args...)
}

// skipObject advances to the next code 0 record.
func (s *stream) skipObject() {
	s.next()
	for s.ok() && !s.atStart() {
		s.next()
	}
}

// skipGroup skips a 102 "{NAME ... }" control group. The cursor is left
// on the closing record.
func (s *stream) skipGroup() {
	for s.ok() {
		s.next()
		if s.rec.Code == dxf.CodeControlString && s.rec.Token() == "}" {
			return
		}
		if s.atStart() {
			s.fail(ErrUnexpectedToken, "unterminated control group")
			return
		}
	}
}

// readCommonObjectData consumes the record naming the object and the
// handle, owner and control groups that follow it. It stops at the first
// subclass marker or at any other field, which is left for the field
// tables.
func (s *stream) readCommonObjectData() (name string, handle, owner cad.Handle) {
	name = s.rec.Token()
	s.next()
	for s.ok() {
		v := value{rec: s.rec, s: s}
		switch s.rec.Code {
		case dxf.CodeHandle, dxf.CodeDimStyleHandle:
			handle = v.handle()
		case dxf.CodeSoftOwner:
			owner = v.handle()
		case dxf.CodeControlString:
			s.skipGroup()
		default:
			return name, handle, owner
		}
		s.next()
	}
	return name, handle, owner
}

// value decodes a record for a field setter. A value that does not decode
// fails the stream with the record's line.
type value struct {
	rec dxf.Record
	s   *stream
}

func (v value) code() int     { return v.rec.Code }
func (v value) str() string   { return v.rec.Value }
func (v value) token() string { return v.rec.Token() }

func (v value) invalid(err error) {
	v.s.fail(ErrInvalidValue, "%v", err)
}

func (v value) int16() int16 {
	n, err := v.rec.Int16()
	if err != nil {
		v.invalid(err)
	}
	return n
}

func (v value) int() int {
	n, err := v.rec.Int()
	if err != nil {
		v.invalid(err)
	}
	return n
}

func (v value) float() float64 {
	f, err := v.rec.Float()
	if err != nil {
		v.invalid(err)
	}
	return f
}

func (v value) bool() bool {
	b, err := v.rec.Bool()
	if err != nil {
		v.invalid(err)
	}
	return b
}

func (v value) handle() cad.Handle {
	h, err := v.rec.Handle()
	if err != nil {
		v.invalid(err)
	}
	return h
}

// setName applies a table entry name, failing the stream when the name is
// rejected.
func (v value) setName(e cad.TableEntry) {
	if err := e.SetName(v.str()); err != nil {
		v.s.fail(err, "%s name", e.ObjectName())
	}
}
