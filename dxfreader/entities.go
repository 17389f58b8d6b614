package dxfreader

import (
	"strings"

	"github.com/dhamidi/cadkit/cad"
	"github.com/dhamidi/cadkit/dxf"
)

var entityKinds = map[string]func() entityTemplater{
	"LINE":   newLineTemplate,
	"POINT":  newPointTemplate,
	"CIRCLE": newCircleTemplate,
	"ARC":    newArcTemplate,
	"TEXT":   newTextTemplate,
	"INSERT": newInsertTemplate,
	"ATTRIB": newAttributeTemplate,
	"ATTDEF": newAttributeDefinitionTemplate,
}

// readEntities appends the entities of the ENTITIES section to the
// document in file order.
func readEntities(s *stream) {
	for s.ok() && !s.at(dxf.CodeStart, dxf.TokenEndSec) {
		if t := readEntity(s); t != nil {
			s.b.doc.AddEntity(t.entityObject())
		}
	}
}

// structural reports whether the current record closes or opens a part of
// the file grammar rather than an entity.
func (s *stream) structural() bool {
	if !s.atStart() {
		return false
	}
	switch s.rec.Token() {
	case dxf.TokenSection, dxf.TokenEndSec, dxf.TokenEOF, dxf.TokenTable,
		dxf.TokenEndTab, dxf.TokenBlock, dxf.TokenEndBlk:
		return true
	}
	return false
}

// readEntity reads the entity the cursor is on. Kinds without a template
// are skipped and nil is returned.
func readEntity(s *stream) entityTemplater {
	if s.structural() {
		s.fail(ErrUnexpectedToken, "expected an entity")
		return nil
	}
	kindName := strings.ToUpper(s.rec.Token())
	newTemplate, ok := entityKinds[kindName]
	if !ok {
		s.notify(NotificationNotImplemented, "entity %s is not supported", kindName)
		s.skipObject()
		return nil
	}
	t := newTemplate()
	if !readObject(s, kindName, t, dxf.SubclassEntity) {
		return nil
	}
	if ins, ok := t.(*insertTemplate); ok && ins.insert.HasAttributes {
		readAttributes(s, ins.insert)
	}
	return t
}

// readObject reads the common data and the mapped fields of t and
// registers it. The cursor is left on the next code 0 record.
func readObject(s *stream, kind string, t mapped, markers ...string) bool {
	line := s.rec.Line
	_, handle, owner := s.readCommonObjectData()
	seen := readFields(s, kind, t)
	if !s.ok() {
		return false
	}
	expectMarkers(s, kind, line, seen, markers...)

	base := t.base()
	base.obj.SetHandle(handle)
	base.owner = owner
	base.line = line
	if err := s.b.register(t); err != nil {
		s.err = err
		return false
	}
	return true
}

// readAttributes reads the ATTRIB entities following an insert up to and
// including their SEQEND.
func readAttributes(s *stream, insert *cad.Insert) {
	for s.ok() && s.at(dxf.CodeStart, "ATTRIB") {
		t := newAttributeTemplate().(*attributeTemplate)
		if !readObject(s, "ATTRIB", t, dxf.SubclassEntity) {
			return
		}
		insert.AddAttribute(t.attr)
	}
	if !s.ok() {
		return
	}
	if !s.at(dxf.CodeStart, dxf.TokenSeqend) {
		s.fail(ErrUnexpectedToken, "expected ATTRIB or SEQEND after INSERT %s", insert.Handle())
		return
	}
	t := newSeqendTemplate().(*seqendTemplate)
	if !readObject(s, dxf.TokenSeqend, t, dxf.SubclassEntity) {
		return
	}
	insert.Seqend = t.seqend
	t.seqend.SetOwner(insert)
}
