package dxfreader

import (
	"github.com/dhamidi/cadkit/cad"
)

// template stages one object while the stream is read. It keeps the
// references the object makes until build resolves them.
type template interface {
	base() *objectTemplate
	build(b *builder) error
}

type objectTemplate struct {
	obj   cad.Object
	owner cad.Handle
	line  int
}

func (t *objectTemplate) base() *objectTemplate { return t }

func (t *objectTemplate) object() cad.Object { return t.obj }

// build resolves the owner handle unless a collection already took
// ownership of the object while it was read.
func (t *objectTemplate) build(b *builder) error {
	if t.owner == 0 || t.obj.Owner() != nil {
		return nil
	}
	if o, ok := b.object(t.owner); ok {
		t.obj.SetOwner(o)
		return nil
	}
	b.warn(t.line, "owner %s of %s %s not found", t.owner, t.obj.ObjectName(), t.obj.Handle())
	return nil
}

// tableTemplate stages the table object introduced by a TABLE record.
type tableTemplate struct {
	objectTemplate
	table   cad.AnyTable
	entries int
}

func newTableTemplate(table cad.AnyTable) *tableTemplate {
	return &tableTemplate{objectTemplate: objectTemplate{obj: table}}
}

// colorTemplate stages a DBCOLOR object.
type colorTemplate struct {
	objectTemplate
	color *cad.BookColor
}

func newColorTemplate() *colorTemplate {
	c := &cad.BookColor{Color: cad.ColorByLayer}
	return &colorTemplate{objectTemplate: objectTemplate{obj: c}, color: c}
}

func (t *colorTemplate) fields() []subclassFields {
	return []subclassFields{{"AcDbColor", t.setColor}}
}

func (t *colorTemplate) setColor(v value) bool {
	switch v.code() {
	case 62:
		t.color.Color = cad.ColorFromIndex(v.int16())
	case 420:
		t.color.Color = cad.ColorFromRGB(uint32(v.int()))
	case 430:
		t.color.Name = v.str()
	default:
		return false
	}
	return true
}
