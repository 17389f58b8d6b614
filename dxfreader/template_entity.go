package dxfreader

import (
	"github.com/dhamidi/cadkit/cad"
	"github.com/dhamidi/cadkit/dxf"
)

// Linetype flags of binary-origin streams.
const (
	lineTypeFlagByLayer    = 0
	lineTypeFlagByBlock    = 1
	lineTypeFlagContinuous = 2
	lineTypeFlagHandle     = 3
)

type entityTemplate struct {
	objectTemplate
	entity         *cad.EntityBase
	ltypeFlags     int16
	hasLtypeFlags  bool
	layerHandle    cad.Handle
	layerName      string
	lineTypeHandle cad.Handle
	lineTypeName   string
	colorHandle    cad.Handle
}

// entityTemplater is implemented by the templates of every entity kind.
type entityTemplater interface {
	mapped
	entityBase() *entityTemplate
	entityObject() cad.Entity
}

func newEntityTemplate(e cad.Entity) entityTemplate {
	return entityTemplate{
		objectTemplate: objectTemplate{obj: e},
		entity:         cad.Base(e),
	}
}

func (t *entityTemplate) entityBase() *entityTemplate { return t }

func (t *entityTemplate) entityObject() cad.Entity { return t.obj.(cad.Entity) }

func (t *entityTemplate) fields() []subclassFields {
	return []subclassFields{{dxf.SubclassEntity, t.setEntity}}
}

func (t *entityTemplate) setEntity(v value) bool {
	e := t.entity
	switch v.code() {
	case dxf.CodeLayerName:
		t.layerName = v.token()
	case dxf.CodeLineTypeName:
		t.lineTypeName = v.token()
	case dxf.CodeColorIndex:
		e.Color = cad.ColorFromIndex(v.int16())
	case dxf.CodeTrueColor:
		e.Color = cad.ColorFromRGB(uint32(v.int()))
	case dxf.CodeColorName:
		e.ColorName = v.str()
	case dxf.CodeLineWeight:
		e.LineWeight = v.int16()
	case 48:
		e.LineTypeScale = v.float()
	case 60:
		e.Invisible = v.bool()
	case 67:
		e.PaperSpace = v.bool()
	case dxf.CodeMaterialHandle:
		e.MaterialHandle = v.handle()
	case dxf.CodeLayerHandle:
		t.layerHandle = v.handle()
	case dxf.CodeLineTypeHandle:
		t.lineTypeHandle = v.handle()
	case dxf.CodeColorHandle:
		t.colorHandle = v.handle()
	case dxf.CodeLineTypeFlags:
		t.ltypeFlags = v.int16()
		t.hasLtypeFlags = true
	case 410, 92, 310, 284, 390, 440:
		// layout name, proxy graphics, shadow mode, plot style, transparency
	default:
		return false
	}
	return true
}

func (t *entityTemplate) build(b *builder) error {
	if err := t.objectTemplate.build(b); err != nil {
		return err
	}

	if layer, ok := tableReference(b, b.doc.Layers, t.layerHandle, t.layerName); ok {
		t.entity.Layer = layer
	} else if t.layerHandle != 0 || t.layerName != "" {
		b.warn(t.line, "could not assign the layer to %s %s | handle: %s | name: %s",
			t.obj.ObjectName(), t.obj.Handle(), t.layerHandle, t.layerName)
	}

	t.buildLineType(b)

	if t.colorHandle != 0 {
		if c, ok := objectAs[*cad.BookColor](b, t.colorHandle); ok {
			t.entity.Color = c.Color
		} else {
			b.warn(t.line, "could not assign the color %s to %s %s", t.colorHandle, t.obj.ObjectName(), t.obj.Handle())
		}
	}
	// A color given only by name keeps the color read from the entity.

	return nil
}

func (t *entityTemplate) buildLineType(b *builder) {
	lineTypes := b.doc.LineTypes

	var (
		lt *cad.LineType
		ok bool
	)
	switch {
	case t.hasLtypeFlags && t.ltypeFlags == lineTypeFlagByLayer:
		lt, ok = lineTypes.Get(cad.LineTypeByLayer)
	case t.hasLtypeFlags && t.ltypeFlags == lineTypeFlagByBlock:
		lt, ok = lineTypes.Get(cad.LineTypeByBlock)
	case t.hasLtypeFlags && t.ltypeFlags == lineTypeFlagContinuous:
		lt, ok = lineTypes.Get(cad.LineTypeContinuous)
	case t.hasLtypeFlags && t.ltypeFlags == lineTypeFlagHandle:
		lt, ok = lineTypes.GetByHandle(t.lineTypeHandle)
		if !ok {
			lt, ok = objectAs[*cad.LineType](b, t.lineTypeHandle)
		}
	default:
		if t.lineTypeHandle == 0 && t.lineTypeName == "" {
			return
		}
		lt, ok = tableReference(b, lineTypes, t.lineTypeHandle, t.lineTypeName)
	}

	if ok {
		t.entity.LineType = lt
		return
	}
	if t.hasLtypeFlags {
		b.warn(t.line, "could not assign the line type to %s %s | flags: %d | handle: %s",
			t.obj.ObjectName(), t.obj.Handle(), t.ltypeFlags, t.lineTypeHandle)
		return
	}
	b.warn(t.line, "could not assign the line type to %s %s | handle: %s | name: %s",
		t.obj.ObjectName(), t.obj.Handle(), t.lineTypeHandle, t.lineTypeName)
}

// tableReference resolves an entry by handle first and by name second.
func tableReference[T cad.TableEntry](b *builder, table *cad.Table[T], h cad.Handle, name string) (T, bool) {
	if h != 0 {
		if e, ok := table.GetByHandle(h); ok {
			return e, true
		}
		if e, ok := objectAs[T](b, h); ok {
			return e, true
		}
	}
	if name != "" {
		return table.Get(name)
	}
	var zero T
	return zero, false
}

type lineTemplate struct {
	entityTemplate
	seg *cad.Line
}

func newLineTemplate() entityTemplater {
	l := cad.NewLine()
	return &lineTemplate{entityTemplate: newEntityTemplate(l), seg: l}
}

func (t *lineTemplate) fields() []subclassFields {
	return append(t.entityTemplate.fields(), subclassFields{dxf.SubclassLine, t.setLine})
}

func (t *lineTemplate) setLine(v value) bool {
	l := t.seg
	switch v.code() {
	case 10, 20, 30:
		setXYZ(&l.Start, v, 10)
	case 11, 21, 31:
		setXYZ(&l.End, v, 11)
	case 39:
		l.Thickness = v.float()
	case 210, 220, 230:
		setXYZ(&l.Normal, v, 210)
	default:
		return false
	}
	return true
}

type pointTemplate struct {
	entityTemplate
	point *cad.Point
}

func newPointTemplate() entityTemplater {
	p := cad.NewPoint()
	return &pointTemplate{entityTemplate: newEntityTemplate(p), point: p}
}

func (t *pointTemplate) fields() []subclassFields {
	return append(t.entityTemplate.fields(), subclassFields{dxf.SubclassPoint, t.setPoint})
}

func (t *pointTemplate) setPoint(v value) bool {
	p := t.point
	switch v.code() {
	case 10, 20, 30:
		setXYZ(&p.Location, v, 10)
	case 39:
		p.Thickness = v.float()
	case 210, 220, 230:
		setXYZ(&p.Normal, v, 210)
	case 50:
	default:
		return false
	}
	return true
}

type circleTemplate struct {
	entityTemplate
	circle *cad.Circle
}

func newCircleTemplate() entityTemplater {
	c := cad.NewCircle()
	return &circleTemplate{entityTemplate: newEntityTemplate(c), circle: c}
}

func (t *circleTemplate) fields() []subclassFields {
	return append(t.entityTemplate.fields(), subclassFields{dxf.SubclassCircle, t.setCircle})
}

func (t *circleTemplate) setCircle(v value) bool {
	return setCircleField(t.circle, v)
}

func setCircleField(c *cad.Circle, v value) bool {
	switch v.code() {
	case 10, 20, 30:
		setXYZ(&c.Center, v, 10)
	case 40:
		c.Radius = v.float()
	case 39:
		c.Thickness = v.float()
	case 210, 220, 230:
		setXYZ(&c.Normal, v, 210)
	default:
		return false
	}
	return true
}

type arcTemplate struct {
	entityTemplate
	arc *cad.Arc
}

func newArcTemplate() entityTemplater {
	a := cad.NewArc()
	return &arcTemplate{entityTemplate: newEntityTemplate(a), arc: a}
}

func (t *arcTemplate) fields() []subclassFields {
	return append(t.entityTemplate.fields(),
		subclassFields{dxf.SubclassCircle, t.setCircle},
		subclassFields{dxf.SubclassArc, t.setArc},
	)
}

func (t *arcTemplate) setCircle(v value) bool {
	return setCircleField(&t.arc.Circle, v)
}

func (t *arcTemplate) setArc(v value) bool {
	switch v.code() {
	case 50:
		t.arc.StartAngle = v.float()
	case 51:
		t.arc.EndAngle = v.float()
	default:
		return false
	}
	return true
}

// setXYZ assigns one coordinate of a point whose X code is base; the Y and
// Z codes follow at +10 and +20.
func setXYZ(p *cad.XYZ, v value, base int) {
	switch v.code() - base {
	case 0:
		p.X = v.float()
	case 10:
		p.Y = v.float()
	case 20:
		p.Z = v.float()
	}
}

func setXY(p *cad.XY, v value, base int) {
	switch v.code() - base {
	case 0:
		p.X = v.float()
	case 10:
		p.Y = v.float()
	}
}
