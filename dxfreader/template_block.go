package dxfreader

import (
	"github.com/dhamidi/cadkit/cad"
	"github.com/dhamidi/cadkit/dxf"
)

type textTemplate struct {
	entityTemplate
	text      *cad.Text
	styleName string
}

func newTextTemplate() entityTemplater {
	t := cad.NewText()
	return &textTemplate{entityTemplate: newEntityTemplate(t), text: t}
}

func (t *textTemplate) fields() []subclassFields {
	return append(t.entityTemplate.fields(), subclassFields{dxf.SubclassText, t.setText})
}

func (t *textTemplate) setText(v value) bool {
	x := t.text
	switch v.code() {
	case dxf.CodeText:
		x.Value = v.str()
	case 10, 20, 30:
		setXYZ(&x.InsertPoint, v, 10)
	case 11, 21, 31:
		setXYZ(&x.AlignmentPoint, v, 11)
	case 40:
		x.Height = v.float()
	case 50:
		x.Rotation = v.float()
	case 41:
		x.WidthFactor = v.float()
	case 51:
		x.ObliqueAngle = v.float()
	case dxf.CodeTextStyleName:
		t.styleName = v.token()
		x.StyleName = t.styleName
	case 72:
		x.HorizontalAlignment = v.int16()
	case 73:
		x.VerticalAlignment = v.int16()
	case 39:
		x.Thickness = v.float()
	case 210, 220, 230:
		setXYZ(&x.Normal, v, 210)
	case 71:
		// generation flags
	default:
		return false
	}
	return true
}

func (t *textTemplate) build(b *builder) error {
	if err := t.entityTemplate.build(b); err != nil {
		return err
	}
	if t.styleName == "" {
		return nil
	}
	if style, ok := b.doc.TextStyles.Get(t.styleName); ok {
		t.text.Style = style
	} else {
		b.warn(t.line, "text style %q of %s %s not found", t.styleName, t.obj.ObjectName(), t.obj.Handle())
	}
	return nil
}

type attributeTemplate struct {
	textTemplate
	attr *cad.Attribute
}

func newAttributeTemplate() entityTemplater {
	a := cad.NewAttribute()
	return newAttributeTemplateFor(a, &a.Text)
}

func newAttributeTemplateFor(a *cad.Attribute, text *cad.Text) *attributeTemplate {
	obj := cad.Entity(a)
	return &attributeTemplate{
		textTemplate: textTemplate{entityTemplate: newEntityTemplate(obj), text: text},
		attr:         a,
	}
}

func (t *attributeTemplate) fields() []subclassFields {
	return append(t.textTemplate.fields(), subclassFields{dxf.SubclassAttribute, t.setAttribute})
}

func (t *attributeTemplate) setAttribute(v value) bool {
	a := t.attr
	switch v.code() {
	case dxf.CodeName:
		a.Tag = v.str()
	case dxf.CodeFlags:
		a.Flags = cad.AttributeFlags(v.int16())
	case 280:
		a.Version = uint8(v.int16())
	case 74:
		a.VerticalAlignment = v.int16()
	case 73:
		// field length
	default:
		return false
	}
	return true
}

type attributeDefinitionTemplate struct {
	attributeTemplate
	def *cad.AttributeDefinition
}

func newAttributeDefinitionTemplate() entityTemplater {
	d := cad.NewAttributeDefinition()
	t := &attributeDefinitionTemplate{def: d}
	t.attributeTemplate = *newAttributeTemplateFor(&d.Attribute, &d.Text)
	t.obj = d
	return t
}

func (t *attributeDefinitionTemplate) fields() []subclassFields {
	return append(t.textTemplate.fields(),
		subclassFields{dxf.SubclassAttributeDef, t.setDefinition},
	)
}

func (t *attributeDefinitionTemplate) setDefinition(v value) bool {
	if v.code() == dxf.CodeText2 {
		t.def.Prompt = v.str()
		return true
	}
	return t.setAttribute(v)
}

type insertTemplate struct {
	entityTemplate
	insert    *cad.Insert
	blockName string
}

func newInsertTemplate() entityTemplater {
	i := cad.NewInsert()
	return &insertTemplate{entityTemplate: newEntityTemplate(i), insert: i}
}

func (t *insertTemplate) fields() []subclassFields {
	return append(t.entityTemplate.fields(), subclassFields{dxf.SubclassBlockReference, t.setInsert})
}

func (t *insertTemplate) setInsert(v value) bool {
	i := t.insert
	switch v.code() {
	case dxf.CodeName:
		t.blockName = v.token()
		i.BlockName = t.blockName
	case dxf.CodeEntitiesFollow:
		i.HasAttributes = v.bool()
	case 10, 20, 30:
		setXYZ(&i.InsertPoint, v, 10)
	case 41:
		i.Scale.X = v.float()
	case 42:
		i.Scale.Y = v.float()
	case 43:
		i.Scale.Z = v.float()
	case 50:
		i.Rotation = v.float()
	case 70:
		i.Columns = uint16(v.int())
	case 71:
		i.Rows = uint16(v.int())
	case 44:
		i.ColumnSpacing = v.float()
	case 45:
		i.RowSpacing = v.float()
	case 210, 220, 230:
		setXYZ(&i.Normal, v, 210)
	default:
		return false
	}
	return true
}

// build links the insert to the shared block definition.
func (t *insertTemplate) build(b *builder) error {
	if err := t.entityTemplate.build(b); err != nil {
		return err
	}
	if t.blockName == "" {
		return nil
	}
	if record, ok := b.doc.BlockRecords.Get(t.blockName); ok && record.Block != nil {
		t.insert.Block = record.Block
	} else {
		b.warn(t.line, "block %q of insert %s not found", t.blockName, t.obj.Handle())
	}
	return nil
}

type seqendTemplate struct {
	entityTemplate
	seqend *cad.Seqend
}

func newSeqendTemplate() entityTemplater {
	s := cad.NewSeqend()
	return &seqendTemplate{entityTemplate: newEntityTemplate(s), seqend: s}
}

// blockTemplate stages the block-begin marker.
type blockTemplate struct {
	entityTemplate
	block *cad.Block
}

func newBlockTemplate() *blockTemplate {
	blk := cad.NewBlock()
	return &blockTemplate{entityTemplate: newEntityTemplate(blk), block: blk}
}

func (t *blockTemplate) fields() []subclassFields {
	return append(t.entityTemplate.fields(), subclassFields{dxf.SubclassBlockBegin, t.setBlock})
}

func (t *blockTemplate) setBlock(v value) bool {
	blk := t.block
	switch v.code() {
	case dxf.CodeName:
		blk.Name = v.token()
	case dxf.CodeFlags:
		blk.Flags = cad.BlockFlags(v.int16())
	case 10, 20, 30:
		setXYZ(&blk.BasePoint, v, 10)
	case dxf.CodeText2:
		// repeats the name
	case dxf.CodeText:
		blk.XrefPath = v.str()
	case dxf.CodeText3:
		blk.Description = v.str()
	default:
		return false
	}
	return true
}

// blockEndTemplate stages the block-end marker.
type blockEndTemplate struct {
	entityTemplate
	end *cad.BlockEnd
}

func newBlockEndTemplate() *blockEndTemplate {
	e := cad.NewBlockEnd()
	return &blockEndTemplate{entityTemplate: newEntityTemplate(e), end: e}
}

func (t *blockEndTemplate) fields() []subclassFields {
	return append(t.entityTemplate.fields(), subclassFields{dxf.SubclassBlockEnd, func(value) bool { return false }})
}
