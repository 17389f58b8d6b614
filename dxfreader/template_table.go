package dxfreader

import (
	"fmt"

	"github.com/dhamidi/cadkit/cad"
	"github.com/dhamidi/cadkit/dxf"
)

// entryTemplater is implemented by the templates of every table entry
// kind.
type entryTemplater interface {
	mapped
	tableEntry() cad.TableEntry
}

type entryTemplate struct {
	objectTemplate
	entry cad.TableEntry
}

func newEntryTemplate(e cad.TableEntry) entryTemplate {
	return entryTemplate{objectTemplate: objectTemplate{obj: e}, entry: e}
}

func (t *entryTemplate) tableEntry() cad.TableEntry { return t.entry }

func (t *entryTemplate) fields() []subclassFields {
	return []subclassFields{{dxf.SubclassTableRecord, t.setEntry}}
}

func (t *entryTemplate) setEntry(v value) bool {
	switch v.code() {
	case dxf.CodeName:
		v.setName(t.entry)
	case dxf.CodeFlags:
		cad.EntryOf(t.entry).Flags = cad.StandardFlags(v.int16())
	default:
		return false
	}
	return true
}

// build checks that the entry belongs to the table it was added to. An
// entry whose owner handle names no object at all cannot be placed.
func (t *entryTemplate) build(b *builder) error {
	table := t.obj.Owner()
	if t.owner == 0 {
		return nil
	}
	o, ok := b.object(t.owner)
	if !ok {
		return &FormatError{
			Line: t.line,
			Msg:  fmt.Sprintf("owner %s of %s %q not found", t.owner, t.obj.ObjectName(), t.entry.Name()),
			Err:  ErrMissingOwner,
		}
	}
	if table != nil && o != table {
		b.warn(t.line, "%s %q names owner %s but is listed in table %s",
			t.obj.ObjectName(), t.entry.Name(), t.owner, table.Handle())
	}
	return nil
}

// entryFields declares the fields of a kind: the common record fields and
// the kind's own subclass, which also accepts the name and flags.
func (t *entryTemplate) entryFields(marker string, set func(v value) bool) []subclassFields {
	return append(t.fields(), subclassFields{marker, func(v value) bool {
		return set(v) || t.setEntry(v)
	}})
}

type appIdTemplate struct {
	entryTemplate
}

func newAppIdTemplate() entryTemplater {
	return &appIdTemplate{entryTemplate: newEntryTemplate(&cad.AppId{})}
}

func (t *appIdTemplate) fields() []subclassFields {
	return t.entryFields(dxf.SubclassAppId, func(value) bool { return false })
}

type blockRecordTemplate struct {
	entryTemplate
	record *cad.BlockRecord
}

func newBlockRecordTemplate() entryTemplater {
	r := cad.NewBlockRecord()
	return &blockRecordTemplate{entryTemplate: newEntryTemplate(r), record: r}
}

func (t *blockRecordTemplate) fields() []subclassFields {
	return t.entryFields(dxf.SubclassBlockRecord, t.setRecord)
}

func (t *blockRecordTemplate) setRecord(v value) bool {
	r := t.record
	switch v.code() {
	case 340:
		r.LayoutHandle = v.handle()
	case dxf.CodeFlags:
		r.Units = v.int16()
	case 280:
		r.Explodable = v.bool()
	case 281:
		r.Scalable = v.bool()
	case 310:
		// preview image
	default:
		return false
	}
	return true
}

// build completes records whose block was missing from the BLOCKS
// section, so every record keeps both markers.
func (t *blockRecordTemplate) build(b *builder) error {
	if err := t.entryTemplate.build(b); err != nil {
		return err
	}
	r := t.record
	if r.Block == nil {
		b.warn(t.line, "block record %q has no block", r.Name())
		blk := cad.NewBlock()
		blk.Name = r.Name()
		blk.Record = r
		blk.SetOwner(r)
		b.adopt(blk)
		r.Block = blk
	}
	if r.BlockEnd == nil {
		end := cad.NewBlockEnd()
		end.Record = r
		end.SetOwner(r)
		b.adopt(end)
		r.BlockEnd = end
	}
	return nil
}

type layerTemplate struct {
	entryTemplate
	layer        *cad.Layer
	lineTypeName string
}

func newLayerTemplate() entryTemplater {
	l := cad.NewLayer()
	return &layerTemplate{entryTemplate: newEntryTemplate(l), layer: l}
}

func (t *layerTemplate) fields() []subclassFields {
	return t.entryFields(dxf.SubclassLayer, t.setLayer)
}

func (t *layerTemplate) setLayer(v value) bool {
	l := t.layer
	switch v.code() {
	case dxf.CodeColorIndex:
		idx := v.int16()
		l.Off = idx < 0
		l.Color = cad.ColorFromIndex(idx)
	case dxf.CodeTrueColor:
		l.Color = cad.ColorFromRGB(uint32(v.int()))
	case dxf.CodeLineTypeName:
		t.lineTypeName = v.token()
	case 290:
		l.Plot = v.bool()
	case dxf.CodeLineWeight:
		l.LineWeight = v.int16()
	case 390:
		l.PlotStyleHandle = v.handle()
	case dxf.CodeMaterialHandle:
		l.MaterialHandle = v.handle()
	case 348:
		// visual style
	default:
		return false
	}
	return true
}

func (t *layerTemplate) build(b *builder) error {
	if err := t.entryTemplate.build(b); err != nil {
		return err
	}
	if t.lineTypeName == "" {
		return nil
	}
	if lt, ok := b.doc.LineTypes.Get(t.lineTypeName); ok {
		t.layer.LineType = lt
	} else {
		b.warn(t.line, "line type %q of layer %q not found", t.lineTypeName, t.layer.Name())
	}
	return nil
}

type lineTypeTemplate struct {
	entryTemplate
	lineType      *cad.LineType
	segmentStyles map[int]cad.Handle
}

func newLineTypeTemplate() entryTemplater {
	lt := &cad.LineType{}
	return &lineTypeTemplate{
		entryTemplate: newEntryTemplate(lt),
		lineType:      lt,
		segmentStyles: make(map[int]cad.Handle),
	}
}

func (t *lineTypeTemplate) fields() []subclassFields {
	return t.entryFields(dxf.SubclassLineType, t.setLineType)
}

func (t *lineTypeTemplate) setLineType(v value) bool {
	lt := t.lineType
	switch v.code() {
	case dxf.CodeText2:
		lt.Description = v.str()
	case 72:
		lt.Alignment = v.token()
	case 73:
		// segment count, implied by the 49 records
	case 40:
		lt.PatternLength = v.float()
	case 49:
		lt.Segments = append(lt.Segments, cad.LineTypeSegment{Length: v.float(), Scale: 1})
	case 74, 75, 340, 46, 50, 44, 45, 9:
		return t.setSegment(v)
	default:
		return false
	}
	return true
}

func (t *lineTypeTemplate) setSegment(v value) bool {
	n := len(t.lineType.Segments)
	if n == 0 {
		return false
	}
	seg := &t.lineType.Segments[n-1]
	switch v.code() {
	case 74:
		seg.ShapeFlags = v.int16()
	case 75:
		seg.ShapeNumber = v.int16()
	case 340:
		t.segmentStyles[n-1] = v.handle()
	case 46:
		seg.Scale = v.float()
	case 50:
		seg.Rotation = v.float()
	case 44:
		seg.Offset.X = v.float()
	case 45:
		seg.Offset.Y = v.float()
	case 9:
		seg.Text = v.str()
	}
	return true
}

func (t *lineTypeTemplate) build(b *builder) error {
	if err := t.entryTemplate.build(b); err != nil {
		return err
	}
	for i, h := range t.segmentStyles {
		if h == 0 {
			continue
		}
		if style, ok := tableReference(b, b.doc.TextStyles, h, ""); ok {
			t.lineType.Segments[i].Style = style
		} else {
			b.warn(t.line, "text style %s of line type %q not found", h, t.lineType.Name())
		}
	}
	return nil
}

type textStyleTemplate struct {
	entryTemplate
	style *cad.TextStyle
}

func newTextStyleTemplate() entryTemplater {
	s := cad.NewTextStyle()
	return &textStyleTemplate{entryTemplate: newEntryTemplate(s), style: s}
}

func (t *textStyleTemplate) fields() []subclassFields {
	return t.entryFields(dxf.SubclassTextStyle, t.setStyle)
}

func (t *textStyleTemplate) setStyle(v value) bool {
	s := t.style
	switch v.code() {
	case 40:
		s.Height = v.float()
	case 41:
		s.WidthFactor = v.float()
	case 50:
		s.ObliqueAngle = v.float()
	case 71:
		s.MirrorFlags = v.int16()
	case 42:
		s.LastHeight = v.float()
	case dxf.CodeText2:
		s.Filename = v.str()
	case dxf.CodeText3:
		s.BigFontFilename = v.str()
	default:
		return false
	}
	return true
}

type viewTemplate struct {
	entryTemplate
	view *cad.View
}

func newViewTemplate() entryTemplater {
	v := &cad.View{}
	return &viewTemplate{entryTemplate: newEntryTemplate(v), view: v}
}

func (t *viewTemplate) fields() []subclassFields {
	return t.entryFields(dxf.SubclassView, t.setView)
}

func (t *viewTemplate) setView(v value) bool {
	w := t.view
	switch v.code() {
	case 40:
		w.Height = v.float()
	case 41:
		w.Width = v.float()
	case 10, 20:
		setXY(&w.Center, v, 10)
	case 11, 21, 31:
		setXYZ(&w.Direction, v, 11)
	case 12, 22, 32:
		setXYZ(&w.Target, v, 12)
	case 42:
		w.LensLength = v.float()
	case 43:
		w.FrontClipping = v.float()
	case 44:
		w.BackClipping = v.float()
	case 50:
		w.TwistAngle = v.float()
	case 71, 281, 72, 79, 146, 345, 346:
		// view mode, render mode and UCS association
	default:
		return false
	}
	return true
}

type ucsTemplate struct {
	entryTemplate
	ucs *cad.UCS
}

func newUCSTemplate() entryTemplater {
	u := &cad.UCS{}
	return &ucsTemplate{entryTemplate: newEntryTemplate(u), ucs: u}
}

func (t *ucsTemplate) fields() []subclassFields {
	return t.entryFields(dxf.SubclassUCS, t.setUCS)
}

func (t *ucsTemplate) setUCS(v value) bool {
	u := t.ucs
	switch v.code() {
	case 10, 20, 30:
		setXYZ(&u.Origin, v, 10)
	case 11, 21, 31:
		setXYZ(&u.XAxis, v, 11)
	case 12, 22, 32:
		setXYZ(&u.YAxis, v, 12)
	case 146:
		u.Elevation = v.float()
	case 79, 346, 71, 13, 23, 33:
		// orthographic settings
	default:
		return false
	}
	return true
}

type vportTemplate struct {
	entryTemplate
	vport *cad.VPort
}

func newVPortTemplate() entryTemplater {
	p := &cad.VPort{}
	return &vportTemplate{entryTemplate: newEntryTemplate(p), vport: p}
}

func (t *vportTemplate) fields() []subclassFields {
	return t.entryFields(dxf.SubclassVPort, t.setVPort)
}

func (t *vportTemplate) setVPort(v value) bool {
	p := t.vport
	switch v.code() {
	case 10, 20:
		setXY(&p.BottomLeft, v, 10)
	case 11, 21:
		setXY(&p.TopRight, v, 11)
	case 12, 22:
		setXY(&p.Center, v, 12)
	case 40:
		p.ViewHeight = v.float()
	case 41:
		p.AspectRatio = v.float()
	case 42:
		p.LensLength = v.float()
	case 50:
		p.SnapRotation = v.float()
	case 51:
		p.TwistAngle = v.float()
	case 13, 23, 14, 24, 15, 25, 16, 26, 36, 17, 27, 37, 43, 44,
		71, 72, 73, 74, 75, 76, 77, 78, 65, 110, 120, 130, 111, 121, 131,
		112, 122, 132, 79, 146, 60, 61, 170, 281, 292, 141, 142, 63, 421,
		345, 346, 348, 332, 333, 361:
		// display settings kept by the drawing editor only
	default:
		return false
	}
	return true
}

type dimensionStyleTemplate struct {
	entryTemplate
	dimStyle    *cad.DimensionStyle
	styleHandle cad.Handle
}

func newDimensionStyleTemplate() entryTemplater {
	d := cad.NewDimensionStyle()
	return &dimensionStyleTemplate{entryTemplate: newEntryTemplate(d), dimStyle: d}
}

func (t *dimensionStyleTemplate) fields() []subclassFields {
	return t.entryFields(dxf.SubclassDimStyle, t.setDimStyle)
}

func (t *dimensionStyleTemplate) setDimStyle(v value) bool {
	d := t.dimStyle
	switch v.code() {
	case dxf.CodeText2:
		d.PostFix = v.str()
	case 40:
		d.ScaleFactor = v.float()
	case 41:
		d.ArrowSize = v.float()
	case 140:
		d.TextHeight = v.float()
	case 340:
		t.styleHandle = v.handle()
	default:
		// The remaining dimension variables are not modelled.
		return v.code() != dxf.CodeName && v.code() != dxf.CodeFlags
	}
	return true
}

func (t *dimensionStyleTemplate) build(b *builder) error {
	if err := t.entryTemplate.build(b); err != nil {
		return err
	}
	if t.styleHandle == 0 {
		return nil
	}
	if style, ok := tableReference(b, b.doc.TextStyles, t.styleHandle, ""); ok {
		t.dimStyle.TextStyle = style
	} else {
		b.warn(t.line, "text style %s of dimension style %q not found", t.styleHandle, t.dimStyle.Name())
	}
	return nil
}
