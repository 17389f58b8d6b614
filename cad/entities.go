package cad

type Line struct {
	EntityBase
	Start     XYZ
	End       XYZ
	Thickness float64
	Normal    XYZ
}

func NewLine() *Line {
	l := &Line{Normal: AxisZ}
	l.init()
	return l
}

func (*Line) ObjectName() string { return "LINE" }

type Point struct {
	EntityBase
	Location  XYZ
	Thickness float64
	Normal    XYZ
}

func NewPoint() *Point {
	p := &Point{Normal: AxisZ}
	p.init()
	return p
}

func (*Point) ObjectName() string { return "POINT" }

type Circle struct {
	EntityBase
	Center    XYZ
	Radius    float64
	Thickness float64
	Normal    XYZ
}

func NewCircle() *Circle {
	c := &Circle{Normal: AxisZ, Radius: 1}
	c.init()
	return c
}

func (*Circle) ObjectName() string { return "CIRCLE" }

type Arc struct {
	Circle
	StartAngle float64
	EndAngle   float64
}

func NewArc() *Arc {
	a := &Arc{Circle: Circle{Normal: AxisZ, Radius: 1}}
	a.init()
	return a
}

func (*Arc) ObjectName() string { return "ARC" }

type Text struct {
	EntityBase
	Value               string
	InsertPoint         XYZ
	AlignmentPoint      XYZ
	Height              float64
	Rotation            float64
	WidthFactor         float64
	ObliqueAngle        float64
	Style               *TextStyle
	StyleName           string
	HorizontalAlignment int16
	VerticalAlignment   int16
	Thickness           float64
	Normal              XYZ
}

func NewText() *Text {
	t := &Text{}
	t.initText()
	return t
}

func (t *Text) initText() {
	t.init()
	t.Height = 1
	t.WidthFactor = 1
	t.Normal = AxisZ
}

func (*Text) ObjectName() string { return "TEXT" }

type AttributeFlags int16

const (
	AttributeInvisible AttributeFlags = 1
	AttributeConstant  AttributeFlags = 2
	AttributeVerify    AttributeFlags = 4
	AttributePreset    AttributeFlags = 8
)

// Attribute is an ATTRIB entity attached to an Insert.
type Attribute struct {
	Text
	Tag     string
	Flags   AttributeFlags
	Version uint8
}

func NewAttribute() *Attribute {
	a := &Attribute{}
	a.initText()
	return a
}

func (*Attribute) ObjectName() string { return "ATTRIB" }

// AttributeDefinition is the ATTDEF template of an attribute inside a
// block.
type AttributeDefinition struct {
	Attribute
	Prompt string
}

func NewAttributeDefinition() *AttributeDefinition {
	a := &AttributeDefinition{}
	a.initText()
	return a
}

func (*AttributeDefinition) ObjectName() string { return "ATTDEF" }

// Insert places a block reference. The Block is shared with every other
// insert of the same block; the attributes belong to this insert.
type Insert struct {
	EntityBase
	Block         *Block
	BlockName     string
	HasAttributes bool
	Attributes    []*Attribute
	Seqend        *Seqend
	InsertPoint   XYZ
	Scale         XYZ
	Rotation      float64
	Normal        XYZ
	Columns       uint16
	Rows          uint16
	ColumnSpacing float64
	RowSpacing    float64
}

func NewInsert() *Insert {
	i := &Insert{Scale: One, Normal: AxisZ, Columns: 1, Rows: 1}
	i.init()
	return i
}

func (*Insert) ObjectName() string { return "INSERT" }

func (i *Insert) AddAttribute(a *Attribute) {
	i.Attributes = append(i.Attributes, a)
	a.SetOwner(i)
}

// Seqend terminates the attribute list of an Insert.
type Seqend struct {
	EntityBase
}

func NewSeqend() *Seqend {
	s := &Seqend{}
	s.init()
	return s
}

func (*Seqend) ObjectName() string { return "SEQEND" }
