package cad

// Entity is a graphical object. Its layer, linetype and color are shared
// references resolved after the whole document has been read.
type Entity interface {
	Object
	entity() *EntityBase
}

type EntityBase struct {
	ObjectBase
	Layer         *Layer
	LineType      *LineType
	Color         Color
	LineWeight    int16
	LineTypeScale float64
	Invisible     bool
	PaperSpace    bool
	// ColorName is the book color name as read. It is kept for output only;
	// the color itself comes from Color or a referenced BookColor.
	ColorName      string
	MaterialHandle Handle
}

func (e *EntityBase) entity() *EntityBase { return e }

func (e *EntityBase) init() {
	e.Color = ColorByLayer
	e.LineTypeScale = 1
	e.LineWeight = -1
}

// Base exposes the shared entity fields of any entity.
func Base(e Entity) *EntityBase { return e.entity() }

// LayerName returns the name of the assigned layer, "0" when none is.
func (e *EntityBase) LayerName() string {
	if e.Layer == nil {
		return "0"
	}
	return e.Layer.Name()
}

// LineTypeName returns the name of the assigned linetype, ByLayer when none
// is.
func (e *EntityBase) LineTypeName() string {
	if e.LineType == nil {
		return LineTypeByLayer
	}
	return e.LineType.Name()
}
