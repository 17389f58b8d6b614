package cad

import (
	"fmt"
	"sort"
)

// Header keeps the HEADER section variables. Version and HandleSeed are
// decoded; every variable is also kept as raw values in file order.
type Header struct {
	Version    string
	HandleSeed Handle
	Variables  map[string][]string
	names      []string
}

// Set records the raw values of a header variable.
func (h *Header) Set(name string, values ...string) {
	if h.Variables == nil {
		h.Variables = make(map[string][]string)
	}
	if _, ok := h.Variables[name]; !ok {
		h.names = append(h.names, name)
	}
	h.Variables[name] = values
}

// Names returns the variable names in the order they were set.
func (h *Header) Names() []string { return h.names }

// AnyTable is implemented by every Table regardless of its entry kind.
type AnyTable interface {
	Object
	Name() string
	Len() int
	Items() []TableEntry
}

// Document is a reconstructed drawing.
type Document struct {
	Header          Header
	AppIds          *Table[*AppId]
	BlockRecords    *Table[*BlockRecord]
	VPorts          *Table[*VPort]
	LineTypes       *Table[*LineType]
	Layers          *Table[*Layer]
	TextStyles      *Table[*TextStyle]
	Views           *Table[*View]
	UCSs            *Table[*UCS]
	DimensionStyles *Table[*DimensionStyle]

	entities []Entity
	colors   []*BookColor
	objects  map[Handle]Object
}

func NewDocument() *Document {
	return &Document{
		AppIds:          NewTable[*AppId](TableAppId),
		BlockRecords:    NewTable[*BlockRecord](TableBlockRecord),
		VPorts:          NewTable[*VPort](TableVPort),
		LineTypes:       NewTable[*LineType](TableLineType),
		Layers:          NewTable[*Layer](TableLayer),
		TextStyles:      NewTable[*TextStyle](TableTextStyle),
		Views:           NewTable[*View](TableView),
		UCSs:            NewTable[*UCS](TableUCS),
		DimensionStyles: NewTable[*DimensionStyle](TableDimensionStyle),
		objects:         make(map[Handle]Object),
	}
}

// Tables returns the symbol tables in the order a DXF file lists them.
func (d *Document) Tables() []AnyTable {
	return []AnyTable{
		d.VPorts,
		d.LineTypes,
		d.Layers,
		d.TextStyles,
		d.Views,
		d.UCSs,
		d.AppIds,
		d.DimensionStyles,
		d.BlockRecords,
	}
}

// Table returns the table of the given kind name, e.g. LAYER.
func (d *Document) Table(name string) (AnyTable, bool) {
	for _, t := range d.Tables() {
		if t.Name() == name {
			return t, true
		}
	}
	return nil, false
}

// Entities returns the model and paper space entities of the ENTITIES
// section in file order.
func (d *Document) Entities() []Entity { return d.entities }

func (d *Document) AddEntity(e Entity) {
	d.entities = append(d.entities, e)
}

func (d *Document) BookColors() []*BookColor { return d.colors }

func (d *Document) AddBookColor(c *BookColor) {
	d.colors = append(d.colors, c)
}

// Register adds o to the handle index. Each handle may be registered once;
// the zero handle is rejected.
func (d *Document) Register(o Object) error {
	h := o.Handle()
	if h == 0 {
		return fmt.Errorf("register %s: %w: zero", o.ObjectName(), ErrInvalidHandle)
	}
	if prev, ok := d.objects[h]; ok && prev != o {
		return fmt.Errorf("register %s: %w: %s", o.ObjectName(), ErrDuplicateHandle, h)
	}
	d.objects[h] = o
	return nil
}

func (d *Document) GetObject(h Handle) (Object, bool) {
	o, ok := d.objects[h]
	return o, ok
}

// Objects returns every registered object ordered by handle.
func (d *Document) Objects() []Object {
	objs := make([]Object, 0, len(d.objects))
	for _, o := range d.objects {
		objs = append(objs, o)
	}
	sort.Slice(objs, func(i, j int) bool { return objs[i].Handle() < objs[j].Handle() })
	return objs
}

// ModelSpace returns the *Model_Space block record, if the drawing has one.
func (d *Document) ModelSpace() (*BlockRecord, bool) {
	return d.BlockRecords.Get(ModelSpaceName)
}

// GetObjectAs resolves h to an object of type T.
func GetObjectAs[T Object](d *Document, h Handle) (T, bool) {
	o, ok := d.objects[h]
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := o.(T)
	return t, ok
}
