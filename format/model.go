package format

import (
	"github.com/dhamidi/cadkit/cad"
)

// documentData is the tree the structured encoders serialise.
type documentData struct {
	Version    string      `json:"version,omitempty" yaml:"version,omitempty"`
	HandleSeed string      `json:"handleSeed,omitempty" yaml:"handleSeed,omitempty"`
	Tables     []tableData `json:"tables" yaml:"tables"`
	Blocks     []blockData `json:"blocks,omitempty" yaml:"blocks,omitempty"`
	Entities   []objData   `json:"entities,omitempty" yaml:"entities,omitempty"`
	Colors     []objData   `json:"colors,omitempty" yaml:"colors,omitempty"`
}

type tableData struct {
	Name    string    `json:"name" yaml:"name"`
	Handle  string    `json:"handle,omitempty" yaml:"handle,omitempty"`
	Entries []objData `json:"entries,omitempty" yaml:"entries,omitempty"`
}

type blockData struct {
	Name     string    `json:"name" yaml:"name"`
	Handle   string    `json:"handle,omitempty" yaml:"handle,omitempty"`
	Base     []float64 `json:"base,omitempty" yaml:"base,omitempty,flow"`
	Entities []objData `json:"entities,omitempty" yaml:"entities,omitempty"`
}

// objData describes one table entry, entity or object. Props holds the
// kind-specific values.
type objData struct {
	Kind   string         `json:"kind" yaml:"kind"`
	Handle string         `json:"handle" yaml:"handle"`
	Name   string         `json:"name,omitempty" yaml:"name,omitempty"`
	Owner  string         `json:"owner,omitempty" yaml:"owner,omitempty"`
	Props  map[string]any `json:"props,omitempty" yaml:"props,omitempty"`
}

func buildDocument(doc *cad.Document) documentData {
	data := documentData{
		Version: doc.Header.Version,
	}
	if !doc.Header.HandleSeed.IsZero() {
		data.HandleSeed = doc.Header.HandleSeed.String()
	}
	for _, t := range doc.Tables() {
		td := tableData{Name: t.Name(), Handle: handleStr(t.Handle())}
		for _, e := range t.Items() {
			td.Entries = append(td.Entries, buildEntry(e))
		}
		data.Tables = append(data.Tables, td)
	}
	for _, r := range doc.BlockRecords.Entries() {
		bd := blockData{Name: r.Name()}
		if r.Block != nil {
			bd.Handle = handleStr(r.Block.Handle())
			bd.Base = xyz(r.Block.BasePoint)
		}
		for _, e := range r.Entities() {
			bd.Entities = append(bd.Entities, buildEntity(e))
		}
		data.Blocks = append(data.Blocks, bd)
	}
	for _, e := range doc.Entities() {
		data.Entities = append(data.Entities, buildEntity(e))
	}
	for _, c := range doc.BookColors() {
		data.Colors = append(data.Colors, objData{
			Kind:   c.ObjectName(),
			Handle: handleStr(c.Handle()),
			Name:   c.Name,
			Owner:  handleStr(cad.OwnerHandle(c)),
			Props:  map[string]any{"color": c.Color.String()},
		})
	}
	return data
}

func handleStr(h cad.Handle) string {
	if h.IsZero() {
		return ""
	}
	return h.String()
}

func xyz(p cad.XYZ) []float64 { return []float64{p.X, p.Y, p.Z} }
func xy(p cad.XY) []float64   { return []float64{p.X, p.Y} }

func buildEntry(e cad.TableEntry) objData {
	d := objData{
		Kind:   e.ObjectName(),
		Handle: handleStr(e.Handle()),
		Name:   e.Name(),
		Owner:  handleStr(cad.OwnerHandle(e)),
		Props:  map[string]any{},
	}
	if flags := cad.EntryOf(e).Flags; flags != 0 {
		d.Props["flags"] = int(flags)
	}
	switch e := e.(type) {
	case *cad.Layer:
		d.Props["color"] = e.Color.String()
		d.Props["off"] = e.Off
		d.Props["plot"] = e.Plot
		if e.LineType != nil {
			d.Props["lineType"] = e.LineType.Name()
		}
		d.Props["lineWeight"] = int(e.LineWeight)
	case *cad.LineType:
		d.Props["description"] = e.Description
		d.Props["patternLength"] = e.PatternLength
		if len(e.Segments) > 0 {
			lengths := make([]float64, len(e.Segments))
			for i, s := range e.Segments {
				lengths[i] = s.Length
			}
			d.Props["segments"] = lengths
		}
	case *cad.TextStyle:
		d.Props["height"] = e.Height
		d.Props["widthFactor"] = e.WidthFactor
		if e.Filename != "" {
			d.Props["font"] = e.Filename
		}
	case *cad.DimensionStyle:
		d.Props["scale"] = e.ScaleFactor
		d.Props["textHeight"] = e.TextHeight
		if e.TextStyle != nil {
			d.Props["textStyle"] = e.TextStyle.Name()
		}
	case *cad.BlockRecord:
		d.Props["entities"] = len(e.Entities())
		d.Props["units"] = int(e.Units)
	case *cad.View:
		d.Props["center"] = xy(e.Center)
		d.Props["height"] = e.Height
		d.Props["width"] = e.Width
	case *cad.UCS:
		d.Props["origin"] = xyz(e.Origin)
		d.Props["xAxis"] = xyz(e.XAxis)
		d.Props["yAxis"] = xyz(e.YAxis)
	case *cad.VPort:
		d.Props["center"] = xy(e.Center)
		d.Props["height"] = e.ViewHeight
	}
	if len(d.Props) == 0 {
		d.Props = nil
	}
	return d
}

func buildEntity(e cad.Entity) objData {
	base := cad.Base(e)
	d := objData{
		Kind:   e.ObjectName(),
		Handle: handleStr(e.Handle()),
		Owner:  handleStr(cad.OwnerHandle(e)),
		Props: map[string]any{
			"layer":    base.LayerName(),
			"lineType": base.LineTypeName(),
			"color":    base.Color.String(),
		},
	}
	switch e := e.(type) {
	case *cad.Line:
		d.Props["start"] = xyz(e.Start)
		d.Props["end"] = xyz(e.End)
	case *cad.Point:
		d.Props["location"] = xyz(e.Location)
	case *cad.Arc:
		d.Props["center"] = xyz(e.Center)
		d.Props["radius"] = e.Radius
		d.Props["startAngle"] = e.StartAngle
		d.Props["endAngle"] = e.EndAngle
	case *cad.Circle:
		d.Props["center"] = xyz(e.Center)
		d.Props["radius"] = e.Radius
	case *cad.AttributeDefinition:
		d.Name = e.Tag
		d.Props["prompt"] = e.Prompt
		d.Props["value"] = e.Value
	case *cad.Attribute:
		d.Name = e.Tag
		d.Props["value"] = e.Value
	case *cad.Text:
		d.Props["value"] = e.Value
		d.Props["insert"] = xyz(e.InsertPoint)
		d.Props["height"] = e.Height
		if e.StyleName != "" {
			d.Props["style"] = e.StyleName
		}
	case *cad.Insert:
		d.Name = e.BlockName
		d.Props["insert"] = xyz(e.InsertPoint)
		d.Props["scale"] = xyz(e.Scale)
		d.Props["rotation"] = e.Rotation
		if len(e.Attributes) > 0 {
			attrs := make(map[string]any, len(e.Attributes))
			for _, a := range e.Attributes {
				attrs[a.Tag] = a.Value
			}
			d.Props["attributes"] = attrs
		}
	}
	return d
}
