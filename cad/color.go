package cad

import (
	"fmt"
	"math"
)

const (
	indexByBlock = 0
	indexByLayer = 256
)

// Color is either an AutoCAD color index (ACI) or a 24-bit true color.
// The zero value is ByBlock; entities start out ByLayer.
type Color struct {
	index  int16
	rgb    uint32
	isTrue bool
}

var (
	ColorByBlock = Color{index: indexByBlock}
	ColorByLayer = Color{index: indexByLayer}
)

// ColorFromIndex returns an indexed color. Negative indices, which layers
// use to mark themselves off, are folded to their absolute value;
// math.MinInt16 has none and becomes math.MaxInt16.
func ColorFromIndex(i int16) Color {
	switch {
	case i == math.MinInt16:
		i = math.MaxInt16
	case i < 0:
		i = -i
	}
	return Color{index: i}
}

// ColorFromRGB decodes the 0x00RRGGBB integer stored in group code 420.
func ColorFromRGB(v uint32) Color {
	return Color{rgb: v & 0xFFFFFF, isTrue: true}
}

func (c Color) Index() int16      { return c.index }
func (c Color) IsTrueColor() bool { return c.isTrue }
func (c Color) IsByLayer() bool   { return !c.isTrue && c.index == indexByLayer }
func (c Color) IsByBlock() bool   { return !c.isTrue && c.index == indexByBlock }

func (c Color) RGB() (r, g, b uint8) {
	return uint8(c.rgb >> 16), uint8(c.rgb >> 8), uint8(c.rgb)
}

func (c Color) String() string {
	switch {
	case c.isTrue:
		r, g, b := c.RGB()
		return fmt.Sprintf("#%02X%02X%02X", r, g, b)
	case c.index == indexByLayer:
		return "ByLayer"
	case c.index == indexByBlock:
		return "ByBlock"
	default:
		return fmt.Sprintf("%d", c.index)
	}
}

// BookColor is a named color stored as a DBCOLOR object. Entities reference
// it by handle.
type BookColor struct {
	ObjectBase
	Name  string
	Color Color
}

func (*BookColor) ObjectName() string { return "DBCOLOR" }
