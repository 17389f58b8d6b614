package cad

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentRegister(t *testing.T) {
	doc := NewDocument()
	line := NewLine()

	require.ErrorIs(t, doc.Register(line), ErrInvalidHandle)

	line.SetHandle(0x30)
	require.NoError(t, doc.Register(line))
	require.NoError(t, doc.Register(line), "registering the same object twice is harmless")

	other := NewCircle()
	other.SetHandle(0x30)
	require.ErrorIs(t, doc.Register(other), ErrDuplicateHandle)

	other.SetHandle(0x2F)
	require.NoError(t, doc.Register(other))

	got, ok := GetObjectAs[*Line](doc, 0x30)
	require.True(t, ok)
	assert.Same(t, line, got)
	_, ok = GetObjectAs[*Line](doc, 0x2F)
	assert.False(t, ok)

	objs := doc.Objects()
	require.Len(t, objs, 2)
	assert.Equal(t, Handle(0x2F), objs[0].Handle())
}

func TestDocumentTables(t *testing.T) {
	doc := NewDocument()
	var names []string
	for _, tbl := range doc.Tables() {
		names = append(names, tbl.Name())
	}
	assert.Equal(t, []string{"VPORT", "LTYPE", "LAYER", "STYLE", "VIEW", "UCS", "APPID", "DIMSTYLE", "BLOCK_RECORD"}, names)

	tbl, ok := doc.Table(TableLayer)
	require.True(t, ok)
	assert.Same(t, doc.Layers, tbl)
}

func TestEntityDefaults(t *testing.T) {
	line := NewLine()
	assert.Equal(t, "0", line.LayerName())
	assert.Equal(t, LineTypeByLayer, line.LineTypeName())
	assert.True(t, line.Color.IsByLayer())
	assert.Equal(t, 1.0, line.LineTypeScale)

	ms := NewBlockRecord()
	require.NoError(t, ms.SetName("*MODEL_SPACE"))
	assert.True(t, ms.IsModelSpace())
	ms.AddEntity(line)
	assert.Same(t, ms, line.Owner())
	assert.Len(t, ms.Entities(), 1)
}

func TestColor(t *testing.T) {
	assert.Equal(t, int16(3), ColorFromIndex(-3).Index())
	assert.Equal(t, int16(math.MaxInt16), ColorFromIndex(math.MinInt16).Index())
	assert.True(t, ColorByBlock.IsByBlock())
	c := ColorFromRGB(0x102030)
	assert.True(t, c.IsTrueColor())
	r, g, b := c.RGB()
	assert.Equal(t, []uint8{0x10, 0x20, 0x30}, []uint8{r, g, b})
	assert.Equal(t, "#102030", c.String())
}
