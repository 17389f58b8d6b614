package dxfreader

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dhamidi/cadkit/cad"
	"github.com/dhamidi/cadkit/dxf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadStreamEmpty(t *testing.T) {
	t.Run("no records", func(t *testing.T) {
		doc, _, err := read(t)
		require.NoError(t, err)
		assert.Empty(t, doc.Entities())
	})

	t.Run("only EOF", func(t *testing.T) {
		doc, _, err := read(t, dxf.Pairs(0, "EOF"))
		require.NoError(t, err)
		assert.Equal(t, 0, doc.Layers.Len())
	})
}

func TestTwoLayersAndInsert(t *testing.T) {
	doc, rec, err := read(t,
		standardTables(),
		section("BLOCKS",
			block("1B", "1F", "*Model_Space"),
			block("21", "20", "DOOR",
				entity("LINE", "22", "20", 100, "AcDbLine", 10, 0.0, 20, 0.0, 30, 0.0, 11, 1.0, 21, 2.0, 31, 0.0),
			),
		),
		section("ENTITIES",
			entity("INSERT", "30", "1F", 8, "Dim", 280, 3, 341, "17",
				100, "AcDbBlockReference", 2, "DOOR", 10, 5.0, 20, 6.0, 30, 0.0),
		),
		dxf.Pairs(0, "EOF"),
	)
	require.NoError(t, err)
	assert.Empty(t, rec.of(NotificationWarning))

	require.Equal(t, 2, doc.Layers.Len())
	for _, tc := range []struct {
		name   string
		handle cad.Handle
	}{
		{"0", 0x10},
		{"Dim", 0x11},
	} {
		byName, ok := doc.Layers.Get(tc.name)
		require.True(t, ok, tc.name)
		byHandle, ok := doc.Layers.GetByHandle(tc.handle)
		require.True(t, ok, tc.name)
		assert.Same(t, byName, byHandle)
	}

	dashed, ok := doc.LineTypes.Get("DASHED")
	require.True(t, ok)

	require.Len(t, doc.Entities(), 1)
	insert, ok := doc.Entities()[0].(*cad.Insert)
	require.True(t, ok)
	assert.Same(t, dashed, insert.LineType)
	assert.Equal(t, "Dim", insert.LayerName())

	door, ok := doc.BlockRecords.Get("DOOR")
	require.True(t, ok)
	assert.Same(t, door.Block, insert.Block)
	assert.Equal(t, cad.XYZ{X: 5, Y: 6}, insert.InsertPoint)

	ms, ok := doc.ModelSpace()
	require.True(t, ok)
	assert.Same(t, ms, insert.Owner())
}

func TestLayerFields(t *testing.T) {
	doc, _, err := read(t, standardTables())
	require.NoError(t, err)

	dim, ok := doc.Layers.Get("dim")
	require.True(t, ok, "names compare case-insensitively")
	assert.True(t, dim.Off)
	assert.Equal(t, int16(1), dim.Color.Index())
	require.NotNil(t, dim.LineType)
	assert.Equal(t, "DASHED", dim.LineType.Name())
	assert.Same(t, doc.Layers, dim.Owner())
}

func TestForwardLineTypeReference(t *testing.T) {
	doc, rec, err := read(t,
		section("ENTITIES",
			entity("LINE", "40", "0", 280, 3, 341, "50"),
		),
		section("TABLES",
			table("LAYER", "2", layer("10", "0", 6, "LATE")),
			table("LTYPE", "5", lineType("50", "LATE")),
		),
	)
	require.NoError(t, err)
	assert.Empty(t, rec.of(NotificationWarning))

	late, ok := doc.LineTypes.Get("LATE")
	require.True(t, ok)
	line := doc.Entities()[0].(*cad.Line)
	assert.Same(t, late, line.LineType)

	zero, _ := doc.Layers.Get("0")
	assert.Same(t, late, zero.LineType)
}

func TestLineTypeFlags(t *testing.T) {
	for _, tc := range []struct {
		name   string
		fields []any
		want   string
	}{
		{"flag 0", []any{280, 0}, "ByLayer"},
		{"flag 1", []any{280, 1}, "ByBlock"},
		{"flag 2", []any{280, 2}, "Continuous"},
		{"flag 3", []any{280, 3, 341, "17"}, "DASHED"},
		{"flag 3 ignores name", []any{280, 3, 341, "17", 6, "Continuous"}, "DASHED"},
		{"other flag uses handle", []any{280, 9, 341, "14"}, "ByBlock"},
		{"other flag uses name", []any{280, 9, 6, "dashed"}, "DASHED"},
		{"no flag uses handle first", []any{341, "16", 6, "DASHED"}, "Continuous"},
		{"no flag uses name", []any{6, "ByBlock"}, "ByBlock"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			doc, rec, err := read(t,
				standardTables(),
				standardBlocks(),
				section("ENTITIES", entity("POINT", "40", "1F", tc.fields...)),
			)
			require.NoError(t, err)
			assert.Empty(t, rec.of(NotificationWarning))
			pt := doc.Entities()[0].(*cad.Point)
			require.NotNil(t, pt.LineType)
			assert.Equal(t, tc.want, pt.LineType.Name())
		})
	}

	t.Run("unresolved handle warns", func(t *testing.T) {
		doc, rec, err := read(t,
			standardTables(),
			standardBlocks(),
			section("ENTITIES", entity("POINT", "40", "1F", 280, 3, 341, "99")),
		)
		require.NoError(t, err)
		assert.Len(t, rec.of(NotificationWarning), 1)
		assert.Len(t, rec.warnings("could not assign the line type"), 1)
		pt := doc.Entities()[0].(*cad.Point)
		assert.Nil(t, pt.LineType)
		assert.Equal(t, cad.LineTypeByLayer, pt.LineTypeName())
	})
}

func TestBlockEntities(t *testing.T) {
	doc, rec, err := read(t,
		standardTables(),
		section("BLOCKS",
			block("21", "20", "DOOR",
				entity("LINE", "22", "20"),
				entity("CIRCLE", "23", "20", 100, "AcDbCircle", 40, 2.5),
				entity("SPLINE", "24", "20", 100, "AcDbSpline", 70, 8),
				entity("ARC", "25", "20", 100, "AcDbCircle", 40, 1.0, 100, "AcDbArc", 50, 0.0, 51, 90.0),
				entity("POINT", "26", "20"),
			),
		),
	)
	require.NoError(t, err)
	assert.Len(t, rec.of(NotificationNotImplemented), 1)

	door, ok := doc.BlockRecords.Get("DOOR")
	require.True(t, ok)
	var kinds []string
	for _, e := range door.Entities() {
		kinds = append(kinds, e.ObjectName())
		assert.Same(t, door, e.Owner())
	}
	assert.Equal(t, []string{"LINE", "CIRCLE", "ARC", "POINT"}, kinds)

	require.NotNil(t, door.Block)
	require.NotNil(t, door.BlockEnd)
	assert.Equal(t, "DOOR", door.Block.Name)
	assert.Same(t, door, door.Block.Record)
	assert.Equal(t, 2.5, door.Entities()[1].(*cad.Circle).Radius)
	assert.Equal(t, 90.0, door.Entities()[2].(*cad.Arc).EndAngle)

	ms, ok := doc.ModelSpace()
	require.True(t, ok)
	require.NotNil(t, ms.Block, "records without a BLOCK get default markers")
	assert.NotNil(t, ms.BlockEnd)
	assert.Len(t, rec.of(NotificationWarning), 1)
}

func TestBlockOwner(t *testing.T) {
	t.Run("by name without owner handle", func(t *testing.T) {
		doc, _, err := read(t,
			standardTables(),
			section("BLOCKS",
				dxf.Pairs(0, "BLOCK", 8, "0", 2, "DOOR", 70, 0, 10, 0.0, 20, 0.0),
				dxf.Pairs(0, "LINE", 8, "0", 10, 1.0, 20, 1.0, 11, 2.0, 21, 2.0),
				dxf.Pairs(0, "ENDBLK", 8, "0"),
			),
		)
		require.NoError(t, err)
		door, _ := doc.BlockRecords.Get("DOOR")
		require.NotNil(t, door.Block)
		assert.Len(t, door.Entities(), 1)
	})

	t.Run("missing record", func(t *testing.T) {
		_, _, err := read(t,
			standardTables(),
			section("BLOCKS", block("21", "0", "WINDOW")),
		)
		require.ErrorIs(t, err, ErrMissingOwner)
	})

	t.Run("unterminated", func(t *testing.T) {
		_, _, err := read(t,
			standardTables(),
			section("BLOCKS",
				dxf.Pairs(0, "BLOCK", 5, "21", 330, "20", 2, "DOOR"),
				entity("LINE", "22", "20"),
			),
		)
		require.ErrorIs(t, err, ErrUnexpectedToken)
	})
}

func TestInsertAttributes(t *testing.T) {
	doc, _, err := read(t,
		standardTables(),
		section("ENTITIES",
			entity("INSERT", "30", "1F", 100, "AcDbBlockReference", 66, 1, 2, "DOOR"),
			entity("ATTRIB", "31", "30", 100, "AcDbText", 1, "left", 100, "AcDbAttribute", 2, "HINGE", 70, 0),
			entity("ATTRIB", "32", "30", 100, "AcDbText", 1, "90", 100, "AcDbAttribute", 2, "ANGLE", 70, 8),
			entity("SEQEND", "33", "30"),
			entity("LINE", "34", "1F"),
		),
	)
	require.NoError(t, err)
	require.Len(t, doc.Entities(), 2)

	insert := doc.Entities()[0].(*cad.Insert)
	require.Len(t, insert.Attributes, 2)
	assert.Equal(t, "HINGE", insert.Attributes[0].Tag)
	assert.Equal(t, "left", insert.Attributes[0].Value)
	assert.Equal(t, cad.AttributeFlags(8), insert.Attributes[1].Flags)
	assert.Same(t, insert, insert.Attributes[1].Owner())
	require.NotNil(t, insert.Seqend)
	assert.Equal(t, cad.Handle(0x33), insert.Seqend.Handle())

	t.Run("missing SEQEND", func(t *testing.T) {
		_, _, err := read(t,
			standardTables(),
			section("ENTITIES",
				entity("INSERT", "30", "1F", 100, "AcDbBlockReference", 66, 1, 2, "DOOR"),
				entity("LINE", "34", "1F"),
			),
		)
		require.ErrorIs(t, err, ErrUnexpectedToken)
	})
}

func TestUnknownTable(t *testing.T) {
	records := cat(
		table("FOOTABLE", "9", layer("10", "0")),
		dxf.Pairs(0, "ENDSEC"),
	)
	doc := cad.NewDocument()
	s := &stream{r: dxf.NewRecordReader(records...), b: newBuilder(doc, func(Notification) {})}
	s.next()
	readTables(s)

	require.ErrorIs(t, s.err, ErrUnknownTable)
	var fe *FormatError
	require.True(t, errors.As(s.err, &fe))
	assert.Equal(t, "FOOTABLE", fe.Token)
	assert.Equal(t, 1, fe.Line)
	for _, tbl := range doc.Tables() {
		assert.Zero(t, tbl.Len(), tbl.Name())
		assert.True(t, tbl.Handle().IsZero(), tbl.Name())
	}

	_, _, err := read(t, section("TABLES", records[:len(records)-1]))
	require.ErrorIs(t, err, ErrUnknownTable)
}

func TestHandles(t *testing.T) {
	t.Run("assigned after the seed", func(t *testing.T) {
		doc, _, err := read(t,
			section("HEADER", dxf.Pairs(9, "$ACADVER", 1, "AC1009", 9, "$HANDSEED", 5, "100")),
			section("ENTITIES",
				dxf.Pairs(0, "LINE", 8, "0", 10, 0.0, 20, 0.0, 11, 1.0, 21, 1.0),
				dxf.Pairs(0, "CIRCLE", 8, "0", 10, 0.0, 20, 0.0, 40, 1.0),
			),
		)
		require.NoError(t, err)
		assert.Equal(t, "AC1009", doc.Header.Version)
		assert.Equal(t, cad.Handle(0x100), doc.Entities()[0].Handle())
		assert.Equal(t, cad.Handle(0x101), doc.Entities()[1].Handle())
		assert.Equal(t, cad.Handle(0x102), doc.Header.HandleSeed)
	})

	t.Run("unique across the document", func(t *testing.T) {
		doc, _, err := read(t,
			standardTables(),
			section("ENTITIES",
				entity("LINE", "40", "1F"),
				dxf.Pairs(0, "POINT", 8, "0", 10, 1.0),
			),
		)
		require.NoError(t, err)
		seen := map[cad.Handle]bool{}
		for _, o := range doc.Objects() {
			require.False(t, o.Handle().IsZero())
			require.False(t, seen[o.Handle()], o.Handle().String())
			seen[o.Handle()] = true
		}
		assert.True(t, seen[0x41])

		model, ok := doc.BlockRecords.Get("*Model_Space")
		require.True(t, ok)
		for _, marker := range []cad.Object{model.Block, model.BlockEnd} {
			require.False(t, marker.Handle().IsZero(), marker.ObjectName())
			got, ok := doc.GetObject(marker.Handle())
			require.True(t, ok)
			assert.Same(t, marker, got)
			assert.Less(t, uint64(marker.Handle()), uint64(doc.Header.HandleSeed))
		}
	})

	t.Run("duplicate is fatal", func(t *testing.T) {
		_, _, err := read(t, section("TABLES",
			table("LAYER", "2", layer("10", "0"), layer("10", "Dim")),
		))
		require.ErrorIs(t, err, cad.ErrDuplicateHandle)
	})
}

func TestEntryNames(t *testing.T) {
	t.Run("duplicate", func(t *testing.T) {
		_, _, err := read(t, section("TABLES",
			table("LAYER", "2", layer("10", "Dim"), layer("11", "DIM")),
		))
		require.ErrorIs(t, err, cad.ErrDuplicateName)
	})

	t.Run("empty", func(t *testing.T) {
		_, _, err := read(t, section("TABLES",
			table("LAYER", "2", layer("10", "")),
		))
		require.ErrorIs(t, err, cad.ErrEmptyName)
	})
}

func TestFormatErrors(t *testing.T) {
	for _, tc := range []struct {
		name    string
		records []dxf.Record
		want    error
		line    int
	}{
		{
			name:    "entry kind does not match table",
			records: section("TABLES", table("LAYER", "2", entity("LINE", "10", "2"))),
			want:    ErrUnexpectedToken,
		},
		{
			name:    "invalid integer",
			records: section("TABLES", table("LAYER", "2", layer("10", "0", 62, "red"))),
			want:    ErrInvalidValue,
			line:    31,
		},
		{
			name:    "missing ENDSEC",
			records: dxf.Pairs(0, "SECTION", 2, "ENTITIES", 0, "LINE", 8, "0"),
			want:    ErrUnexpectedEOF,
		},
		{
			name:    "token at section level",
			records: dxf.Pairs(0, "LINE"),
			want:    ErrUnexpectedToken,
		},
		{
			name:    "missing entry owner",
			records: section("TABLES", table("LAYER", "2", entry("LAYER", "10", "FF", "AcDbLayerTableRecord", "0"))),
			want:    ErrMissingOwner,
		},
		{
			name: "garbage after ENDTAB",
			records: section("TABLES",
				table("LAYER", "2"),
				dxf.Pairs(0, "LINE"),
			),
			want: ErrUnexpectedToken,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			doc, _, err := read(t, tc.records)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, doc)
			if tc.line > 0 {
				var fe *FormatError
				require.True(t, errors.As(err, &fe))
				assert.Equal(t, tc.line, fe.Line)
			}
		})
	}
}

func TestNotifications(t *testing.T) {
	doc, rec, err := read(t,
		section("CLASSES", dxf.Pairs(0, "CLASS", 1, "ACDBDICTIONARYWDFLT")),
		standardTables(),
		standardBlocks(),
		section("ENTITIES",
			entity("LINE", "40", "1F", 8, "Nowhere", 75, 3, 1001, "ACAD", 1000, "xdata"),
			entity("CIRCLE", "41", "1F", 100, "AcDbFancyCircle", 40, 1.0),
		),
	)
	require.NoError(t, err)

	assert.Len(t, rec.of(NotificationInfo), 1)
	assert.Len(t, rec.of(NotificationNotImplemented), 1)
	warnings := rec.of(NotificationWarning)
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0].Message, "unhandled dxf code 75")
	assert.Contains(t, warnings[1].Message, "Nowhere")

	line := doc.Entities()[0].(*cad.Line)
	assert.Nil(t, line.Layer)
	assert.Equal(t, "0", line.LayerName())
}

func TestR12Fields(t *testing.T) {
	doc, rec, err := read(t, section("ENTITIES",
		dxf.Pairs(0, "LINE", 62, 3, 10, 1.0, 20, 2.0, 30, 3.0, 11, 4.0, 21, 5.0, 31, 6.0),
	))
	require.NoError(t, err)
	assert.Empty(t, rec.notes)
	line := doc.Entities()[0].(*cad.Line)
	assert.Equal(t, cad.XYZ{X: 1, Y: 2, Z: 3}, line.Start)
	assert.Equal(t, cad.XYZ{X: 4, Y: 5, Z: 6}, line.End)
	assert.Equal(t, int16(3), line.Color.Index())
}

func TestBookColor(t *testing.T) {
	doc, rec, err := read(t,
		standardTables(),
		standardBlocks(),
		section("ENTITIES",
			entity("LINE", "40", "1F", 62, 1, 342, "60"),
			entity("LINE", "41", "1F", 62, 1, 430, "PANTONE$RED"),
		),
		section("OBJECTS",
			dxf.Pairs(0, "DICTIONARY", 5, "C", 330, "0", 100, "AcDbDictionary"),
			dxf.Pairs(0, "DBCOLOR", 5, "60", 330, "0", 100, "AcDbColor", 62, 5, 420, 0x00FF00, 430, "GREEN"),
		),
	)
	require.NoError(t, err)
	assert.Empty(t, rec.of(NotificationWarning))
	require.Len(t, doc.BookColors(), 1)

	book := doc.BookColors()[0]
	assert.Equal(t, "GREEN", book.Name)
	assert.Equal(t, book.Color, cad.Base(doc.Entities()[0]).Color)

	named := cad.Base(doc.Entities()[1])
	assert.Equal(t, int16(1), named.Color.Index())
	assert.Equal(t, "PANTONE$RED", named.ColorName)
}

func TestComments(t *testing.T) {
	comment := dxf.Pairs(999, "written by hand")
	doc, rec, err := read(t,
		section("HEADER", comment, dxf.Pairs(9, "$ACADVER", 1, "AC1015"), comment),
		section("TABLES",
			comment,
			cat(
				dxf.Pairs(0, "TABLE", 2, "LAYER", 5, "2", 330, "0", 100, "AcDbSymbolTable", 70, 1),
				layer("10", "0", 62, 7),
				comment,
				dxf.Pairs(0, "ENDTAB"),
			),
			comment,
		),
	)
	require.NoError(t, err)
	assert.Empty(t, rec.of(NotificationWarning))
	assert.Equal(t, "AC1015", doc.Header.Version)
	assert.Equal(t, 1, doc.Layers.Len())
}

func TestUnresolvedBookColor(t *testing.T) {
	doc, rec, err := read(t,
		standardTables(),
		standardBlocks(),
		section("ENTITIES", entity("LINE", "40", "1F", 62, 3, 342, "99")),
	)
	require.NoError(t, err)
	require.Len(t, rec.warnings("could not assign the color 99"), 1)
	assert.Len(t, rec.of(NotificationWarning), 1)

	line := cad.Base(doc.Entities()[0])
	assert.Equal(t, int16(3), line.Color.Index())
	assert.False(t, line.Color.IsTrueColor())
}

func TestTextStyleReferences(t *testing.T) {
	doc, rec, err := read(t,
		section("TABLES",
			table("LAYER", "2", layer("10", "0")),
			table("STYLE", "3", entry("STYLE", "11", "3", "AcDbTextStyleTableRecord", "Standard", 40, 0.0, 41, 1.0, 3, "txt")),
			table("DIMSTYLE", "A",
				entry("DIMSTYLE", "27", "A", "AcDbDimStyleTableRecord", "ISO-25", 3, "mm", 41, 2.5, 140, 3.5, 340, "11"),
			),
			table("LTYPE", "5", entry("LTYPE", "17", "5", "AcDbLinetypeTableRecord", "GAS", 3, "Gas line", 72, 65, 73, 2, 40, 1.5,
				49, 1.0, 74, 0, 49, -0.5, 74, 2, 75, 0, 340, "11", 46, 0.1, 50, 0.0, 44, -0.1, 45, -0.05, 9, "GAS")),
		),
		section("ENTITIES",
			entity("TEXT", "40", "0", 100, "AcDbText", 1, "hello", 40, 2.0, 7, "standard"),
			entity("TEXT", "41", "0", 100, "AcDbText", 1, "lost", 7, "Missing"),
		),
	)
	require.NoError(t, err)
	require.Len(t, rec.of(NotificationWarning), 1)

	style, _ := doc.TextStyles.Get("Standard")
	dim, _ := doc.DimensionStyles.Get("ISO-25")
	assert.Same(t, style, dim.TextStyle)
	assert.Equal(t, "mm", dim.PostFix)

	gas, _ := doc.LineTypes.Get("GAS")
	require.Len(t, gas.Segments, 2)
	assert.Nil(t, gas.Segments[0].Style)
	assert.Same(t, style, gas.Segments[1].Style)
	assert.Equal(t, "GAS", gas.Segments[1].Text)

	text := doc.Entities()[0].(*cad.Text)
	assert.Same(t, style, text.Style)
	assert.Nil(t, doc.Entities()[1].(*cad.Text).Style)
}

func TestParseText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dxf.WriteText(&buf, cat(standardTables(), dxf.Pairs(0, "EOF"))))
	doc, err := Parse(&buf, OnNotification(func(Notification) {}))
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Layers.Len())

	t.Run("file name in errors", func(t *testing.T) {
		var bad bytes.Buffer
		require.NoError(t, dxf.WriteText(&bad, dxf.Pairs(0, "SECTION", 2, "TABLES", 0, "TABLE", 2, "FOOTABLE", 0, "ENDTAB", 0, "ENDSEC")))
		path := filepath.Join(t.TempDir(), "bad.dxf")
		require.NoError(t, os.WriteFile(path, bad.Bytes(), 0o644))

		_, err := ParseFile(path, OnNotification(func(Notification) {}))
		var fe *FormatError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, path, fe.File)
		assert.Contains(t, err.Error(), "bad.dxf:5:")
	})
}
