package dxfreader

import (
	"strings"
	"testing"

	"github.com/dhamidi/cadkit/cad"
	"github.com/dhamidi/cadkit/dxf"
)

func cat(parts ...[]dxf.Record) []dxf.Record {
	var out []dxf.Record
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func section(name string, body ...[]dxf.Record) []dxf.Record {
	return cat(dxf.Pairs(0, "SECTION", 2, name), cat(body...), dxf.Pairs(0, "ENDSEC"))
}

func table(name, handle string, entries ...[]dxf.Record) []dxf.Record {
	return cat(
		dxf.Pairs(0, "TABLE", 2, name, 5, handle, 330, "0", 100, "AcDbSymbolTable", 70, len(entries)),
		cat(entries...),
		dxf.Pairs(0, "ENDTAB"),
	)
}

func entry(kind, handle, owner, marker, name string, fields ...any) []dxf.Record {
	return cat(
		dxf.Pairs(0, kind, 5, handle, 330, owner,
			100, "AcDbSymbolTableRecord", 100, marker, 2, name, 70, 0),
		dxf.Pairs(fields...),
	)
}

func lineType(handle, name string) []dxf.Record {
	return entry("LTYPE", handle, "5", "AcDbLinetypeTableRecord", name, 3, "", 72, 65, 73, 0, 40, 0.0)
}

func layer(handle, name string, fields ...any) []dxf.Record {
	return entry("LAYER", handle, "2", "AcDbLayerTableRecord", name, fields...)
}

func blockRecord(handle, name string) []dxf.Record {
	return entry("BLOCK_RECORD", handle, "1", "AcDbBlockTableRecord", name)
}

func entity(kind, handle, owner string, fields ...any) []dxf.Record {
	return cat(
		dxf.Pairs(0, kind, 5, handle, 330, owner, 100, "AcDbEntity", 8, "0"),
		dxf.Pairs(fields...),
	)
}

func block(handle, owner, name string, body ...[]dxf.Record) []dxf.Record {
	return cat(
		dxf.Pairs(0, "BLOCK", 5, handle, 330, owner, 100, "AcDbEntity", 8, "0",
			100, "AcDbBlockBegin", 2, name, 70, 0, 10, 0.0, 20, 0.0, 30, 0.0, 3, name, 1, ""),
		cat(body...),
		dxf.Pairs(0, "ENDBLK", 5, handle+"0", 330, owner, 100, "AcDbEntity", 8, "0", 100, "AcDbBlockEnd"),
	)
}

// standardTables declares the linetypes every drawing has, layers "0" and
// "Dim", and the model space and DOOR block records.
func standardTables() []dxf.Record {
	return section("TABLES",
		table("LTYPE", "5",
			lineType("14", "ByBlock"),
			lineType("15", "ByLayer"),
			lineType("16", "Continuous"),
			lineType("17", "DASHED"),
		),
		table("LAYER", "2",
			layer("10", "0", 62, 7, 6, "Continuous"),
			layer("11", "Dim", 62, -1, 6, "DASHED"),
		),
		table("BLOCK_RECORD", "1",
			blockRecord("1F", "*Model_Space"),
			blockRecord("20", "DOOR"),
		),
	)
}

// standardBlocks defines the blocks of the records in standardTables.
func standardBlocks() []dxf.Record {
	return section("BLOCKS",
		block("1B", "1F", "*Model_Space"),
		block("21", "20", "DOOR", entity("LINE", "22", "20")),
	)
}

type recorder struct {
	notes []Notification
}

func (r *recorder) handle(n Notification) { r.notes = append(r.notes, n) }

func (r *recorder) of(t NotificationType) []Notification {
	var out []Notification
	for _, n := range r.notes {
		if n.Type == t {
			out = append(out, n)
		}
	}
	return out
}

// warnings returns the warnings whose message starts with prefix.
func (r *recorder) warnings(prefix string) []Notification {
	var out []Notification
	for _, n := range r.of(NotificationWarning) {
		if strings.HasPrefix(n.Message, prefix) {
			out = append(out, n)
		}
	}
	return out
}

func read(t *testing.T, records ...[]dxf.Record) (*cad.Document, *recorder, error) {
	t.Helper()
	rec := &recorder{}
	doc, err := ReadStream(dxf.NewRecordReader(cat(records...)...), OnNotification(rec.handle))
	return doc, rec, err
}
