package dxfreader

import (
	"strings"

	"github.com/dhamidi/cadkit/cad"
	"github.com/dhamidi/cadkit/dxf"
)

// tableKind binds a table name to its table in the document and to the
// template of its entries.
type tableKind struct {
	table    func(d *cad.Document) cad.AnyTable
	newEntry func() entryTemplater
	add      func(d *cad.Document, e cad.TableEntry) error
}

func kind[T cad.TableEntry](get func(d *cad.Document) *cad.Table[T], newEntry func() entryTemplater) tableKind {
	return tableKind{
		table:    func(d *cad.Document) cad.AnyTable { return get(d) },
		newEntry: newEntry,
		add:      func(d *cad.Document, e cad.TableEntry) error { return get(d).Add(e.(T)) },
	}
}

var tableKinds = map[string]tableKind{
	cad.TableAppId:          kind(func(d *cad.Document) *cad.Table[*cad.AppId] { return d.AppIds }, newAppIdTemplate),
	cad.TableBlockRecord:    kind(func(d *cad.Document) *cad.Table[*cad.BlockRecord] { return d.BlockRecords }, newBlockRecordTemplate),
	cad.TableVPort:          kind(func(d *cad.Document) *cad.Table[*cad.VPort] { return d.VPorts }, newVPortTemplate),
	cad.TableLineType:       kind(func(d *cad.Document) *cad.Table[*cad.LineType] { return d.LineTypes }, newLineTypeTemplate),
	cad.TableLayer:          kind(func(d *cad.Document) *cad.Table[*cad.Layer] { return d.Layers }, newLayerTemplate),
	cad.TableTextStyle:      kind(func(d *cad.Document) *cad.Table[*cad.TextStyle] { return d.TextStyles }, newTextStyleTemplate),
	cad.TableView:           kind(func(d *cad.Document) *cad.Table[*cad.View] { return d.Views }, newViewTemplate),
	cad.TableUCS:            kind(func(d *cad.Document) *cad.Table[*cad.UCS] { return d.UCSs }, newUCSTemplate),
	cad.TableDimensionStyle: kind(func(d *cad.Document) *cad.Table[*cad.DimensionStyle] { return d.DimensionStyles }, newDimensionStyleTemplate),
}

// readTables reads the TABLES section. The cursor starts on the record
// after the section name and is left on ENDSEC.
func readTables(s *stream) {
	for s.ok() && !s.at(dxf.CodeStart, dxf.TokenEndSec) {
		if !s.at(dxf.CodeStart, dxf.TokenTable) {
			s.fail(ErrUnexpectedToken, "expected TABLE or ENDSEC")
			return
		}
		readTable(s)
		if !s.ok() {
			return
		}
		// readTable leaves the cursor on ENDTAB.
		s.next()
		if !s.at(dxf.CodeStart, dxf.TokenTable) && !s.at(dxf.CodeStart, dxf.TokenEndSec) {
			s.fail(ErrUnexpectedToken, "expected TABLE or ENDSEC after ENDTAB")
			return
		}
	}
}

func readTable(s *stream) {
	line := s.rec.Line
	s.next()
	if s.rec.Code != dxf.CodeName {
		s.fail(ErrUnexpectedToken, "expected table name")
		return
	}
	name, handle, owner := s.readCommonObjectData()
	if !s.ok() {
		return
	}
	k, ok := tableKinds[strings.ToUpper(name)]
	if !ok {
		s.err = &FormatError{Line: line, Token: name, Msg: "read table", Err: ErrUnknownTable}
		return
	}

	table := k.table(s.b.doc)
	if handle != 0 {
		table.SetHandle(handle)
	}
	t := newTableTemplate(table)
	t.owner = owner
	t.line = line
	readTableHeader(s, t)
	if !s.ok() {
		return
	}
	if err := s.b.register(t); err != nil {
		s.err = err
		return
	}

	for s.ok() && !s.at(dxf.CodeStart, dxf.TokenEndTab) {
		readEntry(s, k, table)
	}
	if s.ok() && t.entries != 0 && t.entries < table.Len() {
		s.notify(NotificationInfo, "table %s declares %d entries but has %d", table.Name(), t.entries, table.Len())
	}
}

// readTableHeader reads the fields of the table object up to its first
// entry.
func readTableHeader(s *stream, t *tableTemplate) {
	for s.ok() && !s.atStart() {
		switch s.rec.Code {
		case dxf.CodeSubclass:
			if s.rec.Token() == dxf.SubclassDimStyleTable {
				// 71 and 340 list the dimension styles again.
				s.skipObject()
				return
			}
		case dxf.CodeFlags:
			t.entries = (value{rec: s.rec, s: s}).int()
		case dxf.CodeControlString:
			s.skipGroup()
		default:
			if s.rec.Code < 1000 {
				s.warn("unhandled dxf code %d in table %s", s.rec.Code, t.table.Name())
			}
		}
		s.next()
	}
}

func readEntry(s *stream, k tableKind, table cad.AnyTable) {
	line := s.rec.Line
	if kindName := s.rec.Token(); !strings.EqualFold(kindName, table.Name()) {
		s.fail(ErrUnexpectedToken, "%s entry in table %s", kindName, table.Name())
		return
	}
	t := k.newEntry()
	kindName, handle, owner := s.readCommonObjectData()
	seen := readFields(s, kindName, t)
	if !s.ok() {
		return
	}
	expectMarkers(s, kindName, line, seen, dxf.SubclassTableRecord)

	base := t.base()
	base.obj.SetHandle(handle)
	base.owner = owner
	base.line = line
	if err := s.b.register(t); err != nil {
		s.err = err
		return
	}
	if err := k.add(s.b.doc, t.tableEntry()); err != nil {
		s.err = &FormatError{Line: line, Token: t.tableEntry().Name(), Msg: "add " + kindName, Err: err}
	}
}
