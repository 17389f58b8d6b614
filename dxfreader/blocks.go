package dxfreader

import (
	"github.com/dhamidi/cadkit/cad"
	"github.com/dhamidi/cadkit/dxf"
)

// readBlocks reads the BLOCKS section into the block records of the
// BLOCK_RECORD table.
func readBlocks(s *stream) {
	for s.ok() && !s.at(dxf.CodeStart, dxf.TokenEndSec) {
		if !s.at(dxf.CodeStart, dxf.TokenBlock) {
			s.fail(ErrUnexpectedToken, "expected BLOCK or ENDSEC")
			return
		}
		readBlock(s)
	}
}

func readBlock(s *stream) {
	line := s.rec.Line
	t := newBlockTemplate()
	if !readObject(s, dxf.TokenBlock, t, dxf.SubclassEntity, dxf.SubclassBlockBegin) {
		return
	}
	blk := t.block

	record := blockOwner(s, t.owner, blk.Name)
	if record == nil {
		s.err = &FormatError{Line: line, Token: blk.Name, Msg: "block record not found", Err: ErrMissingOwner}
		return
	}
	if record.Block != nil {
		s.warn("block %q is defined more than once", blk.Name)
	}
	blk.Record = record
	blk.SetOwner(record)
	record.Block = blk

	for s.ok() && !s.at(dxf.CodeStart, dxf.TokenEndBlk) {
		if s.structural() {
			s.fail(ErrUnexpectedToken, "block %q is not terminated by ENDBLK", blk.Name)
			return
		}
		if e := readEntity(s); e != nil {
			record.AddEntity(e.entityObject())
		}
	}
	if !s.ok() {
		return
	}

	end := newBlockEndTemplate()
	if !readObject(s, dxf.TokenEndBlk, end, dxf.SubclassEntity, dxf.SubclassBlockEnd) {
		return
	}
	end.end.Record = record
	end.end.SetOwner(record)
	record.BlockEnd = end.end
}

// blockOwner finds the record a block belongs to: by the owner handle the
// block carries, or by its name when the file has no owner handles.
func blockOwner(s *stream, owner cad.Handle, name string) *cad.BlockRecord {
	if owner != 0 {
		if r, ok := objectAs[*cad.BlockRecord](s.b, owner); ok {
			return r
		}
		return nil
	}
	if r, ok := s.b.doc.BlockRecords.Get(name); ok {
		return r
	}
	return nil
}
