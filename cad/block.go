package cad

import "strings"

const (
	ModelSpaceName = "*Model_Space"
	PaperSpaceName = "*Paper_Space"
)

type BlockFlags int16

const (
	BlockAnonymous     BlockFlags = 1
	BlockHasAttributes BlockFlags = 2
	BlockXref          BlockFlags = 4
	BlockXrefOverlay   BlockFlags = 8
	BlockExternal      BlockFlags = 16
	BlockResolved      BlockFlags = 32
	BlockReferenced    BlockFlags = 64
)

// BlockRecord is the BLOCK_RECORD table entry that owns a block's
// contents. Block and BlockEnd are the markers read from the BLOCKS
// section; they are not part of Entities.
type BlockRecord struct {
	Entry
	Block        *Block
	BlockEnd     *BlockEnd
	LayoutHandle Handle
	Units        int16
	Explodable   bool
	Scalable     bool
	entities     []Entity
}

func NewBlockRecord() *BlockRecord {
	return &BlockRecord{Explodable: true, Scalable: true}
}

func (*BlockRecord) ObjectName() string { return TableBlockRecord }

func (r *BlockRecord) Entities() []Entity { return r.entities }

// AddEntity appends e to the block's contents and makes the record its
// owner.
func (r *BlockRecord) AddEntity(e Entity) {
	r.entities = append(r.entities, e)
	e.SetOwner(r)
}

func (r *BlockRecord) IsModelSpace() bool { return strings.EqualFold(r.Name(), ModelSpaceName) }
func (r *BlockRecord) IsPaperSpace() bool {
	return strings.HasPrefix(strings.ToUpper(r.Name()), strings.ToUpper(PaperSpaceName))
}

// Block is the block-begin marker.
type Block struct {
	EntityBase
	Name        string
	Flags       BlockFlags
	BasePoint   XYZ
	XrefPath    string
	Description string
	Record      *BlockRecord
}

func NewBlock() *Block {
	b := &Block{}
	b.init()
	return b
}

func (*Block) ObjectName() string { return "BLOCK" }

// BlockEnd is the block-end marker.
type BlockEnd struct {
	EntityBase
	Record *BlockRecord
}

func NewBlockEnd() *BlockEnd {
	b := &BlockEnd{}
	b.init()
	return b
}

func (*BlockEnd) ObjectName() string { return "ENDBLK" }
