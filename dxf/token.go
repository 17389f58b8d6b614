package dxf

// Structural tokens, the values of group code 0 records that delimit the
// grammar.
const (
	TokenSection = "SECTION"
	TokenEndSec  = "ENDSEC"
	TokenEOF     = "EOF"
	TokenTable   = "TABLE"
	TokenEndTab  = "ENDTAB"
	TokenBlock   = "BLOCK"
	TokenEndBlk  = "ENDBLK"
	TokenSeqend  = "SEQEND"
)

// Section names.
const (
	SectionHeader   = "HEADER"
	SectionClasses  = "CLASSES"
	SectionTables   = "TABLES"
	SectionBlocks   = "BLOCKS"
	SectionEntities = "ENTITIES"
	SectionObjects  = "OBJECTS"
)

// Subclass markers (group code 100).
const (
	SubclassEntity         = "AcDbEntity"
	SubclassBlockBegin     = "AcDbBlockBegin"
	SubclassBlockEnd       = "AcDbBlockEnd"
	SubclassTable          = "AcDbSymbolTable"
	SubclassTableRecord    = "AcDbSymbolTableRecord"
	SubclassDimStyleTable  = "AcDbDimStyleTable"
	SubclassAppId          = "AcDbRegAppTableRecord"
	SubclassBlockRecord    = "AcDbBlockTableRecord"
	SubclassVPort          = "AcDbViewportTableRecord"
	SubclassLineType       = "AcDbLinetypeTableRecord"
	SubclassLayer          = "AcDbLayerTableRecord"
	SubclassTextStyle      = "AcDbTextStyleTableRecord"
	SubclassView           = "AcDbViewTableRecord"
	SubclassUCS            = "AcDbUCSTableRecord"
	SubclassDimStyle       = "AcDbDimStyleTableRecord"
	SubclassLine           = "AcDbLine"
	SubclassPoint          = "AcDbPoint"
	SubclassCircle         = "AcDbCircle"
	SubclassArc            = "AcDbArc"
	SubclassText           = "AcDbText"
	SubclassAttribute      = "AcDbAttribute"
	SubclassAttributeDef   = "AcDbAttributeDefinition"
	SubclassBlockReference = "AcDbBlockReference"
	SubclassColor          = "AcDbColor"
)
