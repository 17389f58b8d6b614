package dxf

// Group codes with a structural or cross-reference role. Geometry codes are
// interpreted by the field tables of each object kind.
const (
	CodeStart          = 0
	CodeText           = 1
	CodeName           = 2
	CodeText2          = 3
	CodeText3          = 4
	CodeHandle         = 5
	CodeLineTypeName   = 6
	CodeTextStyleName  = 7
	CodeLayerName      = 8
	CodeVariableName   = 9
	CodeColorIndex     = 62
	CodeEntitiesFollow = 66
	CodeFlags          = 70
	CodeSubclass       = 100
	CodeControlString  = 102
	CodeDimStyleHandle = 105
	CodeSoftOwner      = 330
	CodeHardOwner      = 360
	CodeLineWeight     = 370
	CodeTrueColor      = 420
	CodeColorName      = 430
	CodeComment        = 999
)

// Handle-based references of AcDbEntity. DXF writers store these by name;
// streams decoded from binary drawings carry the handles instead.
const (
	CodeLayerHandle    = 340
	CodeLineTypeHandle = 341
	CodeColorHandle    = 342
	CodeLineTypeFlags  = 280
	CodeMaterialHandle = 347
)
