package cad

// Table kind names, as written after a TABLE record.
const (
	TableAppId          = "APPID"
	TableBlockRecord    = "BLOCK_RECORD"
	TableVPort          = "VPORT"
	TableLineType       = "LTYPE"
	TableLayer          = "LAYER"
	TableTextStyle      = "STYLE"
	TableView           = "VIEW"
	TableUCS            = "UCS"
	TableDimensionStyle = "DIMSTYLE"
)

// Names of the linetypes every drawing defines.
const (
	LineTypeByLayer    = "ByLayer"
	LineTypeByBlock    = "ByBlock"
	LineTypeContinuous = "Continuous"
)

type AppId struct {
	Entry
}

func (*AppId) ObjectName() string { return TableAppId }

type Layer struct {
	Entry
	Color           Color
	Off             bool
	LineType        *LineType
	Plot            bool
	LineWeight      int16
	PlotStyleHandle Handle
	MaterialHandle  Handle
}

func NewLayer() *Layer {
	return &Layer{Color: ColorFromIndex(7), Plot: true}
}

func (*Layer) ObjectName() string { return TableLayer }

type LineTypeSegment struct {
	Length      float64
	ShapeFlags  int16
	ShapeNumber int16
	Style       *TextStyle
	Scale       float64
	Rotation    float64
	Offset      XY
	Text        string
}

type LineType struct {
	Entry
	Description   string
	Alignment     string
	PatternLength float64
	Segments      []LineTypeSegment
}

func (*LineType) ObjectName() string { return TableLineType }

type TextStyle struct {
	Entry
	Height          float64
	WidthFactor     float64
	ObliqueAngle    float64
	MirrorFlags     int16
	LastHeight      float64
	Filename        string
	BigFontFilename string
}

func NewTextStyle() *TextStyle {
	return &TextStyle{WidthFactor: 1}
}

func (*TextStyle) ObjectName() string { return TableTextStyle }

type View struct {
	Entry
	Height        float64
	Width         float64
	Center        XY
	Direction     XYZ
	Target        XYZ
	LensLength    float64
	FrontClipping float64
	BackClipping  float64
	TwistAngle    float64
}

func (*View) ObjectName() string { return TableView }

type UCS struct {
	Entry
	Origin    XYZ
	XAxis     XYZ
	YAxis     XYZ
	Elevation float64
}

func (*UCS) ObjectName() string { return TableUCS }

type VPort struct {
	Entry
	BottomLeft   XY
	TopRight     XY
	Center       XY
	ViewHeight   float64
	AspectRatio  float64
	LensLength   float64
	SnapRotation float64
	TwistAngle   float64
}

func (*VPort) ObjectName() string { return TableVPort }

type DimensionStyle struct {
	Entry
	PostFix     string
	ScaleFactor float64
	ArrowSize   float64
	TextHeight  float64
	TextStyle   *TextStyle
}

func NewDimensionStyle() *DimensionStyle {
	return &DimensionStyle{ScaleFactor: 1}
}

func (*DimensionStyle) ObjectName() string { return TableDimensionStyle }
