package render

import "github.com/andaru/sbmlbind/attr"

// FillRule selects the rule deciding the inside of a filled shape.
type FillRule int

const (
	FillRuleNonZero FillRule = iota
	FillRuleEvenOdd
	FillRuleInherit
	FillRuleInvalid
)

// FontWeight is the weight of text.
type FontWeight int

const (
	FontWeightBold FontWeight = iota
	FontWeightNormal
	FontWeightInvalid
)

// FontStyle is the style of text.
type FontStyle int

const (
	FontStyleItalic FontStyle = iota
	FontStyleNormal
	FontStyleInvalid
)

// HTextAnchor is the horizontal anchor of text.
type HTextAnchor int

const (
	HTextAnchorStart HTextAnchor = iota
	HTextAnchorMiddle
	HTextAnchorEnd
	HTextAnchorInvalid
)

// VTextAnchor is the vertical anchor of text.
type VTextAnchor int

const (
	VTextAnchorTop VTextAnchor = iota
	VTextAnchorMiddle
	VTextAnchorBottom
	VTextAnchorBaseline
	VTextAnchorInvalid
)

// SpreadMethod selects how a gradient fills the area outside its vector.
type SpreadMethod int

const (
	SpreadMethodPad SpreadMethod = iota
	SpreadMethodReflect
	SpreadMethodRepeat
	SpreadMethodInvalid
)

var (
	fillRuleTable     = attr.NewEnumTable("FillRule", "nonzero", "evenodd", "inherit")
	fontWeightTable   = attr.NewEnumTable("FontWeight", "bold", "normal")
	fontStyleTable    = attr.NewEnumTable("FontStyle", "italic", "normal")
	hTextAnchorTable  = attr.NewEnumTable("HTextAnchor", "start", "middle", "end")
	vTextAnchorTable  = attr.NewEnumTable("VTextAnchor", "top", "middle", "bottom", "baseline")
	spreadMethodTable = attr.NewEnumTable("SpreadMethod", "pad", "reflect", "repeat")
)

func (FillRule) Table() *attr.EnumTable     { return fillRuleTable }
func (FontWeight) Table() *attr.EnumTable   { return fontWeightTable }
func (FontStyle) Table() *attr.EnumTable    { return fontStyleTable }
func (HTextAnchor) Table() *attr.EnumTable  { return hTextAnchorTable }
func (VTextAnchor) Table() *attr.EnumTable  { return vTextAnchorTable }
func (SpreadMethod) Table() *attr.EnumTable { return spreadMethodTable }

func (e FillRule) String() string     { return fillRuleTable.ToString(int(e)) }
func (e FontWeight) String() string   { return fontWeightTable.ToString(int(e)) }
func (e FontStyle) String() string    { return fontStyleTable.ToString(int(e)) }
func (e HTextAnchor) String() string  { return hTextAnchorTable.ToString(int(e)) }
func (e VTextAnchor) String() string  { return vTextAnchorTable.ToString(int(e)) }
func (e SpreadMethod) String() string { return spreadMethodTable.ToString(int(e)) }
