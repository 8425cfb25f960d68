package sbmlerr

// Diagnostic codes of SBGN-ML.
const (
	SbgnUnknown              Code = 30010100
	SbgnNSUndeclared         Code = 30010101
	SbgnElementNotInNs       Code = 30010102
	SbgnDuplicateComponentId Code = 30010301
	SbgnIdSyntaxRule         Code = 30010302

	SbgnGlyphAllowedCoreAttributes            Code = 30020101
	SbgnGlyphAllowedElements                  Code = 30020102
	SbgnGlyphAllowedAttributes                Code = 30020103
	SbgnGlyphClassMustBeGlyphClassEnum        Code = 30020104
	SbgnGlyphOrientationMustBeOrientationEnum Code = 30020105
	SbgnGlyphOneBbox                          Code = 30020106

	SbgnLabelAllowedCoreAttributes Code = 30020201
	SbgnLabelAllowedElements       Code = 30020202
	SbgnLabelAllowedAttributes     Code = 30020203
	SbgnLabelTextMustBeString      Code = 30020204

	SbgnBboxAllowedCoreAttributes Code = 30020301
	SbgnBboxAllowedElements       Code = 30020302
	SbgnBboxAllowedAttributes     Code = 30020303
	SbgnBboxAttributeMustBeDouble Code = 30020304
)

const sbgnRef = "SBGN-ML 0.3 Section"

var sbgnTable = []Entry{
	entry(SbgnUnknown, CategoryInternal, SeverityError,
		"Unknown error from SBGN-ML",
		"Unknown error from SBGN-ML"),
	entry(SbgnNSUndeclared, CategoryGeneralConsistency, SeverityError,
		"The SBGN-ML namespace is not correctly declared.",
		"An SBGN-ML document must declare 'http://sbgn.org/libsbgn/0.3' as the XMLNamespace to use for its elements.",
		sbgnRef+" 2"),
	entry(SbgnElementNotInNs, CategoryGeneralConsistency, SeverityError,
		"Element not in SBGN-ML namespace",
		"Wherever they appear in an SBGN-ML document, elements from SBGN-ML must use the SBGN-ML namespace.",
		sbgnRef+" 2"),
	entry(SbgnDuplicateComponentId, CategoryIdentifierConsistency, SeverityError,
		"Duplicate 'id' attribute value",
		"The value of the attribute 'id' on every SBGN-ML object must be unique across the document.",
		sbgnRef+" 2"),
	entry(SbgnIdSyntaxRule, CategoryIdentifierConsistency, SeverityError,
		"Invalid id syntax",
		"The value of an 'id' attribute must conform to the syntax of the XML Type ID.",
		sbgnRef+" 2"),
	entry(SbgnGlyphAllowedCoreAttributes, CategorySchema, SeverityError,
		"Core attributes allowed on <glyph>.",
		"No core attributes are permitted on a <glyph>.",
		sbgnRef+" 2.3"),
	entry(SbgnGlyphAllowedElements, CategorySchema, SeverityError,
		"Elements allowed on <glyph>.",
		"A <glyph> object must contain one <bbox> and may contain one <label> and any number of nested <glyph> elements. No other elements are permitted inside a <glyph> object.",
		sbgnRef+" 2.3"),
	entry(SbgnGlyphAllowedAttributes, CategorySchema, SeverityError,
		"Attributes allowed on <glyph>.",
		"A <glyph> object must have the required attributes 'id' and 'class', and may have the optional attribute 'orientation'. No other attributes are permitted on a <glyph> object.",
		sbgnRef+" 2.3"),
	entry(SbgnGlyphClassMustBeGlyphClassEnum, CategorySchema, SeverityError,
		"The 'class' attribute must be GlyphClassEnum.",
		"The value of the attribute 'class' of a <glyph> object must be one of the glyph classes defined by SBGN-ML.",
		sbgnRef+" 2.3"),
	entry(SbgnGlyphOrientationMustBeOrientationEnum, CategorySchema, SeverityError,
		"The 'orientation' attribute must be OrientationEnum.",
		"The value of the attribute 'orientation' of a <glyph> object must be one of the following: 'horizontal', 'vertical', 'left', 'right', 'up' or 'down'.",
		sbgnRef+" 2.3"),
	entry(SbgnGlyphOneBbox, CategorySchema, SeverityError,
		"A <glyph> must have one <bbox>.",
		"A <glyph> object must contain one and only one <bbox> element.",
		sbgnRef+" 2.3"),
	entry(SbgnLabelAllowedCoreAttributes, CategorySchema, SeverityError,
		"Core attributes allowed on <label>.",
		"No core attributes are permitted on a <label>.",
		sbgnRef+" 2.4"),
	entry(SbgnLabelAllowedElements, CategorySchema, SeverityError,
		"Elements allowed on <label>.",
		"A <label> object may contain one <bbox>. No other elements are permitted inside a <label> object.",
		sbgnRef+" 2.4"),
	entry(SbgnLabelAllowedAttributes, CategorySchema, SeverityError,
		"Attributes allowed on <label>.",
		"A <label> object must have the required attribute 'text'. No other attributes are permitted on a <label> object.",
		sbgnRef+" 2.4"),
	entry(SbgnLabelTextMustBeString, CategorySchema, SeverityError,
		"The 'text' attribute must be String.",
		"The attribute 'text' on a <label> must have a non-empty value of data type 'string'.",
		sbgnRef+" 2.4"),
	entry(SbgnBboxAllowedCoreAttributes, CategorySchema, SeverityError,
		"Core attributes allowed on <bbox>.",
		"No core attributes are permitted on a <bbox>.",
		sbgnRef+" 2.5"),
	entry(SbgnBboxAllowedElements, CategorySchema, SeverityError,
		"Elements allowed on <bbox>.",
		"A <bbox> object may not contain child elements.",
		sbgnRef+" 2.5"),
	entry(SbgnBboxAllowedAttributes, CategorySchema, SeverityError,
		"Attributes allowed on <bbox>.",
		"A <bbox> object must have the required attributes 'x', 'y', 'w' and 'h'. No other attributes are permitted on a <bbox> object.",
		sbgnRef+" 2.5"),
	entry(SbgnBboxAttributeMustBeDouble, CategorySchema, SeverityError,
		"The position attributes of a <bbox> must be Double.",
		"The attributes 'x', 'y', 'w' and 'h' of a <bbox> object must have values of data type 'float'.",
		sbgnRef+" 2.5"),
}
