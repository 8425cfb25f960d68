package sbmlerr

// Diagnostic codes of the render package.
const (
	RenderUnknown              Code = 1310100
	RenderNSUndeclared         Code = 1310101
	RenderElementNotInNs       Code = 1310102
	RenderDuplicateComponentId Code = 1310301
	RenderIdSyntaxRule         Code = 1310302

	RenderPointAllowedCoreAttributes  Code = 1320201
	RenderPointAllowedAttributes      Code = 1320202
	RenderPointAllowedElements        Code = 1320203
	RenderPointCoordinateMustBeDouble Code = 1320204

	RenderRectangleAllowedCoreAttributes   Code = 1320301
	RenderRectangleAllowedAttributes       Code = 1320302
	RenderRectangleAllowedElements         Code = 1320303
	RenderRectangleShapeMustBeRelAbsVector Code = 1320304
	RenderRectangleRatioMustBeDouble       Code = 1320305

	RenderEllipseAllowedCoreAttributes   Code = 1320401
	RenderEllipseAllowedAttributes       Code = 1320402
	RenderEllipseAllowedElements         Code = 1320403
	RenderEllipseShapeMustBeRelAbsVector Code = 1320404
	RenderEllipseRatioMustBeDouble       Code = 1320405

	RenderGraphicalPrimitive1DStrokeMustBeString          Code = 1320501
	RenderGraphicalPrimitive1DStrokeWidthMustBeDouble     Code = 1320502
	RenderGraphicalPrimitive1DStrokeDashArrayMustBeString Code = 1320503
	RenderGraphicalPrimitive2DFillMustBeString            Code = 1320601
	RenderGraphicalPrimitive2DFillRuleMustBeFillRuleEnum  Code = 1320602

	RenderDefaultValuesAllowedCoreAttributes            Code = 1320701
	RenderDefaultValuesAllowedAttributes                Code = 1320702
	RenderDefaultValuesAllowedElements                  Code = 1320703
	RenderDefaultValuesBackgroundColorMustBeString      Code = 1320704
	RenderDefaultValuesSpreadMethodMustBeEnum           Code = 1320705
	RenderDefaultValuesFillRuleMustBeFillRuleEnum       Code = 1320706
	RenderDefaultValuesStrokeWidthMustBeDouble          Code = 1320707
	RenderDefaultValuesFontSizeMustBeRelAbsVector       Code = 1320708
	RenderDefaultValuesFontWeightMustBeFontWeightEnum   Code = 1320709
	RenderDefaultValuesFontStyleMustBeFontStyleEnum     Code = 1320710
	RenderDefaultValuesTextAnchorMustBeHTextAnchorEnum  Code = 1320711
	RenderDefaultValuesVTextAnchorMustBeVTextAnchorEnum Code = 1320712
)

const renderRef = "L3V1 Render V1 Section"

var renderTable = []Entry{
	entry(RenderUnknown, CategoryInternal, SeverityError,
		"Unknown error from render",
		"Unknown error from render"),
	entry(RenderNSUndeclared, CategoryGeneralConsistency, SeverityError,
		"The render namespace is not correctly declared.",
		"To conform to the Render Package specification for SBML Level 3 Version 1, an SBML document must declare 'http://www.sbml.org/sbml/level3/version1/render/version1' as the XMLNamespace to use for elements of this package.",
		renderRef+" 3.1"),
	entry(RenderElementNotInNs, CategoryGeneralConsistency, SeverityError,
		"Element not in render namespace",
		"Wherever they appear in an SBML document, elements and attributes from the Render Package must use the 'http://www.sbml.org/sbml/level3/version1/render/version1' namespace.",
		renderRef+" 3.1"),
	entry(RenderDuplicateComponentId, CategoryIdentifierConsistency, SeverityError,
		"Duplicate 'id' attribute value",
		"(Extends validation rule #10301 in the SBML Level 3 Core specification.)",
		renderRef+" 3.2"),
	entry(RenderIdSyntaxRule, CategoryIdentifierConsistency, SeverityError,
		"Invalid SId syntax",
		"The value of a 'render:id' must conform to the syntax of the SBML data type 'SId'.",
		renderRef+" 3.2"),
	entry(RenderPointAllowedCoreAttributes, CategorySchema, SeverityError,
		"Core attributes allowed on <point>.",
		"A <point> object may have the optional SBML Level 3 Core attributes 'metaid' and 'sboTerm'. No other attributes from the SBML Level 3 Core namespaces are permitted on a <point>.",
		renderRef+" 3.9"),
	entry(RenderPointAllowedAttributes, CategorySchema, SeverityError,
		"Attributes allowed on <point>.",
		"A <point> object must have the required attributes 'x' and 'y', and may have the optional attribute 'z'. No other attributes from the SBML Level 3 Render namespaces are permitted on a <point> object.",
		renderRef+" 3.9"),
	entry(RenderPointAllowedElements, CategorySchema, SeverityError,
		"Elements allowed on <point>.",
		"A <point> object may not contain child elements.",
		renderRef+" 3.9"),
	entry(RenderPointCoordinateMustBeDouble, CategorySchema, SeverityError,
		"The coordinates of a <point> must be double.",
		"The attributes 'x', 'y' and 'z' of a <point> object must have values of data type 'double'.",
		renderRef+" 3.9"),
	entry(RenderRectangleAllowedCoreAttributes, CategorySchema, SeverityError,
		"Core attributes allowed on <rectangle>.",
		"A <rectangle> object may have the optional SBML Level 3 Core attributes 'metaid' and 'sboTerm'. No other attributes from the SBML Level 3 Core namespaces are permitted on a <rectangle>.",
		renderRef+" 3.11"),
	entry(RenderRectangleAllowedAttributes, CategorySchema, SeverityError,
		"Attributes allowed on <rectangle>.",
		"A <rectangle> object must have the required attributes 'x', 'y', 'width' and 'height', and may have the optional attributes 'z', 'rx', 'ry' and 'ratio'. No other attributes from the SBML Level 3 Render namespaces are permitted on a <rectangle> object.",
		renderRef+" 3.11"),
	entry(RenderRectangleAllowedElements, CategorySchema, SeverityError,
		"Elements allowed on <rectangle>.",
		"A <rectangle> object may not contain child elements.",
		renderRef+" 3.11"),
	entry(RenderRectangleShapeMustBeRelAbsVector, CategorySchema, SeverityError,
		"The shape attributes of a <rectangle> must be RelAbsVector.",
		"The attributes 'x', 'y', 'z', 'width', 'height', 'rx' and 'ry' of a <rectangle> object must have values of data type 'RelAbsVector'.",
		renderRef+" 3.11"),
	entry(RenderRectangleRatioMustBeDouble, CategorySchema, SeverityError,
		"The 'ratio' attribute must be Double.",
		"The attribute 'ratio' on a <rectangle> must have a value of data type 'double'.",
		renderRef+" 3.11"),
	entry(RenderEllipseAllowedCoreAttributes, CategorySchema, SeverityError,
		"Core attributes allowed on <ellipse>.",
		"An <ellipse> object may have the optional SBML Level 3 Core attributes 'metaid' and 'sboTerm'. No other attributes from the SBML Level 3 Core namespaces are permitted on an <ellipse>.",
		renderRef+" 3.12"),
	entry(RenderEllipseAllowedAttributes, CategorySchema, SeverityError,
		"Attributes allowed on <ellipse>.",
		"An <ellipse> object must have the required attributes 'cx', 'cy' and 'rx', and may have the optional attributes 'cz', 'ry' and 'ratio'. No other attributes from the SBML Level 3 Render namespaces are permitted on an <ellipse> object.",
		renderRef+" 3.12"),
	entry(RenderEllipseAllowedElements, CategorySchema, SeverityError,
		"Elements allowed on <ellipse>.",
		"An <ellipse> object may not contain child elements.",
		renderRef+" 3.12"),
	entry(RenderEllipseShapeMustBeRelAbsVector, CategorySchema, SeverityError,
		"The shape attributes of an <ellipse> must be RelAbsVector.",
		"The attributes 'cx', 'cy', 'cz', 'rx' and 'ry' of an <ellipse> object must have values of data type 'RelAbsVector'.",
		renderRef+" 3.12"),
	entry(RenderEllipseRatioMustBeDouble, CategorySchema, SeverityError,
		"The 'ratio' attribute must be Double.",
		"The attribute 'ratio' on an <ellipse> must have a value of data type 'double'.",
		renderRef+" 3.12"),
	entry(RenderGraphicalPrimitive1DStrokeMustBeString, CategorySchema, SeverityError,
		"The 'stroke' attribute must be String.",
		"The attribute 'stroke' on a <graphicalPrimitive1D> must have a value of data type 'string'.",
		renderRef+" 3.7"),
	entry(RenderGraphicalPrimitive1DStrokeWidthMustBeDouble, CategorySchema, SeverityError,
		"The 'stroke-width' attribute must be Double.",
		"The attribute 'stroke-width' on a <graphicalPrimitive1D> must have a value of data type 'double'.",
		renderRef+" 3.7"),
	entry(RenderGraphicalPrimitive1DStrokeDashArrayMustBeString, CategorySchema, SeverityError,
		"The 'stroke-dasharray' attribute must be a list of unsigned integers.",
		"The attribute 'stroke-dasharray' on a <graphicalPrimitive1D> must be a comma separated list of non-negative integers.",
		renderRef+" 3.7"),
	entry(RenderGraphicalPrimitive2DFillMustBeString, CategorySchema, SeverityError,
		"The 'fill' attribute must be String.",
		"The attribute 'fill' on a <graphicalPrimitive2D> must have a value of data type 'string'.",
		renderRef+" 3.8"),
	entry(RenderGraphicalPrimitive2DFillRuleMustBeFillRuleEnum, CategorySchema, SeverityError,
		"The 'fill-rule' attribute must be FillRuleEnum.",
		"The value of the attribute 'fill-rule' of a <graphicalPrimitive2D> object must conform to the syntax of SBML data type 'FillRule' and may only take on the allowed values of 'FillRule' defined in SBML; that is, the value must be one of the following: 'nonzero', 'evenodd' or 'inherit'.",
		renderRef+" 3.8"),
	entry(RenderDefaultValuesAllowedCoreAttributes, CategorySchema, SeverityError,
		"Core attributes allowed on <defaultValues>.",
		"A <defaultValues> object may have the optional SBML Level 3 Core attributes 'metaid' and 'sboTerm'. No other attributes from the SBML Level 3 Core namespaces are permitted on a <defaultValues>.",
		renderRef+" 3.6"),
	entry(RenderDefaultValuesAllowedAttributes, CategorySchema, SeverityError,
		"Attributes allowed on <defaultValues>.",
		"A <defaultValues> object may have the optional attributes 'backgroundColor', 'spreadMethod', 'fill', 'fill-rule', 'stroke', 'stroke-width', 'font-family', 'font-size', 'font-weight', 'font-style', 'text-anchor' and 'vtext-anchor'. No other attributes from the SBML Level 3 Render namespaces are permitted on a <defaultValues> object.",
		renderRef+" 3.6"),
	entry(RenderDefaultValuesAllowedElements, CategorySchema, SeverityError,
		"Elements allowed on <defaultValues>.",
		"A <defaultValues> object may not contain child elements.",
		renderRef+" 3.6"),
	entry(RenderDefaultValuesBackgroundColorMustBeString, CategorySchema, SeverityError,
		"The 'backgroundColor' attribute must be String.",
		"The attribute 'backgroundColor' on a <defaultValues> must have a value of data type 'string'.",
		renderRef+" 3.6"),
	entry(RenderDefaultValuesSpreadMethodMustBeEnum, CategorySchema, SeverityError,
		"The 'spreadMethod' attribute must be SpreadMethodEnum.",
		"The value of the attribute 'spreadMethod' of a <defaultValues> object must be one of the following: 'pad', 'reflect' or 'repeat'.",
		renderRef+" 3.6"),
	entry(RenderDefaultValuesFillRuleMustBeFillRuleEnum, CategorySchema, SeverityError,
		"The 'fill-rule' attribute must be FillRuleEnum.",
		"The value of the attribute 'fill-rule' of a <defaultValues> object must be one of the following: 'nonzero', 'evenodd' or 'inherit'.",
		renderRef+" 3.6"),
	entry(RenderDefaultValuesStrokeWidthMustBeDouble, CategorySchema, SeverityError,
		"The 'stroke-width' attribute must be Double.",
		"The attribute 'stroke-width' on a <defaultValues> must have a value of data type 'double'.",
		renderRef+" 3.6"),
	entry(RenderDefaultValuesFontSizeMustBeRelAbsVector, CategorySchema, SeverityError,
		"The 'font-size' attribute must be RelAbsVector.",
		"The attribute 'font-size' on a <defaultValues> must have a value of data type 'RelAbsVector'.",
		renderRef+" 3.6"),
	entry(RenderDefaultValuesFontWeightMustBeFontWeightEnum, CategorySchema, SeverityError,
		"The 'font-weight' attribute must be FontWeightEnum.",
		"The value of the attribute 'font-weight' of a <defaultValues> object must be one of the following: 'normal' or 'bold'.",
		renderRef+" 3.6"),
	entry(RenderDefaultValuesFontStyleMustBeFontStyleEnum, CategorySchema, SeverityError,
		"The 'font-style' attribute must be FontStyleEnum.",
		"The value of the attribute 'font-style' of a <defaultValues> object must be one of the following: 'normal' or 'italic'.",
		renderRef+" 3.6"),
	entry(RenderDefaultValuesTextAnchorMustBeHTextAnchorEnum, CategorySchema, SeverityError,
		"The 'text-anchor' attribute must be HTextAnchorEnum.",
		"The value of the attribute 'text-anchor' of a <defaultValues> object must be one of the following: 'start', 'middle' or 'end'.",
		renderRef+" 3.6"),
	entry(RenderDefaultValuesVTextAnchorMustBeVTextAnchorEnum, CategorySchema, SeverityError,
		"The 'vtext-anchor' attribute must be VTextAnchorEnum.",
		"The value of the attribute 'vtext-anchor' of a <defaultValues> object must be one of the following: 'top', 'middle', 'bottom' or 'baseline'.",
		renderRef+" 3.6"),
}
