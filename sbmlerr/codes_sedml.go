package sbmlerr

// Diagnostic codes of SED-ML.
const (
	SedmlUnknown              Code = 20010100
	SedmlNSUndeclared         Code = 20010101
	SedmlElementNotInNs       Code = 20010102
	SedmlDuplicateComponentId Code = 20010301
	SedmlIdSyntaxRule         Code = 20010302
	SedmlInvalidMetaidSyntax  Code = 20010307

	SedmlSedModelAllowedCoreAttributes          Code = 20020101
	SedmlSedModelAllowedElements                Code = 20020102
	SedmlSedModelAllowedAttributes              Code = 20020103
	SedmlSedModelLanguageMustBeString           Code = 20020104
	SedmlSedModelSourceMustBeString             Code = 20020105
	SedmlSedModelNameMustBeString               Code = 20020106
	SedmlSedModelLOChangesAllowedCoreElements   Code = 20020107
	SedmlSedModelLOChangesAllowedCoreAttributes Code = 20020108

	SedmlChangeAttributeAllowedCoreAttributes Code = 20020201
	SedmlChangeAttributeAllowedElements       Code = 20020202
	SedmlChangeAttributeAllowedAttributes     Code = 20020203
	SedmlChangeAttributeTargetMustBeString    Code = 20020204
	SedmlChangeAttributeNewValueMustBeString  Code = 20020205
)

const sedmlRef = "SED-ML L1V3 Section"

var sedmlTable = []Entry{
	entry(SedmlUnknown, CategoryInternal, SeverityError,
		"Unknown error from SED-ML",
		"Unknown error from SED-ML"),
	entry(SedmlNSUndeclared, CategoryGeneralConsistency, SeverityError,
		"The SED-ML namespace is not correctly declared.",
		"To conform to the SED-ML specification, a SED-ML document must declare 'http://sed-ml.org/sed-ml/level1/version3' as the XMLNamespace to use for its elements.",
		sedmlRef+" 2.1"),
	entry(SedmlElementNotInNs, CategoryGeneralConsistency, SeverityError,
		"Element not in SED-ML namespace",
		"Wherever they appear in a SED-ML document, elements and attributes from SED-ML must use the SED-ML namespace.",
		sedmlRef+" 2.1"),
	entry(SedmlDuplicateComponentId, CategoryIdentifierConsistency, SeverityError,
		"Duplicate 'id' attribute value",
		"The value of the attribute 'id' on every SED-ML object must be unique across the document.",
		sedmlRef+" 2.1.2"),
	entry(SedmlIdSyntaxRule, CategoryIdentifierConsistency, SeverityError,
		"Invalid SId syntax",
		"The value of an 'id' attribute must conform to the syntax of the SED-ML data type 'SId'.",
		sedmlRef+" 2.1.2"),
	entry(SedmlInvalidMetaidSyntax, CategoryIdentifierConsistency, SeverityError,
		"Invalid syntax for a 'metaid' attribute value",
		"The value of a 'metaid' attribute must conform to the syntax of the XML Type ID.",
		sedmlRef+" 2.1.1"),
	entry(SedmlSedModelAllowedCoreAttributes, CategorySchema, SeverityError,
		"Core attributes allowed on <sedModel>.",
		"A <model> object may have the optional SED-ML attribute 'metaid'. No other core attributes are permitted on a <model>.",
		sedmlRef+" 2.4.1"),
	entry(SedmlSedModelAllowedElements, CategorySchema, SeverityError,
		"Elements allowed on <sedModel>.",
		"A <model> object may contain one and only one instance of the <listOfChanges> element. No other elements from the SED-ML namespaces are permitted inside a <model> object.",
		sedmlRef+" 2.4.1"),
	entry(SedmlSedModelAllowedAttributes, CategorySchema, SeverityError,
		"Attributes allowed on <sedModel>.",
		"A <model> object must have the required attributes 'id' and 'source', and may have the optional attributes 'name' and 'language'. No other attributes from the SED-ML namespaces are permitted on a <model> object.",
		sedmlRef+" 2.4.1"),
	entry(SedmlSedModelLanguageMustBeString, CategorySchema, SeverityError,
		"The 'language' attribute must be String.",
		"The attribute 'language' on a <model> must have a value of data type 'string'.",
		sedmlRef+" 2.4.1"),
	entry(SedmlSedModelSourceMustBeString, CategorySchema, SeverityError,
		"The 'source' attribute must be String.",
		"The attribute 'source' on a <model> must have a value of data type 'string'.",
		sedmlRef+" 2.4.1"),
	entry(SedmlSedModelNameMustBeString, CategorySchema, SeverityError,
		"The 'name' attribute must be String.",
		"The attribute 'name' on a <model> must have a value of data type 'string'.",
		sedmlRef+" 2.4.1"),
	entry(SedmlSedModelLOChangesAllowedCoreElements, CategorySchema, SeverityError,
		"Core elements allowed on <listOfChanges>.",
		"Apart from the general notes and annotations subobjects permitted on all SED-ML objects, a <listOfChanges> container object may only contain change objects.",
		sedmlRef+" 2.4.1"),
	entry(SedmlSedModelLOChangesAllowedCoreAttributes, CategorySchema, SeverityError,
		"Core attributes allowed on <listOfChanges>.",
		"A <listOfChanges> object may have the optional attributes 'metaid', 'id' and 'name'. No other attributes are permitted on a <listOfChanges> object.",
		sedmlRef+" 2.4.1"),
	entry(SedmlChangeAttributeAllowedCoreAttributes, CategorySchema, SeverityError,
		"Core attributes allowed on <changeAttribute>.",
		"A <changeAttribute> object may have the optional SED-ML attributes 'metaid', 'id' and 'name'. No other core attributes are permitted on a <changeAttribute>.",
		sedmlRef+" 2.4.2"),
	entry(SedmlChangeAttributeAllowedElements, CategorySchema, SeverityError,
		"Elements allowed on <changeAttribute>.",
		"A <changeAttribute> object may not contain child elements from the SED-ML namespace.",
		sedmlRef+" 2.4.2"),
	entry(SedmlChangeAttributeAllowedAttributes, CategorySchema, SeverityError,
		"Attributes allowed on <changeAttribute>.",
		"A <changeAttribute> object must have the required attributes 'target' and 'newValue'. No other attributes from the SED-ML namespaces are permitted on a <changeAttribute> object.",
		sedmlRef+" 2.4.2"),
	entry(SedmlChangeAttributeTargetMustBeString, CategorySchema, SeverityError,
		"The 'target' attribute must be String.",
		"The attribute 'target' on a <changeAttribute> must have a value of data type 'string'.",
		sedmlRef+" 2.4.2"),
	entry(SedmlChangeAttributeNewValueMustBeString, CategorySchema, SeverityError,
		"The 'newValue' attribute must be String.",
		"The attribute 'newValue' on a <changeAttribute> must have a value of data type 'string'.",
		sedmlRef+" 2.4.2"),
}
