package sbmlerr

// Diagnostic codes of the test package.
const (
	TestUnknown              Code = 9010100
	TestNSUndeclared         Code = 9010101
	TestElementNotInNs       Code = 9010102
	TestDuplicateComponentId Code = 9010301
	TestIdSyntaxRule         Code = 9010302

	TestSBasePluginAllowedAttributes   Code = 9020101
	TestSBasePluginPlugAttMustBeString Code = 9020102

	TestClassThreeAllowedCoreAttributes  Code = 9020201
	TestClassThreeAllowedAttributes      Code = 9020202
	TestClassThreeNumberMustBeNumberEnum Code = 9020203
	TestClassThreeNameMustBeString       Code = 9020204

	TestCategoryAllowedCoreAttributes        Code = 9020301
	TestCategoryAllowedAttributes            Code = 9020302
	TestCategoryAllowedElements              Code = 9020303
	TestCategoryRankMustBeNonNegativeInteger Code = 9020304
	TestCategoryNameMustBeString             Code = 9020305

	TestValueAllowedCoreAttributes Code = 9020401
	TestValueAllowedElements       Code = 9020402
)

const testRef = "Test package Version 1"

var testTable = []Entry{
	entry(TestUnknown, CategoryInternal, SeverityError,
		"Unknown error from test",
		"Unknown error from test"),
	entry(TestNSUndeclared, CategoryGeneralConsistency, SeverityError,
		"The test namespace is not correctly declared.",
		"To conform to the Test Package specification for SBML Level 3 Version 1, an SBML document must declare the use of the following XML Namespace: 'http://www.sbml.org/sbml/level3/version1/test/version1'",
		testRef+" Section 3.1"),
	entry(TestElementNotInNs, CategoryGeneralConsistency, SeverityError,
		"Element not in test namespace",
		"Wherever they appear in an SBML document, elements and attributes from the Test Package must use the 'http://www.sbml.org/sbml/level3/version1/test/version1' namespace.",
		testRef+" Section 3.1"),
	entry(TestDuplicateComponentId, CategoryIdentifierConsistency, SeverityError,
		"Duplicate 'id' attribute value",
		"(Extends validation rule #10301 in the SBML Level 3 Core specification.)",
		testRef+" Section 3.2"),
	entry(TestIdSyntaxRule, CategoryIdentifierConsistency, SeverityError,
		"Invalid SId syntax",
		"The value of a 'test:id' must conform to the syntax of the SBML data type 'SId'",
		testRef+" Section 3.2"),
	entry(TestSBasePluginAllowedAttributes, CategorySchema, SeverityError,
		"Attributes allowed on <sBase>.",
		"An SBase object may have the optional attributes 'test:plugAtt' (and, in SBML Level 3 Version 1, 'test:id'). No other attributes from the SBML Level 3 Test namespaces are permitted on an SBase object.",
		testRef+" Section 3.3"),
	entry(TestSBasePluginPlugAttMustBeString, CategorySchema, SeverityError,
		"The 'plugAtt' attribute must be String.",
		"The attribute 'test:plugAtt' on an SBase must have a value of data type 'string'.",
		testRef+" Section 3.3"),
	entry(TestClassThreeAllowedCoreAttributes, CategorySchema, SeverityError,
		"Core attributes allowed on <classThree>.",
		"A <classThree> object may have the optional SBML Level 3 Core attributes 'metaid' and 'sboTerm'. No other attributes from the SBML Level 3 Core namespaces are permitted on a <classThree>.",
		testRef+" Section 3.4"),
	entry(TestClassThreeAllowedAttributes, CategorySchema, SeverityError,
		"Attributes allowed on <classThree>.",
		"A <classThree> object must have the required attribute 'test:number', and may have the optional attributes 'test:id' and 'test:name'. No other attributes from the SBML Level 3 Test Package namespaces are permitted on a <classThree> object.",
		testRef+" Section 3.4"),
	entry(TestClassThreeNumberMustBeNumberEnum, CategorySchema, SeverityError,
		"The 'number' attribute must be NumberEnum.",
		"The value of the attribute 'test:number' of a <classThree> object must conform to the syntax of SBML data type 'Number' and may only take on the allowed values of 'Number' defined in SBML; that is, the value must be one of the following: 'one', 'two' or 'three'.",
		testRef+" Section 3.4"),
	entry(TestClassThreeNameMustBeString, CategorySchema, SeverityError,
		"The 'name' attribute must be String.",
		"The attribute 'test:name' on a <classThree> must have a value of data type 'string'.",
		testRef+" Section 3.4"),
	entry(TestCategoryAllowedCoreAttributes, CategorySchema, SeverityError,
		"Core attributes allowed on <category>.",
		"A <category> object may have the optional SBML Level 3 Core attributes 'metaid' and 'sboTerm'. No other attributes from the SBML Level 3 Core namespaces are permitted on a <category>.",
		testRef+" Section 3.5"),
	entry(TestCategoryAllowedAttributes, CategorySchema, SeverityError,
		"Attributes allowed on <category>.",
		"A <category> object must have the required attribute 'test:rank', and may have the optional attributes 'test:id' and 'test:name'. No other attributes from the SBML Level 3 Test Package namespaces are permitted on a <category> object.",
		testRef+" Section 3.5"),
	entry(TestCategoryAllowedElements, CategorySchema, SeverityError,
		"Elements allowed on <category>.",
		"A <category> object must contain one and only one instance of the <value> element. No other elements from the SBML Level 3 Test Package namespaces are permitted on a <category> object.",
		testRef+" Section 3.5"),
	entry(TestCategoryRankMustBeNonNegativeInteger, CategorySchema, SeverityError,
		"The 'rank' attribute must be non-negative integer.",
		"The attribute 'test:rank' on a <category> must have a value of data type 'integer', and must be non-negative.",
		testRef+" Section 3.5"),
	entry(TestCategoryNameMustBeString, CategorySchema, SeverityError,
		"The 'name' attribute must be String.",
		"The attribute 'test:name' on a <category> must have a value of data type 'string'.",
		testRef+" Section 3.5"),
	entry(TestValueAllowedCoreAttributes, CategorySchema, SeverityError,
		"Core attributes allowed on <value>.",
		"A <value> object may have the optional SBML Level 3 Core attributes 'metaid' and 'sboTerm'. No other attributes from the SBML Level 3 Core namespaces are permitted on a <value>.",
		testRef+" Section 3.6"),
	entry(TestValueAllowedElements, CategorySchema, SeverityError,
		"Elements allowed on <value>.",
		"A <value> object may contain only character data.",
		testRef+" Section 3.6"),
}
