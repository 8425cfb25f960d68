package sbmlerr

// Core diagnostic codes.
const (
	BadlyFormedXML          Code = 1006
	NotUTF8                 Code = 10101
	UnrecognizedElement     Code = 10102
	NotSchemaConformant     Code = 10103
	DuplicateComponentId    Code = 10301
	InvalidMetaidSyntax     Code = 10307
	InvalidSBOTermSyntax    Code = 10308
	InvalidIdSyntax         Code = 10310
	DanglingIdReference     Code = 20101
	UnknownCoreAttribute    Code = 99994
	UnknownPackageAttribute Code = 99995
)

func entry(code Code, cat Category, sev Severity, short, long string, refs ...string) Entry {
	return Entry{Code: code, Category: cat, Severity: sev, ShortMessage: short, LongMessage: long, References: refs}
}

var coreTable = []Entry{
	entry(BadlyFormedXML, CategoryXML, SeverityFatal,
		"Badly formed XML",
		"The XML content is not well-formed."),
	entry(NotUTF8, CategoryXML, SeverityError,
		"Encoding must be UTF-8",
		"An SBML XML file must use UTF-8 as the character encoding.",
		"L3V1 Section 4.1", "L3V2 Section 4.1"),
	entry(UnrecognizedElement, CategorySchema, SeverityError,
		"Unrecognized element",
		"An SBML XML document must not contain undefined elements or attributes in the SBML namespace."),
	entry(NotSchemaConformant, CategorySchema, SeverityError,
		"Document does not conform to the schema",
		"An SBML XML document must conform to the XML Schema for the corresponding SBML Level, Version and Release."),
	entry(DuplicateComponentId, CategoryIdentifierConsistency, SeverityError,
		"Duplicate component identifier",
		"The value of the attribute 'id' on every instance of the following classes of objects must be unique across the set of all 'id' attribute values of all such objects in a model.",
		"L3V1 Section 3.3", "L3V2 Section 3.3"),
	entry(InvalidMetaidSyntax, CategoryIdentifierConsistency, SeverityError,
		"Invalid syntax for a 'metaid' attribute value",
		"The value of a 'metaid' attribute must conform to the syntax of the XML Type ID.",
		"L3V1 Section 3.1.6"),
	entry(InvalidSBOTermSyntax, CategorySBOConsistency, SeverityError,
		"Invalid 'sboTerm' attribute value syntax",
		"The value of an 'sboTerm' attribute must have the data type SBOTerm, a string of the form \"SBO:NNNNNNN\".",
		"L3V1 Section 3.1.9"),
	entry(InvalidIdSyntax, CategoryIdentifierConsistency, SeverityError,
		"Invalid syntax for an 'id' attribute value",
		"The value of the attribute 'id' must conform to the syntax of the SBML data type SId.",
		"L3V1 Section 3.1.7", "L3V2 Section 3.1.7"),
	entry(DanglingIdReference, CategoryIdentifierConsistency, SeverityError,
		"Reference to an undefined identifier",
		"An SIdRef attribute value must refer to the identifier of an existing object."),
	entry(UnknownCoreAttribute, CategorySchema, SeverityError,
		"Unknown attribute from the core namespace",
		"An attribute in the core namespace was not recognized on this element."),
	entry(UnknownPackageAttribute, CategorySchema, SeverityError,
		"Unknown attribute from a package namespace",
		"An attribute in a package namespace was not recognized on this element."),
}
