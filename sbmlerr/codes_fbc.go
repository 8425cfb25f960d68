package sbmlerr

// Diagnostic codes of the fbc package.
const (
	FbcUnknown              Code = 2010100
	FbcNSUndeclared         Code = 2010101
	FbcElementNotInNs       Code = 2010102
	FbcDuplicateComponentId Code = 2010301
	FbcSBMLSIdSyntax        Code = 2010302

	FbcOnlyOneEachListOf Code = 2020101

	FbcListOfObjectivesAllowedAttributes     Code = 2020201
	FbcListOfObjectivesAllowedElements       Code = 2020202
	FbcActiveObjectiveSyntax                 Code = 2020203
	FbcActiveObjectiveRefersObjective        Code = 2020204
	FbcListOfObjectivesAllowedCoreAttributes Code = 2020205

	FbcListOfFluxBoundsAllowedCoreAttributes Code = 2020301
	FbcListOfFluxBoundsAllowedElements       Code = 2020302

	FbcFluxBoundAllowedL3Attributes  Code = 2020401
	FbcFluxBoundAllowedElements      Code = 2020402
	FbcFluxBoundRequiredAttributes   Code = 2020403
	FbcFluxBoundReactionMustBeSIdRef Code = 2020404
	FbcFluxBoundNameMustBeString     Code = 2020405
	FbcFluxBoundOperationMustBeEnum  Code = 2020406
	FbcFluxBoundValueMustBeDouble    Code = 2020407
	FbcFluxBoundReactionMustExist    Code = 2020408

	FbcObjectiveAllowedL3Attributes     Code = 2020501
	FbcObjectiveAllowedElements         Code = 2020502
	FbcObjectiveRequiredAttributes      Code = 2020503
	FbcObjectiveNameMustBeString        Code = 2020504
	FbcObjectiveTypeMustBeEnum          Code = 2020505
	FbcObjectiveOneListOfObjectives     Code = 2020506
	FbcObjectiveLOFluxObjMustNotBeEmpty Code = 2020507
	FbcObjectiveLOFluxObjOnlyFluxObj    Code = 2020508

	FbcFluxObjectAllowedL3Attributes     Code = 2020601
	FbcFluxObjectAllowedElements         Code = 2020602
	FbcFluxObjectRequiredAttributes      Code = 2020603
	FbcFluxObjectNameMustBeString        Code = 2020604
	FbcFluxObjectReactionMustBeSIdRef    Code = 2020605
	FbcFluxObjectReactionMustExist       Code = 2020606
	FbcFluxObjectCoefficientMustBeDouble Code = 2020607
)

const fbcRef = "L3V1 Fbc V1 Section"

var fbcTable = []Entry{
	entry(FbcUnknown, CategoryInternal, SeverityError,
		"Unknown error from fbc",
		"Unknown error from fbc"),
	entry(FbcNSUndeclared, CategoryGeneralConsistency, SeverityError,
		"The fbc ns is not correctly declared",
		"To conform to Version 1 of the Flux Balance Constraints package specification for SBML Level 3, an SBML document must declare the use of the following XML Namespace: 'http://www.sbml.org/sbml/level3/version1/fbc/version1'.",
		fbcRef+" 3.1"),
	entry(FbcElementNotInNs, CategoryGeneralConsistency, SeverityError,
		"Element not in fbc namespace",
		"Wherever they appear in an SBML document, elements and attributes from the Flux Balance Constraints package must be declared either implicitly or explicitly to be in the XML namespace 'http://www.sbml.org/sbml/level3/version1/fbc/version1'.",
		fbcRef+" 3.1"),
	entry(FbcDuplicateComponentId, CategoryIdentifierConsistency, SeverityError,
		"Duplicate 'id' attribute value",
		"(Extends validation rule #10301 in the SBML Level 3 Version 1 Core specification.) Within a <model> the values of the attributes 'id' and 'fbc:id' on every instance of the following classes of objects must be unique across the set of all 'id' and 'fbc:id' attribute values of all such objects in a model: the <model> itself, plus all contained <functionDefinition>, <compartment>, <species>, <reaction>, <speciesReference>, <modifierSpeciesReference>, <event>, and <parameter> objects, plus the <fluxBound>, <objective> and <fluxObjective> objects defined by the Flux Balance Constraints package.",
		fbcRef+" 3.2"),
	entry(FbcSBMLSIdSyntax, CategoryIdentifierConsistency, SeverityError,
		"Invalid 'id' attribute",
		"The value of a 'fbc:id' must conform to the syntax of the <sbml> data type 'SId'.",
		fbcRef+" 3.2"),
	entry(FbcOnlyOneEachListOf, CategorySchema, SeverityError,
		"One of each list of allowed",
		"There may be at most one instance of each of the following kinds of objects within a <model> object using Flux Balance Constraints: <listOfFluxBounds> and <listOfObjectives>.",
		fbcRef+" 3.3"),
	entry(FbcListOfObjectivesAllowedAttributes, CategorySchema, SeverityError,
		"Allowed attributes on ListOfObjectives",
		"A <listOfObjectives> object must have the required attribute 'fbc:activeObjective'. No other attributes from the SBML Level 3 Flux Balance Constraints namespace are permitted on a <listOfObjectives> object.",
		fbcRef+" 3.3"),
	entry(FbcListOfObjectivesAllowedElements, CategorySchema, SeverityError,
		"Allowed elements on ListOfObjectives",
		"Apart from the general notes and annotation subobjects permitted on all SBML objects, a <listOfObjectives> container object may only contain <objective> objects.",
		fbcRef+" 3.3"),
	entry(FbcActiveObjectiveSyntax, CategorySchema, SeverityError,
		"Type of activeObjective attribute",
		"The value of the attribute 'fbc:activeObjective' on the <listOfObjectives> object must be of the data type 'SIdRef'.",
		fbcRef+" 3.3"),
	entry(FbcActiveObjectiveRefersObjective, CategoryIdentifierConsistency, SeverityError,
		"ActiveObjective must reference Objective",
		"The value of the attribute 'fbc:activeObjective' on the <listOfObjectives> object must be the identifier of an existing <objective>.",
		fbcRef+" 3.3"),
	entry(FbcListOfObjectivesAllowedCoreAttributes, CategorySchema, SeverityError,
		"Allowed core attributes on ListOfObjectives",
		"A <listOfObjectives> object may have the optional SBML core attributes 'metaid' and 'sboTerm'. No other attributes from the SBML Level 3 Core namespace are permitted on a <listOfObjectives> object.",
		fbcRef+" 3.3"),
	entry(FbcListOfFluxBoundsAllowedCoreAttributes, CategorySchema, SeverityError,
		"Allowed core attributes on ListOfFluxBounds",
		"A <listOfFluxBounds> object may have the optional SBML core attributes 'metaid' and 'sboTerm'. No other attributes from the SBML Level 3 Core namespace are permitted on a <listOfFluxBounds> object.",
		fbcRef+" 3.3"),
	entry(FbcListOfFluxBoundsAllowedElements, CategorySchema, SeverityError,
		"Allowed elements on ListOfFluxBounds",
		"Apart from the general notes and annotation subobjects permitted on all SBML objects, a <listOfFluxBounds> container object may only contain <fluxBound> objects.",
		fbcRef+" 3.3"),
	entry(FbcFluxBoundAllowedL3Attributes, CategorySchema, SeverityError,
		"Allowed attributes on FluxBound",
		"A <fluxBound> object must have the required attributes 'fbc:reaction', 'fbc:operation' and 'fbc:value', and may have the optional attributes 'metaid', 'sboTerm', 'fbc:id' and 'fbc:name'. No other attributes from the SBML Level 3 Flux Balance Constraints namespace are permitted on a <fluxBound> object.",
		fbcRef+" 3.5"),
	entry(FbcFluxBoundAllowedElements, CategorySchema, SeverityError,
		"Allowed elements on FluxBound",
		"A <fluxBound> object may have the optional SBML Level 3 Core subobjects for notes and annotations. No other elements from the SBML Level 3 Core namespace are permitted on a <fluxBound>.",
		fbcRef+" 3.5"),
	entry(FbcFluxBoundRequiredAttributes, CategorySchema, SeverityError,
		"Invalid attribute found on FluxBound object",
		"A <fluxBound> object must have the required attributes 'fbc:reaction', 'fbc:operation' and 'fbc:value'.",
		fbcRef+" 3.5"),
	entry(FbcFluxBoundReactionMustBeSIdRef, CategorySchema, SeverityError,
		"Datatype for 'fbc:reaction' must be SIdRef",
		"The value of the attribute 'fbc:reaction' of a <fluxBound> object must conform to the syntax of the SBML data type 'SIdRef'.",
		fbcRef+" 3.5"),
	entry(FbcFluxBoundNameMustBeString, CategorySchema, SeverityError,
		"The attribute 'fbc:name' must be of the data type string",
		"The attribute 'fbc:name' of a <fluxBound> object must be of the data type 'string'.",
		fbcRef+" 3.5"),
	entry(FbcFluxBoundOperationMustBeEnum, CategorySchema, SeverityError,
		"Datatype for 'fbc:operation' must be FluxBoundOperation",
		"The attribute 'fbc:operation' of a <fluxBound> object must be of the data type 'FbcOperation' and thus its value must be one of 'lessEqual', 'greaterEqual' or 'equal'.",
		fbcRef+" 3.5"),
	entry(FbcFluxBoundValueMustBeDouble, CategorySchema, SeverityError,
		"Datatype for 'fbc:value' must be double",
		"The attribute 'fbc:value' of a <fluxBound> object must be of the data type 'double'.",
		fbcRef+" 3.5"),
	entry(FbcFluxBoundReactionMustExist, CategoryIdentifierConsistency, SeverityError,
		"'fbc:reaction' must refer to valid reaction",
		"The value of the attribute 'fbc:reaction' of a <fluxBound> object must be the identifier of an existing <reaction> object defined in the enclosing <model> object.",
		fbcRef+" 3.5"),
	entry(FbcObjectiveAllowedL3Attributes, CategorySchema, SeverityError,
		"Allowed attributes on Objective",
		"An <objective> object must have the required attributes 'fbc:id' and 'fbc:type' and may have the optional attributes 'metaid', 'sboTerm' and 'fbc:name'. No other attributes from the SBML Level 3 Flux Balance Constraints namespace are permitted on an <objective> object.",
		fbcRef+" 3.6"),
	entry(FbcObjectiveAllowedElements, CategorySchema, SeverityError,
		"Allowed elements on Objective",
		"An <objective> object may have the optional SBML Level 3 Core subobjects for notes and annotations. No other elements from the SBML Level 3 Core namespace are permitted on an <objective>.",
		fbcRef+" 3.6"),
	entry(FbcObjectiveRequiredAttributes, CategorySchema, SeverityError,
		"Invalid attribute found on Objective object",
		"An <objective> object must have the required attributes 'fbc:id' and 'fbc:type'.",
		fbcRef+" 3.6"),
	entry(FbcObjectiveNameMustBeString, CategorySchema, SeverityError,
		"The attribute 'fbc:name' must be of the data type string",
		"The attribute 'fbc:name' of an <objective> object must be of the data type 'string'.",
		fbcRef+" 3.6"),
	entry(FbcObjectiveTypeMustBeEnum, CategorySchema, SeverityError,
		"Datatype for 'fbc:type' must be FbcType",
		"The attribute 'fbc:type' of an <objective> object must be of the data type 'FbcType' and thus its value must be one of 'minimize' or 'maximize'.",
		fbcRef+" 3.6"),
	entry(FbcObjectiveOneListOfObjectives, CategorySchema, SeverityError,
		"An <objective> must have one <listOfFluxObjectives>.",
		"An <objective> object must have one and only one instance of the <listOfFluxObjectives> object.",
		fbcRef+" 3.6"),
	entry(FbcObjectiveLOFluxObjMustNotBeEmpty, CategorySchema, SeverityError,
		"<listOfFluxObjectives> subobject must not be empty",
		"The <listOfFluxObjectives> subobject within an <objective> object must not be empty.",
		fbcRef+" 3.6"),
	entry(FbcObjectiveLOFluxObjOnlyFluxObj, CategorySchema, SeverityError,
		"Invalid element found in <listOfFluxObjectives>",
		"Apart from the general notes and annotation subobjects permitted on all SBML objects, a <listOfFluxObjectives> container object may only contain <fluxObjective> objects.",
		fbcRef+" 3.6"),
	entry(FbcFluxObjectAllowedL3Attributes, CategorySchema, SeverityError,
		"Allowed attributes on FluxObjective",
		"A <fluxObjective> object must have the required attributes 'fbc:reaction' and 'fbc:coefficient', and may have the optional attributes 'metaid', 'sboTerm', 'fbc:id' and 'fbc:name'. No other attributes from the SBML Level 3 Flux Balance Constraints namespace are permitted on a <fluxObjective> object.",
		fbcRef+" 3.7"),
	entry(FbcFluxObjectAllowedElements, CategorySchema, SeverityError,
		"Allowed elements on FluxObjective",
		"A <fluxObjective> object may have the optional SBML Level 3 Core subobjects for notes and annotations. No other elements from the SBML Level 3 Core namespace are permitted on a <fluxObjective>.",
		fbcRef+" 3.7"),
	entry(FbcFluxObjectRequiredAttributes, CategorySchema, SeverityError,
		"Invalid attribute found on FluxObjective object",
		"A <fluxObjective> object must have the required attributes 'fbc:reaction' and 'fbc:coefficient'.",
		fbcRef+" 3.7"),
	entry(FbcFluxObjectNameMustBeString, CategorySchema, SeverityError,
		"The attribute 'fbc:name' must be of the data type string",
		"The attribute 'fbc:name' of a <fluxObjective> object must be of the data type 'string'.",
		fbcRef+" 3.7"),
	entry(FbcFluxObjectReactionMustBeSIdRef, CategorySchema, SeverityError,
		"Datatype for 'fbc:reaction' must be SIdRef",
		"The value of the attribute 'fbc:reaction' of a <fluxObjective> object must conform to the syntax of the SBML data type 'SIdRef'.",
		fbcRef+" 3.7"),
	entry(FbcFluxObjectReactionMustExist, CategoryIdentifierConsistency, SeverityError,
		"'fbc:reaction' must refer to valid reaction",
		"The value of the attribute 'fbc:reaction' of a <fluxObjective> object must be the identifier of an existing <reaction> object defined in the enclosing <model> object.",
		fbcRef+" 3.7"),
	entry(FbcFluxObjectCoefficientMustBeDouble, CategorySchema, SeverityError,
		"Datatype for 'fbc:coefficient' must be double",
		"The value of the attribute 'fbc:coefficient' of a <fluxObjective> object must conform to the syntax of the SBML data type 'double'.",
		fbcRef+" 3.7"),
}
