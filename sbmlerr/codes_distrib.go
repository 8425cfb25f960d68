package sbmlerr

// Diagnostic codes of the distrib package.
const (
	DistribUnknown              Code = 1510100
	DistribNSUndeclared         Code = 1510101
	DistribElementNotInNs       Code = 1510102
	DistribDuplicateComponentId Code = 1510301
	DistribIdSyntaxRule         Code = 1510302

	DistribUncertValueAllowedCoreAttributes Code = 1520101
	DistribUncertValueAllowedAttributes     Code = 1520102
	DistribUncertValueAllowedElements       Code = 1520103
	DistribUncertValueValueMustBeDouble     Code = 1520104
	DistribUncertValueVarMustBeSBase        Code = 1520105
	DistribUncertValueUnitsMustBeUnitSId    Code = 1520106

	DistribUncertBoundAllowedCoreAttributes  Code = 1520201
	DistribUncertBoundAllowedAttributes      Code = 1520202
	DistribUncertBoundInclusiveMustBeBoolean Code = 1520203

	DistribBinomialDistributionAllowedCoreAttributes Code = 1520401
	DistribBinomialDistributionAllowedElements       Code = 1520402
	DistribBinomialDistributionAllowedAttributes     Code = 1520403
	DistribBinomialDistributionOneNumberOfTrials     Code = 1520404
	DistribBinomialDistributionOneProbability        Code = 1520405

	DistribBernoulliDistributionAllowedCoreAttributes Code = 1520501
	DistribBernoulliDistributionAllowedElements       Code = 1520502
	DistribBernoulliDistributionAllowedAttributes     Code = 1520503
	DistribBernoulliDistributionOneProbability        Code = 1520504
)

const distribRef = "L3V1 Distributions V1 Section"

var distribTable = []Entry{
	entry(DistribUnknown, CategoryInternal, SeverityError,
		"Unknown error from distrib",
		"Unknown error from distrib"),
	entry(DistribNSUndeclared, CategoryGeneralConsistency, SeverityError,
		"The distrib namespace is not correctly declared.",
		"To conform to the Distributions Package specification for SBML Level 3 Version 1, an SBML document must declare 'http://www.sbml.org/sbml/level3/version1/distrib/version1' as the XMLNamespace to use for elements of this package.",
		distribRef+" 3.1"),
	entry(DistribElementNotInNs, CategoryGeneralConsistency, SeverityError,
		"Element not in distrib namespace",
		"Wherever they appear in an SBML document, elements and attributes from the Distributions Package must use the 'http://www.sbml.org/sbml/level3/version1/distrib/version1' namespace.",
		distribRef+" 3.1"),
	entry(DistribDuplicateComponentId, CategoryIdentifierConsistency, SeverityError,
		"Duplicate 'id' attribute value",
		"(Extends validation rule #10301 in the SBML Level 3 Core specification.)",
		distribRef+" 3.2"),
	entry(DistribIdSyntaxRule, CategoryIdentifierConsistency, SeverityError,
		"Invalid SId syntax",
		"The value of a 'distrib:id' must conform to the syntax of the SBML data type 'SId'.",
		distribRef+" 3.2"),
	entry(DistribUncertValueAllowedCoreAttributes, CategorySchema, SeverityError,
		"Core attributes allowed on <uncertValue>.",
		"An <uncertValue> object may have the optional SBML Level 3 Core attributes 'metaid' and 'sboTerm'. No other attributes from the SBML Level 3 Core namespaces are permitted on an <uncertValue>.",
		distribRef+" 3.6"),
	entry(DistribUncertValueAllowedAttributes, CategorySchema, SeverityError,
		"Attributes allowed on <uncertValue>.",
		"An <uncertValue> object may have the optional attributes 'value', 'var' and 'units'. No other attributes from the SBML Level 3 Distributions namespaces are permitted on an <uncertValue> object.",
		distribRef+" 3.6"),
	entry(DistribUncertValueAllowedElements, CategorySchema, SeverityError,
		"Elements allowed on <uncertValue>.",
		"An <uncertValue> object may not contain child elements from the Distributions namespace.",
		distribRef+" 3.6"),
	entry(DistribUncertValueValueMustBeDouble, CategorySchema, SeverityError,
		"The 'value' attribute must be Double.",
		"The attribute 'value' on an <uncertValue> must have a value of data type 'double'.",
		distribRef+" 3.6"),
	entry(DistribUncertValueVarMustBeSBase, CategorySchema, SeverityError,
		"The 'var' attribute must point to SBase object.",
		"The value of the attribute 'var' of an <uncertValue> object must be the identifier of an existing object derived from the 'SBase' class.",
		distribRef+" 3.6"),
	entry(DistribUncertValueUnitsMustBeUnitSId, CategorySchema, SeverityError,
		"The 'units' attribute must be UnitSId.",
		"The value of the attribute 'units' on an <uncertValue> must have a taken value from the following: the identifier of a <unitDefinition> object in the enclosing <model>, or one of the base units in SBML.",
		distribRef+" 3.6"),
	entry(DistribUncertBoundAllowedCoreAttributes, CategorySchema, SeverityError,
		"Core attributes allowed on <uncertBound>.",
		"An <uncertBound> object may have the optional SBML Level 3 Core attributes 'metaid' and 'sboTerm'. No other attributes from the SBML Level 3 Core namespaces are permitted on an <uncertBound>.",
		distribRef+" 3.7"),
	entry(DistribUncertBoundAllowedAttributes, CategorySchema, SeverityError,
		"Attributes allowed on <uncertBound>.",
		"An <uncertBound> object must have the required attribute 'inclusive'. No other attributes from the SBML Level 3 Distributions namespaces are permitted on an <uncertBound> object.",
		distribRef+" 3.7"),
	entry(DistribUncertBoundInclusiveMustBeBoolean, CategorySchema, SeverityError,
		"The 'inclusive' attribute must be Boolean.",
		"The attribute 'inclusive' on an <uncertBound> must have a value of data type 'boolean'.",
		distribRef+" 3.7"),
	entry(DistribBinomialDistributionAllowedCoreAttributes, CategorySchema, SeverityError,
		"Core attributes allowed on <binomialDistribution>.",
		"A <binomialDistribution> object may have the optional SBML Level 3 Core attributes 'metaid' and 'sboTerm'. No other attributes from the SBML Level 3 Core namespaces are permitted on a <binomialDistribution>.",
		distribRef+" 3.12"),
	entry(DistribBinomialDistributionAllowedElements, CategorySchema, SeverityError,
		"Elements allowed on <binomialDistribution>.",
		"A <binomialDistribution> object must contain one and only one instance of each of the <numberOfTrials> and <probabilityOfSuccess> elements, and may contain one <truncationLowerBound> and one <truncationUpperBound>. No other elements from the SBML Level 3 Distributions namespaces are permitted inside a <binomialDistribution> object.",
		distribRef+" 3.12"),
	entry(DistribBinomialDistributionAllowedAttributes, CategorySchema, SeverityError,
		"Attributes allowed on <binomialDistribution>.",
		"A <binomialDistribution> object may have the optional attributes 'id' and 'name'. No other attributes from the SBML Level 3 Distributions namespaces are permitted on a <binomialDistribution> object.",
		distribRef+" 3.12"),
	entry(DistribBinomialDistributionOneNumberOfTrials, CategoryGeneralConsistency, SeverityError,
		"Exactly one <numberOfTrials> in a <binomialDistribution>.",
		"A <binomialDistribution> must contain exactly one <numberOfTrials> element.",
		distribRef+" 3.12"),
	entry(DistribBinomialDistributionOneProbability, CategoryGeneralConsistency, SeverityError,
		"Exactly one <probabilityOfSuccess> in a <binomialDistribution>.",
		"A <binomialDistribution> must contain exactly one <probabilityOfSuccess> element.",
		distribRef+" 3.12"),
	entry(DistribBernoulliDistributionAllowedCoreAttributes, CategorySchema, SeverityError,
		"Core attributes allowed on <bernoulliDistribution>.",
		"A <bernoulliDistribution> object may have the optional SBML Level 3 Core attributes 'metaid' and 'sboTerm'. No other attributes from the SBML Level 3 Core namespaces are permitted on a <bernoulliDistribution>.",
		distribRef+" 3.13"),
	entry(DistribBernoulliDistributionAllowedElements, CategorySchema, SeverityError,
		"Elements allowed on <bernoulliDistribution>.",
		"A <bernoulliDistribution> object must contain one and only one instance of the <probabilityOfSuccess> element. No other elements from the SBML Level 3 Distributions namespaces are permitted inside a <bernoulliDistribution> object.",
		distribRef+" 3.13"),
	entry(DistribBernoulliDistributionAllowedAttributes, CategorySchema, SeverityError,
		"Attributes allowed on <bernoulliDistribution>.",
		"A <bernoulliDistribution> object may have the optional attributes 'id' and 'name'. No other attributes from the SBML Level 3 Distributions namespaces are permitted on a <bernoulliDistribution> object.",
		distribRef+" 3.13"),
	entry(DistribBernoulliDistributionOneProbability, CategoryGeneralConsistency, SeverityError,
		"Exactly one <probabilityOfSuccess> in a <bernoulliDistribution>.",
		"A <bernoulliDistribution> must contain exactly one <probabilityOfSuccess> element.",
		distribRef+" 3.13"),
}
