package sbgn

import "github.com/andaru/sbmlbind/attr"

// GlyphClass is the SBGN class of a glyph.
type GlyphClass int

const (
	GlyphUnspecifiedEntity GlyphClass = iota
	GlyphSimpleChemical
	GlyphMacromolecule
	GlyphNucleicAcidFeature
	GlyphSimpleChemicalMultimer
	GlyphMacromoleculeMultimer
	GlyphNucleicAcidFeatureMultimer
	GlyphComplex
	GlyphComplexMultimer
	GlyphSourceAndSink
	GlyphPerturbation
	GlyphPerturbingAgent
	GlyphBiologicalActivity
	GlyphPhenotype
	GlyphCompartment
	GlyphSubmap
	GlyphTag
	GlyphTerminal
	GlyphProcess
	GlyphOmittedProcess
	GlyphUncertainProcess
	GlyphAssociation
	GlyphDissociation
	GlyphAnd
	GlyphOr
	GlyphNot
	GlyphDelay
	GlyphStateVariable
	GlyphUnitOfInformation
	GlyphEntity
	GlyphOutcome
	GlyphInteraction
	GlyphAnnotation
	GlyphClassInvalid
)

var glyphClassTable = attr.NewEnumTable("GlyphClass",
	"unspecified entity",
	"simple chemical",
	"macromolecule",
	"nucleic acid feature",
	"simple chemical multimer",
	"macromolecule multimer",
	"nucleic acid feature multimer",
	"complex",
	"complex multimer",
	"source and sink",
	"perturbation",
	"perturbing agent",
	"biological activity",
	"phenotype",
	"compartment",
	"submap",
	"tag",
	"terminal",
	"process",
	"omitted process",
	"uncertain process",
	"association",
	"dissociation",
	"and",
	"or",
	"not",
	"delay",
	"state variable",
	"unit of information",
	"entity",
	"outcome",
	"interaction",
	"annotation",
)

func (GlyphClass) Table() *attr.EnumTable { return glyphClassTable }
func (c GlyphClass) String() string       { return glyphClassTable.ToString(int(c)) }

// Orientation is the direction of a glyph, for the glyph classes that
// have one.
type Orientation int

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
	OrientationLeft
	OrientationRight
	OrientationUp
	OrientationDown
	OrientationInvalid
)

var orientationTable = attr.NewEnumTable("Orientation",
	"horizontal", "vertical", "left", "right", "up", "down")

func (Orientation) Table() *attr.EnumTable { return orientationTable }
func (o Orientation) String() string       { return orientationTable.ToString(int(o)) }
