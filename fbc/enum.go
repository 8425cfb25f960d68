package fbc

import "github.com/andaru/sbmlbind/attr"

// FluxBoundOperation is the relation a flux bound places on a reaction's
// flux.
type FluxBoundOperation int

const (
	FluxBoundLessEqual FluxBoundOperation = iota
	FluxBoundGreaterEqual
	FluxBoundLess
	FluxBoundGreater
	FluxBoundEqual
	FluxBoundOperationInvalid
)

var fluxBoundOperationTable = attr.NewEnumTable("FluxBoundOperation",
	"lessEqual", "greaterEqual", "less", "greater", "equal")

func (FluxBoundOperation) Table() *attr.EnumTable { return fluxBoundOperationTable }
func (o FluxBoundOperation) String() string       { return fluxBoundOperationTable.ToString(int(o)) }

// ObjectiveType is the direction of an objective function.
type ObjectiveType int

const (
	ObjectiveMaximize ObjectiveType = iota
	ObjectiveMinimize
	ObjectiveTypeInvalid
)

var objectiveTypeTable = attr.NewEnumTable("ObjectiveType", "maximize", "minimize")

func (ObjectiveType) Table() *attr.EnumTable { return objectiveTypeTable }
func (t ObjectiveType) String() string       { return objectiveTypeTable.ToString(int(t)) }
