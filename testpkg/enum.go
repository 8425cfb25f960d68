package testpkg

import "github.com/andaru/sbmlbind/attr"

// Number is the number attribute of classThree.
type Number int

const (
	NumberOne Number = iota
	NumberTwo
	NumberThree
	NumberInvalid
)

var numberTable = attr.NewEnumTable("Number", "one", "two", "three")

func (Number) Table() *attr.EnumTable { return numberTable }
func (n Number) String() string       { return numberTable.ToString(int(n)) }
