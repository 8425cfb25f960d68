package attr

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
)

// Kind is the value kind of an attribute
type Kind int

const (
	// KindInvalid is the kind of the zero Value
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindUInt
	KindDouble
	KindString
	KindEnum
)

var kindNames = []string{"invalid", "bool", "int", "uint", "double", "string", "enum"}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	for i, name := range kindNames {
		if name == string(b) {
			*k = Kind(i)
			return nil
		}
	}
	return errors.New("unknown value")
}
