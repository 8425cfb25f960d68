package attr

import (
	"math"
	"strconv"
	"strings"
)

// Value is a tagged union over the attribute kinds. Enum values carry both
// the enumeration code and its canonical token.
type Value struct {
	kind Kind
	b    bool
	i    int
	u    uint
	d    float64
	s    string
}

func BoolValue(b bool) Value      { return Value{kind: KindBool, b: b} }
func IntValue(i int) Value        { return Value{kind: KindInt, i: i} }
func UIntValue(u uint) Value      { return Value{kind: KindUInt, u: u} }
func DoubleValue(d float64) Value { return Value{kind: KindDouble, d: d} }
func StringValue(s string) Value  { return Value{kind: KindString, s: s} }

// EnumValue returns an enumeration value with the given code and token.
func EnumValue(code int, token string) Value { return Value{kind: KindEnum, i: code, s: token} }

// Kind returns the kind of v
func (v Value) Kind() Kind { return v.kind }

// IsValid returns false for the zero Value.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

func (v Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, kindError(KindBool, v.kind)
	}
	return v.b, nil
}

func (v Value) AsInt() (int, error) {
	if v.kind != KindInt {
		return 0, kindError(KindInt, v.kind)
	}
	return v.i, nil
}

func (v Value) AsUInt() (uint, error) {
	if v.kind != KindUInt {
		return 0, kindError(KindUInt, v.kind)
	}
	return v.u, nil
}

// AsDouble returns the value as a float64. Int and UInt values are widened.
func (v Value) AsDouble() (float64, error) {
	switch v.kind {
	case KindDouble:
		return v.d, nil
	case KindInt:
		return float64(v.i), nil
	case KindUInt:
		return float64(v.u), nil
	}
	return 0, kindError(KindDouble, v.kind)
}

// AsString returns the value of a String, or the token of an Enum.
func (v Value) AsString() (string, error) {
	switch v.kind {
	case KindString, KindEnum:
		return v.s, nil
	}
	return "", kindError(KindString, v.kind)
}

// EnumCode returns the enumeration code of an Enum value.
func (v Value) EnumCode() (int, error) {
	if v.kind != KindEnum {
		return 0, kindError(KindEnum, v.kind)
	}
	return v.i, nil
}

// String formats the value as it would appear in an XML attribute.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.Itoa(v.i)
	case KindUInt:
		return strconv.FormatUint(uint64(v.u), 10)
	case KindDouble:
		return FormatDouble(v.d)
	case KindString, KindEnum:
		return v.s
	}
	return ""
}

// FormatDouble formats d in the shortest form that reads back as d. Plain
// decimal notation is used for decimal exponents in [-4, 15), exponent
// notation otherwise, as printf's %.15g chooses.
func FormatDouble(d float64) string {
	switch {
	case math.IsInf(d, 1):
		return "INF"
	case math.IsInf(d, -1):
		return "-INF"
	case math.IsNaN(d):
		return "NaN"
	}
	if d == 0 {
		return strconv.FormatFloat(d, 'f', -1, 64)
	}
	e := strconv.FormatFloat(d, 'e', -1, 64)
	if exp, err := strconv.Atoi(e[strings.LastIndexByte(e, 'e')+1:]); err == nil && exp >= -4 && exp < 15 {
		return strconv.FormatFloat(d, 'f', -1, 64)
	}
	return strconv.FormatFloat(d, 'g', -1, 64)
}
