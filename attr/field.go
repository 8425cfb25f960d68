package attr

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Field is the storage of one attribute.
//
// Kind must not dereference its receiver, so that it may be called on a
// nil pointer of the concrete field type.
type Field interface {
	Kind() Kind
	IsSet() bool
	// Unset clears the field. It is idempotent.
	Unset()
	// Value returns the stored value, or the zero value of the field's
	// kind when the field is unset.
	Value() Value
	// Assign validates v and stores it.
	Assign(v Value) error
	// Parse parses an XML attribute value and stores it. On failure the
	// field is left unset.
	Parse(s string) error
	// Format returns the XML attribute value of a set field.
	Format() string
}

// Bool is a boolean attribute
type Bool struct {
	v   bool
	set bool
}

func (f *Bool) Kind() Kind     { return KindBool }
func (f *Bool) IsSet() bool    { return f.set }
func (f *Bool) Unset()         { *f = Bool{} }
func (f *Bool) Get() bool      { return f.v }
func (f *Bool) Set(v bool)     { f.v, f.set = v, true }
func (f *Bool) Value() Value   { return BoolValue(f.v) }
func (f *Bool) Format() string { return strconv.FormatBool(f.v) }

func (f *Bool) Assign(v Value) error {
	b, err := v.AsBool()
	if err != nil {
		return err
	}
	f.Set(b)
	return nil
}

// Parse accepts true, false, 1 and 0.
func (f *Bool) Parse(s string) error {
	f.Unset()
	switch strings.TrimSpace(s) {
	case "true", "1":
		f.Set(true)
	case "false", "0":
		f.Set(false)
	case "":
		return ErrEmpty
	default:
		return errors.Wrapf(ErrSyntax, "%q is not a boolean", s)
	}
	return nil
}

// Int is a signed integer attribute
type Int struct {
	v   int
	set bool
}

func (f *Int) Kind() Kind     { return KindInt }
func (f *Int) IsSet() bool    { return f.set }
func (f *Int) Unset()         { *f = Int{} }
func (f *Int) Get() int       { return f.v }
func (f *Int) Set(v int)      { f.v, f.set = v, true }
func (f *Int) Value() Value   { return IntValue(f.v) }
func (f *Int) Format() string { return strconv.Itoa(f.v) }

func (f *Int) Assign(v Value) error {
	i, err := v.AsInt()
	if err != nil {
		return err
	}
	f.Set(i)
	return nil
}

func (f *Int) Parse(s string) error {
	f.Unset()
	s = strings.TrimSpace(s)
	if s == "" {
		return ErrEmpty
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return errors.Wrapf(ErrSyntax, "%q is not an integer", s)
	}
	f.Set(i)
	return nil
}

// UInt is a non-negative integer attribute
type UInt struct {
	v   uint
	set bool
}

func (f *UInt) Kind() Kind     { return KindUInt }
func (f *UInt) IsSet() bool    { return f.set }
func (f *UInt) Unset()         { *f = UInt{} }
func (f *UInt) Get() uint      { return f.v }
func (f *UInt) Set(v uint)     { f.v, f.set = v, true }
func (f *UInt) Value() Value   { return UIntValue(f.v) }
func (f *UInt) Format() string { return strconv.FormatUint(uint64(f.v), 10) }

func (f *UInt) Assign(v Value) error {
	u, err := v.AsUInt()
	if err != nil {
		return err
	}
	f.Set(u)
	return nil
}

// Parse rejects negative values.
func (f *UInt) Parse(s string) error {
	f.Unset()
	s = strings.TrimSpace(s)
	if s == "" {
		return ErrEmpty
	}
	u, err := strconv.ParseUint(s, 10, strconv.IntSize)
	if err != nil {
		if strings.HasPrefix(s, "-") {
			return errors.Wrapf(ErrRange, "%q is negative", s)
		}
		return errors.Wrapf(ErrSyntax, "%q is not a non-negative integer", s)
	}
	f.Set(uint(u))
	return nil
}

// Double is a floating point attribute
type Double struct {
	v   float64
	set bool
}

func (f *Double) Kind() Kind     { return KindDouble }
func (f *Double) IsSet() bool    { return f.set }
func (f *Double) Unset()         { *f = Double{} }
func (f *Double) Get() float64   { return f.v }
func (f *Double) Set(v float64)  { f.v, f.set = v, true }
func (f *Double) Value() Value   { return DoubleValue(f.v) }
func (f *Double) Format() string { return FormatDouble(f.v) }

// Assign accepts Double values and widens Int and UInt values.
func (f *Double) Assign(v Value) error {
	d, err := v.AsDouble()
	if err != nil {
		return err
	}
	f.Set(d)
	return nil
}

// Parse accepts INF, -INF, NaN and Go floating point syntax.
func (f *Double) Parse(s string) error {
	f.Unset()
	d, err := ParseDouble(s)
	if err != nil {
		return err
	}
	f.Set(d)
	return nil
}

// ParseDouble parses s as an XML double.
func ParseDouble(s string) (float64, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0, ErrEmpty
	case "INF", "+INF":
		return math.Inf(1), nil
	case "-INF":
		return math.Inf(-1), nil
	case "NaN":
		return math.NaN(), nil
	}
	d, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrSyntax, "%q is not a double", s)
	}
	return d, nil
}

// String is a free-text attribute. The empty string is a valid value.
type String struct {
	v   string
	set bool
}

func (f *String) Kind() Kind     { return KindString }
func (f *String) IsSet() bool    { return f.set }
func (f *String) Unset()         { *f = String{} }
func (f *String) Get() string    { return f.v }
func (f *String) Set(v string)   { f.v, f.set = v, true }
func (f *String) Value() Value   { return StringValue(f.v) }
func (f *String) Format() string { return f.v }

func (f *String) Assign(v Value) error {
	if v.Kind() != KindString {
		return kindError(KindString, v.Kind())
	}
	f.Set(v.s)
	return nil
}

func (f *String) Parse(s string) error {
	f.Set(s)
	return nil
}
