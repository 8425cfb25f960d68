package attr

import (
	"math"
	"testing"

	"github.com/andaru/sbmlbind/sbmlerr"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type color int

const (
	colorRed color = iota
	colorGreen
	colorBlue
)

var colorTable = NewEnumTable("Color", "red", "green", "blue")

func (color) Table() *EnumTable { return colorTable }

func TestEnumTableRoundTrip(t *testing.T) {
	check := assert.New(t)
	for _, tok := range colorTable.Tokens() {
		check.Equal(tok, colorTable.ToString(colorTable.FromString(tok)))
	}
	check.Equal(3, colorTable.Invalid())
	check.Equal(colorTable.Invalid(), colorTable.FromString("purple"))
	check.Equal(colorTable.Invalid(), colorTable.FromString("Red"))
	check.Equal("", colorTable.ToString(colorTable.Invalid()))
	check.Equal("", colorTable.ToString(-1))
	check.Panics(func() { NewEnumTable("Dup", "a", "a") })
	check.Panics(func() { NewEnumTable("Empty", "") })
}

func TestEnumField(t *testing.T) {
	check := assert.New(t)
	var f Enum[color]
	check.False(f.IsSet())
	check.Equal(color(3), f.Get())

	check.NoError(f.Parse("green"))
	check.True(f.IsSet())
	check.Equal(colorGreen, f.Get())
	check.Equal("green", f.Format())
	check.Equal(EnumValue(1, "green"), f.Value())

	err := f.Parse("bogus")
	check.True(errors.Is(err, ErrInvalidToken))
	check.Equal(sbmlerr.InvalidAttributeValue, sbmlerr.StatusOf(err))
	check.False(f.IsSet())
	check.True(f.IsInvalid())
	check.Equal("bogus", f.Raw())
	check.Contains(err.Error(), `"bogus"`)

	check.True(errors.Is(f.Set(color(7)), ErrRange))
	check.NoError(f.Set(colorBlue))
	check.False(f.IsInvalid())

	check.NoError(f.Assign(StringValue("red")))
	check.Equal(colorRed, f.Get())
	check.True(errors.Is(f.Assign(StringValue("mauve")), ErrInvalidToken))
	check.True(errors.Is(f.Assign(IntValue(1)), ErrKind))
	check.NoError(f.Assign(EnumValue(2, "blue")))
	check.Equal(colorBlue, f.Get())

	f.Unset()
	f.Unset()
	check.False(f.IsSet())
	check.True(errors.Is(f.Parse(""), ErrEmpty))
}

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		name  string
		field Field
		in    string
		want  Value
		err   error
	}{
		{name: "bool true", field: &Bool{}, in: "true", want: BoolValue(true)},
		{name: "bool 1", field: &Bool{}, in: "1", want: BoolValue(true)},
		{name: "bool 0", field: &Bool{}, in: " 0 ", want: BoolValue(false)},
		{name: "bool yes", field: &Bool{}, in: "yes", err: ErrSyntax},
		{name: "bool empty", field: &Bool{}, in: "", err: ErrEmpty},
		{name: "int", field: &Int{}, in: "-42", want: IntValue(-42)},
		{name: "int float", field: &Int{}, in: "4.2", err: ErrSyntax},
		{name: "uint", field: &UInt{}, in: "2", want: UIntValue(2)},
		{name: "uint negative", field: &UInt{}, in: "-2", err: ErrRange},
		{name: "uint junk", field: &UInt{}, in: "two", err: ErrSyntax},
		{name: "uint empty", field: &UInt{}, in: "", err: ErrEmpty},
		{name: "double", field: &Double{}, in: "1.5e3", want: DoubleValue(1500)},
		{name: "double INF", field: &Double{}, in: "INF", want: DoubleValue(math.Inf(1))},
		{name: "double -INF", field: &Double{}, in: "-INF", want: DoubleValue(math.Inf(-1))},
		{name: "double junk", field: &Double{}, in: "1,5", err: ErrSyntax},
		{name: "string empty", field: &String{}, in: "", want: StringValue("")},
		{name: "sid", field: &SId{}, in: "_r1", want: StringValue("_r1")},
		{name: "sid digit", field: &SId{}, in: "1r", err: ErrSyntax},
		{name: "sid dash", field: &SId{}, in: "r-1", err: ErrSyntax},
		{name: "sid empty", field: &SId{}, in: "", err: ErrEmpty},
		{name: "metaid", field: &ID{}, in: "meta.1-a", want: StringValue("meta.1-a")},
		{name: "metaid digit", field: &ID{}, in: "1meta", err: ErrSyntax},
		{name: "metaid colon", field: &ID{}, in: "a:b", err: ErrSyntax},
		{name: "sbo", field: &SBOTerm{}, in: "SBO:0000236", want: StringValue("SBO:0000236")},
		{name: "sbo short", field: &SBOTerm{}, in: "SBO:236", err: ErrSyntax},
		{name: "sbo prefix", field: &SBOTerm{}, in: "0000236", err: ErrSyntax},
		{name: "sbo empty", field: &SBOTerm{}, in: "", err: ErrEmpty},
	} {
		t.Run(tc.name, func(t *testing.T) {
			check := assert.New(t)
			err := tc.field.Parse(tc.in)
			if tc.err != nil {
				check.True(errors.Is(err, tc.err), "got %v", err)
				check.False(tc.field.IsSet())
				return
			}
			check.NoError(err)
			check.True(tc.field.IsSet())
			check.Equal(tc.want, tc.field.Value())
		})
	}
}

func TestFormat(t *testing.T) {
	check := assert.New(t)
	d := &Double{}
	for in, want := range map[string]string{"1.5e3": "1500", "NaN": "NaN", "-INF": "-INF", "0.1": "0.1"} {
		check.NoError(d.Parse(in))
		check.Equal(want, d.Format())
	}
	s := &SBOTerm{}
	check.NoError(s.Set(14))
	check.Equal("SBO:0000014", s.Format())
	check.Equal(14, s.Get())
	check.True(errors.Is(s.Set(MaxSBOTerm+1), ErrRange))
	s.Unset()
	check.Equal(-1, s.Get())
	check.NoError(s.Assign(IntValue(5)))
	check.Equal("SBO:0000005", s.Value().String())
}

func TestFormatDouble(t *testing.T) {
	for _, tc := range []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1e6, "1000000"},
		{-2.5e-3, "-0.0025"},
		{1e-4, "0.0001"},
		{1e-5, "1e-05"},
		{123456789012345, "123456789012345"},
		{1e15, "1e+15"},
		{1.5e300, "1.5e+300"},
		{math.Inf(1), "INF"},
	} {
		t.Run(tc.want, func(t *testing.T) {
			check := assert.New(t)
			check.Equal(tc.want, FormatDouble(tc.in))
			d := &Double{}
			if check.NoError(d.Parse(tc.want)) {
				check.Equal(tc.in, d.Get())
			}
		})
	}
}

func TestValueKinds(t *testing.T) {
	check := assert.New(t)

	_, err := IntValue(1).AsBool()
	check.True(errors.Is(err, ErrKind))
	check.Equal(sbmlerr.OperationFailed, sbmlerr.StatusOf(err))

	_, err = DoubleValue(1).AsInt()
	check.True(errors.Is(err, ErrKind))
	_, err = IntValue(-1).AsUInt()
	check.True(errors.Is(err, ErrKind))
	_, err = BoolValue(true).AsString()
	check.True(errors.Is(err, ErrKind))

	d, err := IntValue(-3).AsDouble()
	check.NoError(err)
	check.Equal(-3.0, d)
	d, err = UIntValue(3).AsDouble()
	check.NoError(err)
	check.Equal(3.0, d)

	s, err := EnumValue(2, "blue").AsString()
	check.NoError(err)
	check.Equal("blue", s)
	code, err := EnumValue(2, "blue").EnumCode()
	check.NoError(err)
	check.Equal(2, code)

	check.False(Value{}.IsValid())
	check.Equal("uint", KindUInt.String())
	var k Kind
	check.NoError(k.UnmarshalText([]byte("enum")))
	check.Equal(KindEnum, k)
}

func TestAssign(t *testing.T) {
	check := assert.New(t)

	d := &Double{}
	check.NoError(d.Assign(IntValue(2)))
	check.Equal(2.0, d.Get())

	i := &Int{}
	check.True(errors.Is(i.Assign(DoubleValue(2)), ErrKind))
	check.False(i.IsSet())

	u := &UInt{}
	check.True(errors.Is(u.Assign(IntValue(2)), ErrKind))
	check.NoError(u.Assign(UIntValue(2)))
	check.Equal(uint(2), u.Get())

	sid := &SId{}
	err := sid.Assign(StringValue("not valid"))
	check.Equal(sbmlerr.InvalidAttributeValue, sbmlerr.StatusOf(err))
	check.False(sid.IsSet())
	check.NoError(sid.Assign(StringValue("valid")))
	check.Equal("valid", sid.Get())

	str := &String{}
	check.True(errors.Is(str.Assign(EnumValue(0, "red")), ErrKind))
	check.NoError(str.Assign(StringValue("")))
	check.True(str.IsSet())
}

func TestKindOnNilField(t *testing.T) {
	check := assert.New(t)
	check.Equal(KindEnum, (*Enum[color])(nil).Kind())
	check.Equal("Color", (*Enum[color])(nil).Table().Name())
	check.Equal(KindString, (*SId)(nil).Kind())
	check.Equal(KindDouble, (*Double)(nil).Kind())
}
