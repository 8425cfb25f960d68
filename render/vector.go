package render

import (
	"strconv"
	"strings"

	"github.com/andaru/sbmlbind/attr"
	"github.com/pkg/errors"
)

// RelAbsVector is a coordinate with an absolute and a relative (percent)
// part, written "10", "50%" or "10+50%".
type RelAbsVector struct {
	abs, rel float64
	set      bool
}

func (v *RelAbsVector) Kind() attr.Kind { return attr.KindString }
func (v *RelAbsVector) IsSet() bool     { return v.set }
func (v *RelAbsVector) Unset()          { *v = RelAbsVector{} }
func (v *RelAbsVector) Abs() float64    { return v.abs }
func (v *RelAbsVector) Rel() float64    { return v.rel }

// Set stores the absolute and relative parts.
func (v *RelAbsVector) Set(abs, rel float64) { v.abs, v.rel, v.set = abs, rel, true }

func (v *RelAbsVector) Value() attr.Value {
	if !v.set {
		return attr.StringValue("")
	}
	return attr.StringValue(v.Format())
}

func (v *RelAbsVector) Format() string {
	switch {
	case v.rel == 0:
		return formatFloat(v.abs)
	case v.abs == 0:
		return formatFloat(v.rel) + "%"
	case v.rel < 0:
		return formatFloat(v.abs) + formatFloat(v.rel) + "%"
	}
	return formatFloat(v.abs) + "+" + formatFloat(v.rel) + "%"
}

// Assign accepts the string form, or a Double absolute value.
func (v *RelAbsVector) Assign(val attr.Value) error {
	if val.Kind() == attr.KindDouble {
		d, _ := val.AsDouble()
		v.Set(d, 0)
		return nil
	}
	s, err := val.AsString()
	if err != nil {
		return err
	}
	abs, rel, err := ParseRelAbsVector(s)
	if err != nil {
		return err
	}
	v.Set(abs, rel)
	return nil
}

func (v *RelAbsVector) Parse(s string) error {
	v.Unset()
	abs, rel, err := ParseRelAbsVector(s)
	if err != nil {
		return err
	}
	v.Set(abs, rel)
	return nil
}

// ParseRelAbsVector parses the absolute and relative parts of s.
func ParseRelAbsVector(s string) (abs, rel float64, err error) {
	s = strings.Join(strings.Fields(s), "")
	if s == "" {
		return 0, 0, attr.ErrEmpty
	}
	if !strings.HasSuffix(s, "%") {
		abs, err = parseFloat(s)
		return abs, 0, err
	}
	body := strings.TrimSuffix(s, "%")
	split := 0
	for i := len(body) - 1; i > 0; i-- {
		if c := body[i]; (c == '+' || c == '-') && body[i-1] != 'e' && body[i-1] != 'E' {
			split = i
			break
		}
	}
	if split > 0 {
		if abs, err = parseFloat(body[:split]); err != nil {
			return 0, 0, err
		}
	}
	if rel, err = parseFloat(body[split:]); err != nil {
		return 0, 0, err
	}
	return abs, rel, nil
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(attr.ErrSyntax, "%q is not a valid RelAbsVector", s)
	}
	return f, nil
}

func formatFloat(f float64) string { return attr.FormatDouble(f) }

// DashArray is a stroke-dasharray attribute: comma separated dash and gap
// lengths.
type DashArray struct {
	v   []uint
	set bool
}

func (d *DashArray) Kind() attr.Kind { return attr.KindString }
func (d *DashArray) IsSet() bool     { return d.set }
func (d *DashArray) Unset()          { *d = DashArray{} }
func (d *DashArray) Get() []uint     { return append([]uint(nil), d.v...) }

func (d *DashArray) Set(v []uint) { d.v, d.set = append([]uint(nil), v...), true }

func (d *DashArray) Value() attr.Value {
	if !d.set {
		return attr.StringValue("")
	}
	return attr.StringValue(d.Format())
}

func (d *DashArray) Format() string {
	parts := make([]string, len(d.v))
	for i, n := range d.v {
		parts[i] = strconv.FormatUint(uint64(n), 10)
	}
	return strings.Join(parts, ",")
}

func (d *DashArray) Assign(v attr.Value) error {
	s, err := v.AsString()
	if err != nil {
		return err
	}
	dashes, err := parseDashes(s)
	if err != nil {
		return err
	}
	d.Set(dashes)
	return nil
}

func (d *DashArray) Parse(s string) error {
	d.Unset()
	dashes, err := parseDashes(s)
	if err != nil {
		return err
	}
	d.Set(dashes)
	return nil
}

func parseDashes(s string) ([]uint, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' || r == '\n' })
	if len(fields) == 0 {
		return nil, attr.ErrEmpty
	}
	out := make([]uint, len(fields))
	for i, f := range fields {
		n, err := strconv.ParseUint(f, 10, strconv.IntSize)
		if err != nil {
			return nil, errors.Wrapf(attr.ErrSyntax, "%q is not a valid dash length", f)
		}
		out[i] = uint(n)
	}
	return out, nil
}
