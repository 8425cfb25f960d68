package attr

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// IsSId returns true if s matches the SBML SId syntax:
// (letter | '_') (letter | digit | '_')*
func IsSId(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case i > 0 && '0' <= c && c <= '9':
		default:
			return false
		}
	}
	return true
}

// IsNCName returns true if s is an XML non-colonized name, the syntax of
// the XML ID type.
func IsNCName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i == 0:
			return false
		case r == '-' || r == '.' || unicode.IsDigit(r),
			unicode.Is(unicode.Mn, r), unicode.Is(unicode.Mc, r),
			unicode.Is(unicode.Lm, r), unicode.Is(unicode.Nl, r),
			r == '·':
		default:
			return false
		}
	}
	return true
}

// SId is an SBML identifier attribute (also used for SIdRef values)
type SId struct{ String }

func (f *SId) Kind() Kind { return KindString }

// Set stores v if it has valid SId syntax.
func (f *SId) Set(v string) error {
	switch {
	case v == "":
		return ErrEmpty
	case !IsSId(v):
		return errors.Wrapf(ErrSyntax, "%q is not a valid SId", v)
	}
	f.String.Set(v)
	return nil
}

func (f *SId) Assign(v Value) error {
	if v.Kind() != KindString {
		return kindError(KindString, v.Kind())
	}
	return f.Set(v.s)
}

func (f *SId) Parse(s string) error {
	f.Unset()
	return f.Set(strings.TrimSpace(s))
}

// ID is an XML ID attribute, used for metaid
type ID struct{ String }

func (f *ID) Kind() Kind { return KindString }

// Set stores v if it has valid XML ID syntax.
func (f *ID) Set(v string) error {
	switch {
	case v == "":
		return ErrEmpty
	case !IsNCName(v):
		return errors.Wrapf(ErrSyntax, "%q is not a valid XML ID", v)
	}
	f.String.Set(v)
	return nil
}

func (f *ID) Assign(v Value) error {
	if v.Kind() != KindString {
		return kindError(KindString, v.Kind())
	}
	return f.Set(v.s)
}

func (f *ID) Parse(s string) error {
	f.Unset()
	return f.Set(strings.TrimSpace(s))
}

// MaxSBOTerm is the largest SBO term number.
const MaxSBOTerm = 9999999

// SBOTerm is an sboTerm attribute, written SBO:nnnnnnn and stored as the
// term number.
type SBOTerm struct {
	v   int
	set bool
}

func (f *SBOTerm) Kind() Kind     { return KindString }
func (f *SBOTerm) IsSet() bool    { return f.set }
func (f *SBOTerm) Unset()         { *f = SBOTerm{} }
func (f *SBOTerm) Format() string { return FormatSBOTerm(f.v) }

// Get returns the term number, or -1 when unset.
func (f *SBOTerm) Get() int {
	if !f.set {
		return -1
	}
	return f.v
}

// Value returns the term in its SBO:nnnnnnn form.
func (f *SBOTerm) Value() Value {
	if !f.set {
		return StringValue("")
	}
	return StringValue(f.Format())
}

// Set stores the term number n.
func (f *SBOTerm) Set(n int) error {
	if n < 0 || n > MaxSBOTerm {
		return errors.Wrapf(ErrRange, "SBO term %d", n)
	}
	f.v, f.set = n, true
	return nil
}

// Assign accepts the SBO:nnnnnnn string form or an Int term number.
func (f *SBOTerm) Assign(v Value) error {
	switch v.Kind() {
	case KindInt:
		return f.Set(v.i)
	case KindString:
		return f.Parse(v.s)
	}
	return kindError(KindString, v.Kind())
}

func (f *SBOTerm) Parse(s string) error {
	f.Unset()
	n, err := ParseSBOTerm(s)
	if err != nil {
		return err
	}
	return f.Set(n)
}

// ParseSBOTerm parses an SBO:nnnnnnn term reference.
func ParseSBOTerm(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmpty
	}
	digits := strings.TrimPrefix(s, "SBO:")
	if len(digits) != 7 || digits == s {
		return 0, errors.Wrapf(ErrSyntax, "%q is not a valid SBO term", s)
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return 0, errors.Wrapf(ErrSyntax, "%q is not a valid SBO term", s)
	}
	return n, nil
}

// FormatSBOTerm formats term number n as SBO:nnnnnnn.
func FormatSBOTerm(n int) string { return fmt.Sprintf("SBO:%07d", n) }
