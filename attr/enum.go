package attr

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// EnumTable is the ordered list of canonical tokens of an enumeration. The
// code of a token is its index; Invalid() is one past the last token.
type EnumTable struct {
	name   string
	tokens []string
	index  map[string]int
}

// NewEnumTable returns a table for the named enumeration. It panics on
// duplicate or empty tokens.
func NewEnumTable(name string, tokens ...string) *EnumTable {
	t := &EnumTable{name: name, tokens: tokens, index: make(map[string]int, len(tokens))}
	for i, tok := range tokens {
		if _, dup := t.index[tok]; dup || tok == "" {
			panic(fmt.Sprintf("attr: bad token %q in enumeration %s", tok, name))
		}
		t.index[tok] = i
	}
	return t
}

// Name returns the enumeration name
func (t *EnumTable) Name() string { return t.name }

// Invalid returns the sentinel code for tokens outside the table.
func (t *EnumTable) Invalid() int { return len(t.tokens) }

// IsValid returns true if code names a token of the table.
func (t *EnumTable) IsValid(code int) bool { return code >= 0 && code < len(t.tokens) }

// FromString returns the code of token s, or Invalid().
func (t *EnumTable) FromString(s string) int {
	if code, ok := t.index[s]; ok {
		return code
	}
	return t.Invalid()
}

// ToString returns the canonical token of code, or the empty string for
// codes outside the table.
func (t *EnumTable) ToString(code int) string {
	if !t.IsValid(code) {
		return ""
	}
	return t.tokens[code]
}

// Tokens returns a copy of the canonical tokens, in code order.
func (t *EnumTable) Tokens() []string { return append([]string(nil), t.tokens...) }

// EnumType is implemented by the integer types of generated enumerations.
// Table must not depend on the receiver's value.
type EnumType interface {
	~int
	Table() *EnumTable
}

// Enum is an enumerated attribute.
//
// Parsing a token outside the table leaves the field in the invalid state:
// IsSet reports false and Raw returns the rejected token.
type Enum[E EnumType] struct {
	code E
	raw  string
	set  bool
}

func (f *Enum[E]) Kind() Kind  { return KindEnum }
func (f *Enum[E]) IsSet() bool { return f.set }
func (f *Enum[E]) Unset()      { *f = Enum[E]{} }

// Table returns the enumeration's token table.
func (f *Enum[E]) Table() *EnumTable {
	var e E
	return e.Table()
}

// Get returns the stored code, or the table's invalid code when unset.
func (f *Enum[E]) Get() E {
	if !f.set {
		return E(f.Table().Invalid())
	}
	return f.code
}

// Raw returns the token rejected by the last Parse, if any.
func (f *Enum[E]) Raw() string { return f.raw }

// IsInvalid returns true if the last Parse saw a token outside the table.
func (f *Enum[E]) IsInvalid() bool { return !f.set && f.raw != "" }

// Set stores code e, which must name a token of the table.
func (f *Enum[E]) Set(e E) error {
	if !f.Table().IsValid(int(e)) {
		return errors.Wrapf(ErrRange, "%d is not a valid %s", int(e), f.Table().Name())
	}
	f.code, f.raw, f.set = e, "", true
	return nil
}

func (f *Enum[E]) Value() Value {
	code := int(f.Get())
	return EnumValue(code, f.Table().ToString(code))
}

func (f *Enum[E]) Format() string { return f.Table().ToString(int(f.code)) }

// Assign accepts Enum values and String tokens.
func (f *Enum[E]) Assign(v Value) error {
	switch v.Kind() {
	case KindEnum:
		return f.Set(E(v.i))
	case KindString:
		t := f.Table()
		code := t.FromString(v.s)
		if !t.IsValid(code) {
			return errors.Wrapf(ErrInvalidToken, "%q is not a valid %s", v.s, t.Name())
		}
		return f.Set(E(code))
	}
	return kindError(KindEnum, v.Kind())
}

// Parse stores the code of token s. Unknown tokens leave the field in
// the invalid state and return ErrInvalidToken.
func (f *Enum[E]) Parse(s string) error {
	f.Unset()
	s = strings.TrimSpace(s)
	if s == "" {
		return ErrEmpty
	}
	t := f.Table()
	code := t.FromString(s)
	if !t.IsValid(code) {
		f.code, f.raw = E(code), s
		return errors.Wrapf(ErrInvalidToken, "%q is not a valid %s", s, t.Name())
	}
	return f.Set(E(code))
}
