package sbmlerr

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
)

// Severity represents the diagnostic severity enumerate
type Severity int

const (
	// SeverityInfo is an informational message
	SeverityInfo Severity = iota
	// SeverityWarning indicates a questionable but legal construct
	SeverityWarning
	// SeverityError indicates an invalid construct; reading continues
	SeverityError
	// SeverityFatal indicates the document could not be read further
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityFatal:
		return "fatal"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

func (s Severity) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Severity) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "info":
		*s = SeverityInfo
	case "warning":
		*s = SeverityWarning
	case "error":
		*s = SeverityError
	case "fatal":
		*s = SeverityFatal
	default:
		return errors.New("unknown value")
	}
	return nil
}

// Category represents the diagnostic category enumerate
type Category int

const (
	// CategoryInternal is an internal library failure
	CategoryInternal Category = iota
	// CategoryXML is an XML layer problem (well-formedness, encoding)
	CategoryXML
	// CategorySchema is a structural problem: unknown or missing
	// attributes and elements, bad attribute values
	CategorySchema
	// CategoryGeneralConsistency covers general validation rules
	CategoryGeneralConsistency
	// CategoryIdentifierConsistency covers identifier syntax and uniqueness
	CategoryIdentifierConsistency
	// CategorySBOConsistency covers SBO term usage
	CategorySBOConsistency
	// CategoryModelingPractice covers recommendations
	CategoryModelingPractice
)

var categoryNames = []string{
	"internal",
	"xml",
	"schema",
	"general-consistency",
	"identifier-consistency",
	"sbo-consistency",
	"modeling-practice",
}

func (c Category) String() string {
	if c >= 0 && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

func (c Category) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Category) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	for i, name := range categoryNames {
		if name == string(b) {
			*c = Category(i)
			return nil
		}
	}
	return errors.New("unknown value")
}

// Error is a diagnostic appended to a document's Log.
//
// The metadata fields (Severity, Category, Package, ShortMessage) are
// filled from the error table entry for Code by New.
type Error struct {
	XMLName      xml.Name `xml:"diagnostic" json:"-" yaml:"-"`
	Code         Code     `xml:"code,attr" json:"code" yaml:"code"`
	Severity     Severity `xml:"severity,attr" json:"severity" yaml:"severity"`
	Category     Category `xml:"category,attr" json:"category" yaml:"category"`
	Package      string   `xml:"package,attr,omitempty" json:"package,omitempty" yaml:"package,omitempty"`
	Line         int      `xml:"line,attr,omitempty" json:"line,omitempty" yaml:"line,omitempty"`
	Column       int      `xml:"column,attr,omitempty" json:"column,omitempty" yaml:"column,omitempty"`
	ShortMessage string   `xml:"short-message,omitempty" json:"short-message,omitempty" yaml:"short-message,omitempty"`
	Message      string   `xml:"message,omitempty" json:"message,omitempty" yaml:"message,omitempty"`
}

// New returns a diagnostic for code. Codes missing from the tables
// produce an internal error diagnostic carrying the unknown code.
func New(code Code, opts ...Option) *Error {
	e := &Error{Code: code}
	if entry, ok := Lookup(code); ok {
		e.Severity = entry.Severity
		e.Category = entry.Category
		e.ShortMessage = entry.ShortMessage
		e.Package = entry.Package
	} else {
		e.Severity = SeverityError
		e.Category = CategoryInternal
		e.ShortMessage = fmt.Sprintf("unknown diagnostic code %d", code)
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e Error) Error() string {
	s := fmt.Sprintf("%s %d", e.Severity, e.Code)
	if e.Package != "" {
		s += " (" + e.Package + ")"
	}
	if e.Line > 0 && e.Column > 0 {
		s += fmt.Sprintf(" at line %d, column %d", e.Line, e.Column)
	}
	switch {
	case e.Message != "":
		s += ": " + e.Message
	case e.ShortMessage != "":
		s += ": " + e.ShortMessage
	}
	return s
}

// IsSevere returns true if the diagnostic is an error or fatal error.
func (e Error) IsSevere() bool { return e.Severity >= SeverityError }
