package sbml

import (
	"github.com/andaru/sbmlbind/attr"
	"github.com/andaru/sbmlbind/sbmlerr"
	"github.com/andaru/sbmlbind/schema"
	"github.com/andaru/sbmlbind/xmlutil"
	"github.com/pkg/errors"
)

// Core namespaces of the SBML Level 3 versions.
var (
	L3V1 = xmlutil.SBML(3, 1)
	L3V2 = xmlutil.SBML(3, 2)
)

// Base is the state every SBML element has: the SBase attributes.
// Element types embed Base and call Init from their constructor.
type Base struct {
	schema.Node
	metaid  attr.ID
	sboTerm attr.SBOTerm
	id      attr.SId
	name    attr.String
}

// SBaser is implemented by every SBML element.
type SBaser interface {
	schema.Element
	SBase() *Base
}

// SBase returns b.
func (b *Base) SBase() *Base { return b }

func base(e schema.Element) *Base { return e.(SBaser).SBase() }

// SBase holds the attributes of SBML's SBase. id and name moved to SBase
// in L3V2; in L3V1 classes declare them with IDL3V1 and NameL3V1.
var SBase = schema.NewCoreTrait("SBase",
	schema.Attr("metaid", func(e schema.Element) *attr.ID { return &base(e).metaid },
		schema.Code(sbmlerr.InvalidMetaidSyntax)),
	schema.Attr("sboTerm", func(e schema.Element) *attr.SBOTerm { return &base(e).sboTerm },
		schema.Code(sbmlerr.InvalidSBOTermSyntax)),
	schema.Attr("id", func(e schema.Element) *attr.SId { return &base(e).id },
		schema.Since(3, 2), schema.Code(sbmlerr.InvalidIdSyntax)),
	schema.Attr("name", func(e schema.Element) *attr.String { return &base(e).name },
		schema.Since(3, 2)),
)

// IDL3V1 declares the id attribute of classes that own one in L3V1.
// Options (e.g. Required, Code) apply to the binding.
func IDL3V1(opts ...schema.Option) *schema.Trait {
	opts = append([]schema.Option{schema.Only(3, 1), schema.Code(sbmlerr.InvalidIdSyntax)}, opts...)
	return schema.NewTrait("IdL3V1",
		schema.Attr("id", func(e schema.Element) *attr.SId { return &base(e).id }, opts...))
}

// NameL3V1 declares the name attribute of classes that own one in L3V1.
func NameL3V1(opts ...schema.Option) *schema.Trait {
	opts = append([]schema.Option{schema.Only(3, 1)}, opts...)
	return schema.NewTrait("NameL3V1",
		schema.Attr("name", func(e schema.Element) *attr.String { return &base(e).name }, opts...))
}

func (b *Base) accepts(name string) error {
	if b.Self().Class().Binding(name, b.Namespaces()) == nil {
		return errors.Wrapf(sbmlerr.ErrUnexpectedAttribute, "<%s> has no %s attribute at %s",
			b.ElementName(), name, b.Namespaces())
	}
	return nil
}

func (b *Base) MetaId() string           { return b.metaid.Get() }
func (b *Base) IsSetMetaId() bool        { return b.metaid.IsSet() }
func (b *Base) SetMetaId(v string) error { return b.metaid.Set(v) }
func (b *Base) UnsetMetaId() error       { b.metaid.Unset(); return nil }

// SBOTerm returns the SBO term number, or -1.
func (b *Base) SBOTerm() int { return b.sboTerm.Get() }

// SBOTermID returns the SBO term as SBO:nnnnnnn, or the empty string.
func (b *Base) SBOTermID() string {
	if !b.sboTerm.IsSet() {
		return ""
	}
	return b.sboTerm.Format()
}

func (b *Base) IsSetSBOTerm() bool     { return b.sboTerm.IsSet() }
func (b *Base) SetSBOTerm(n int) error { return b.sboTerm.Set(n) }
func (b *Base) UnsetSBOTerm() error    { b.sboTerm.Unset(); return nil }

// SetSBOTermID sets the SBO term from its SBO:nnnnnnn form.
func (b *Base) SetSBOTermID(s string) error {
	n, err := attr.ParseSBOTerm(s)
	if err != nil {
		return err
	}
	return b.sboTerm.Set(n)
}

func (b *Base) Id() string     { return b.id.Get() }
func (b *Base) IsSetId() bool  { return b.id.IsSet() }
func (b *Base) UnsetId() error { b.id.Unset(); return nil }

// SetId sets the id. It fails with ErrUnexpectedAttribute where the
// element has no id at its level and version.
func (b *Base) SetId(v string) error {
	if err := b.accepts("id"); err != nil {
		return err
	}
	return b.id.Set(v)
}

func (b *Base) Name() string     { return b.name.Get() }
func (b *Base) IsSetName() bool  { return b.name.IsSet() }
func (b *Base) UnsetName() error { b.name.Unset(); return nil }

// SetName sets the name. It fails with ErrUnexpectedAttribute where the
// element has no name at its level and version.
func (b *Base) SetName(v string) error {
	if err := b.accepts("name"); err != nil {
		return err
	}
	b.name.Set(v)
	return nil
}
