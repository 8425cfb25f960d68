package distrib

import (
	"github.com/andaru/sbmlbind/sbml"
	"github.com/andaru/sbmlbind/sbmlerr"
	"github.com/andaru/sbmlbind/schema"
	"github.com/andaru/sbmlbind/xmlutil"
)

// Distribution is the state common to all distributions.
type Distribution struct {
	sbml.Base
}

// DiscreteUnivariateDistribution is a distribution over the integers which
// may be truncated.
type DiscreteUnivariateDistribution struct {
	Distribution
	lower, upper *UncertBound
}

type discreter interface {
	discrete() *DiscreteUnivariateDistribution
}

func (d *DiscreteUnivariateDistribution) discrete() *DiscreteUnivariateDistribution { return d }

func dud(e schema.Element) *DiscreteUnivariateDistribution { return e.(discreter).discrete() }

var (
	distributionTrait = schema.NewTrait("Distribution")

	discreteUnivariateTrait = schema.NewTrait("DiscreteUnivariateDistribution",
		schema.Child("truncationLowerBound",
			func(e schema.Element) **UncertBound { return &dud(e).lower }, NewTruncationLowerBound),
		schema.Child("truncationUpperBound",
			func(e schema.Element) **UncertBound { return &dud(e).upper }, NewTruncationUpperBound))
)

// TruncationLowerBound returns the lower truncation bound, or nil.
func (d *DiscreteUnivariateDistribution) TruncationLowerBound() *UncertBound { return d.lower }

// TruncationUpperBound returns the upper truncation bound, or nil.
func (d *DiscreteUnivariateDistribution) TruncationUpperBound() *UncertBound { return d.upper }

// SetTruncationLowerBound sets the lower truncation bound. A nil bound
// removes it.
func (d *DiscreteUnivariateDistribution) SetTruncationLowerBound(b *UncertBound) error {
	return d.setBound("truncationLowerBound", b)
}

// SetTruncationUpperBound sets the upper truncation bound. A nil bound
// removes it.
func (d *DiscreteUnivariateDistribution) SetTruncationUpperBound(b *UncertBound) error {
	return d.setBound("truncationUpperBound", b)
}

func (d *DiscreteUnivariateDistribution) setBound(name string, b *UncertBound) error {
	return schema.SetChild(d.Self(), name, b)
}

// CreateTruncationLowerBound creates, attaches and returns a new lower
// truncation bound.
func (d *DiscreteUnivariateDistribution) CreateTruncationLowerBound() *UncertBound {
	b := NewTruncationLowerBound(d.Namespaces())
	_ = schema.SetChild(d.Self(), "truncationLowerBound", b)
	return b
}

// CreateTruncationUpperBound creates, attaches and returns a new upper
// truncation bound.
func (d *DiscreteUnivariateDistribution) CreateTruncationUpperBound() *UncertBound {
	b := NewTruncationUpperBound(d.Namespaces())
	_ = schema.SetChild(d.Self(), "truncationUpperBound", b)
	return b
}

func (d *DiscreteUnivariateDistribution) UnsetTruncationLowerBound() error {
	return schema.SetChild(d.Self(), "truncationLowerBound", nil)
}

func (d *DiscreteUnivariateDistribution) UnsetTruncationUpperBound() error {
	return schema.SetChild(d.Self(), "truncationUpperBound", nil)
}

// BinomialDistribution is the distribution of successes in a number of
// trials, each with the same probability of success.
type BinomialDistribution struct {
	DiscreteUnivariateDistribution
	numberOfTrials       *UncertValue
	probabilityOfSuccess *UncertValue
}

// BernoulliDistribution is the distribution of a single trial.
type BernoulliDistribution struct {
	Distribution
	probabilityOfSuccess *UncertValue
}

var (
	binomialClass = schema.NewClass(PackageName, "binomialDistribution", TypeBinomialDistribution,
		schema.Traits(sbml.SBase, sbml.IDL3V1(), sbml.NameL3V1(), distributionTrait, discreteUnivariateTrait,
			schema.NewTrait("BinomialDistribution",
				schema.Child("numberOfTrials",
					func(e schema.Element) **UncertValue { return &e.(*BinomialDistribution).numberOfTrials },
					NewNumberOfTrials,
					schema.Required(), schema.Code(sbmlerr.DistribBinomialDistributionOneNumberOfTrials)),
				schema.Child("probabilityOfSuccess",
					func(e schema.Element) **UncertValue { return &e.(*BinomialDistribution).probabilityOfSuccess },
					NewProbabilityOfSuccess,
					schema.Required(), schema.Code(sbmlerr.DistribBinomialDistributionOneProbability)))),
		schema.WithCodes(schema.Codes{
			AllowedAttributes:     sbmlerr.DistribBinomialDistributionAllowedAttributes,
			AllowedCoreAttributes: sbmlerr.DistribBinomialDistributionAllowedCoreAttributes,
			AllowedElements:       sbmlerr.DistribBinomialDistributionAllowedElements,
		}),
		schema.WithFactory(func(_ *schema.Class, ns xmlutil.Namespaces) schema.Element { return NewBinomialDistribution(ns) }))

	bernoulliClass = schema.NewClass(PackageName, "bernoulliDistribution", TypeBernoulliDistribution,
		schema.Traits(sbml.SBase, sbml.IDL3V1(), sbml.NameL3V1(), distributionTrait,
			schema.NewTrait("BernoulliDistribution",
				schema.Child("probabilityOfSuccess",
					func(e schema.Element) **UncertValue { return &e.(*BernoulliDistribution).probabilityOfSuccess },
					NewProbabilityOfSuccess,
					schema.Required(), schema.Code(sbmlerr.DistribBernoulliDistributionOneProbability)))),
		schema.WithCodes(schema.Codes{
			AllowedAttributes:     sbmlerr.DistribBernoulliDistributionAllowedAttributes,
			AllowedCoreAttributes: sbmlerr.DistribBernoulliDistributionAllowedCoreAttributes,
			AllowedElements:       sbmlerr.DistribBernoulliDistributionAllowedElements,
		}),
		schema.WithFactory(func(_ *schema.Class, ns xmlutil.Namespaces) schema.Element { return NewBernoulliDistribution(ns) }))
)

func init() {
	schema.Register(
		numberOfTrialsClass, probabilityOfSuccessClass,
		truncationLowerBoundClass, truncationUpperBoundClass,
		binomialClass, bernoulliClass)
}

// NewBinomialDistribution returns a new binomialDistribution at ns.
func NewBinomialDistribution(ns xmlutil.Namespaces) *BinomialDistribution {
	d := &BinomialDistribution{}
	d.Init(d, ns)
	return d
}

func (d *BinomialDistribution) Class() *schema.Class { return binomialClass }
func (d *BinomialDistribution) Clone() *BinomialDistribution {
	return schema.Clone(d).(*BinomialDistribution)
}

func (d *BinomialDistribution) NumberOfTrials() *UncertValue       { return d.numberOfTrials }
func (d *BinomialDistribution) ProbabilityOfSuccess() *UncertValue { return d.probabilityOfSuccess }

// SetNumberOfTrials sets the number of trials, which must be a
// numberOfTrials element.
func (d *BinomialDistribution) SetNumberOfTrials(v *UncertValue) error {
	return setValue(d, "numberOfTrials", v)
}

// SetProbabilityOfSuccess sets the probability of success, which must be a
// probabilityOfSuccess element.
func (d *BinomialDistribution) SetProbabilityOfSuccess(v *UncertValue) error {
	return setValue(d, "probabilityOfSuccess", v)
}

func (d *BinomialDistribution) CreateNumberOfTrials() *UncertValue {
	v := NewNumberOfTrials(d.Namespaces())
	_ = d.SetNumberOfTrials(v)
	return v
}

func (d *BinomialDistribution) CreateProbabilityOfSuccess() *UncertValue {
	v := NewProbabilityOfSuccess(d.Namespaces())
	_ = d.SetProbabilityOfSuccess(v)
	return v
}

func (d *BinomialDistribution) UnsetNumberOfTrials() error { return setValue(d, "numberOfTrials", nil) }
func (d *BinomialDistribution) UnsetProbabilityOfSuccess() error {
	return setValue(d, "probabilityOfSuccess", nil)
}

// NewBernoulliDistribution returns a new bernoulliDistribution at ns.
func NewBernoulliDistribution(ns xmlutil.Namespaces) *BernoulliDistribution {
	d := &BernoulliDistribution{}
	d.Init(d, ns)
	return d
}

func (d *BernoulliDistribution) Class() *schema.Class { return bernoulliClass }
func (d *BernoulliDistribution) Clone() *BernoulliDistribution {
	return schema.Clone(d).(*BernoulliDistribution)
}

func (d *BernoulliDistribution) ProbabilityOfSuccess() *UncertValue { return d.probabilityOfSuccess }

func (d *BernoulliDistribution) SetProbabilityOfSuccess(v *UncertValue) error {
	return setValue(d, "probabilityOfSuccess", v)
}

func (d *BernoulliDistribution) CreateProbabilityOfSuccess() *UncertValue {
	v := NewProbabilityOfSuccess(d.Namespaces())
	_ = d.SetProbabilityOfSuccess(v)
	return v
}

func (d *BernoulliDistribution) UnsetProbabilityOfSuccess() error {
	return setValue(d, "probabilityOfSuccess", nil)
}

func setValue(d schema.Element, name string, v *UncertValue) error {
	return schema.SetChild(d, name, v)
}
