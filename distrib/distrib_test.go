package distrib

import (
	"bytes"
	"strings"
	"testing"

	"github.com/andaru/sbmlbind/attr"
	"github.com/andaru/sbmlbind/sbmlerr"
	"github.com/andaru/sbmlbind/schema"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

const distribURI = "http://www.sbml.org/sbml/level3/version1/distrib/version1"

func read(t *testing.T, doc string) (schema.Element, []sbmlerr.Code) {
	t.Helper()
	r := schema.NewReader(strings.NewReader(doc))
	e, err := r.ReadRoot(Namespaces)
	assert.NoError(t, err)
	var codes []sbmlerr.Code
	for _, err := range r.Log().Errors() {
		codes = append(codes, err.Code)
	}
	return e, codes
}

func TestBinomialRead(t *testing.T) {
	check := assert.New(t)
	e, codes := read(t, `<binomialDistribution xmlns="`+distribURI+`" id="b">
  <numberOfTrials value="10"/>
  <probabilityOfSuccess var="p" units="dimensionless"/>
  <truncationUpperBound value="8" inclusive="true"/>
</binomialDistribution>`)
	check.Empty(codes)
	d, ok := e.(*BinomialDistribution)
	if !check.True(ok) {
		return
	}
	check.Equal("b", d.Id())
	check.Equal(10.0, d.NumberOfTrials().Value())
	check.Equal("numberOfTrials", d.NumberOfTrials().ElementName())
	check.Equal(TypeNumberOfTrials, d.NumberOfTrials().TypeCode())
	check.False(d.ProbabilityOfSuccess().IsSetValue())
	check.Equal("p", d.ProbabilityOfSuccess().Var())
	check.Equal("dimensionless", d.ProbabilityOfSuccess().Units())
	check.Nil(d.TruncationLowerBound())
	if ub := d.TruncationUpperBound(); check.NotNil(ub) {
		check.True(ub.Inclusive())
		check.Equal(8.0, ub.Value())
		check.Equal(schema.Element(d), ub.Parent())
	}
	check.True(d.HasRequiredElements())
	check.Equal(schema.Element(d), d.ElementBySId("b"))
	check.Nil(d.ElementBySId("missing"))
}

const (
	binomialHead  = `<binomialDistribution><numberOfTrials value="3"/><probabilityOfSuccess value="0.5"/>`
	bernoulliHead = `<bernoulliDistribution><probabilityOfSuccess value="0.5"/>`
)

func TestDiagnostics(t *testing.T) {
	for _, tc := range []struct {
		name  string
		doc   string
		codes []sbmlerr.Code
	}{
		{
			name:  "missing probability",
			doc:   `<binomialDistribution><numberOfTrials value="3"/></binomialDistribution>`,
			codes: []sbmlerr.Code{sbmlerr.DistribBinomialDistributionOneProbability},
		},
		{
			name:  "missing everything",
			doc:   `<bernoulliDistribution/>`,
			codes: []sbmlerr.Code{sbmlerr.DistribBernoulliDistributionOneProbability},
		},
		{
			name:  "bad value",
			doc:   `<bernoulliDistribution><probabilityOfSuccess value="half"/></bernoulliDistribution>`,
			codes: []sbmlerr.Code{sbmlerr.DistribUncertValueValueMustBeDouble},
		},
		{
			name:  "bad units",
			doc:   `<bernoulliDistribution><probabilityOfSuccess units="1m"/></bernoulliDistribution>`,
			codes: []sbmlerr.Code{sbmlerr.DistribUncertValueUnitsMustBeUnitSId},
		},
		{
			name:  "bound without inclusive",
			doc:   binomialHead + `<truncationLowerBound value="1"/></binomialDistribution>`,
			codes: []sbmlerr.Code{sbmlerr.DistribUncertBoundAllowedAttributes},
		},
		{
			name:  "bad inclusive",
			doc:   binomialHead + `<truncationLowerBound value="1" inclusive="maybe"/></binomialDistribution>`,
			codes: []sbmlerr.Code{sbmlerr.DistribUncertBoundInclusiveMustBeBoolean},
		},
		{
			name:  "unknown attribute",
			doc:   `<bernoulliDistribution mean="3"><probabilityOfSuccess value="0.5"/></bernoulliDistribution>`,
			codes: []sbmlerr.Code{sbmlerr.DistribBernoulliDistributionAllowedAttributes},
		},
		{
			name:  "truncation on bernoulli",
			doc:   bernoulliHead + `<truncationLowerBound value="1" inclusive="true"/></bernoulliDistribution>`,
			codes: []sbmlerr.Code{sbmlerr.DistribBernoulliDistributionAllowedElements},
		},
		{
			name:  "child of uncert value",
			doc:   `<bernoulliDistribution><probabilityOfSuccess><numberOfTrials/></probabilityOfSuccess></bernoulliDistribution>`,
			codes: []sbmlerr.Code{sbmlerr.DistribUncertValueAllowedElements},
		},
		{
			name:  "duplicate",
			doc:   bernoulliHead + `<probabilityOfSuccess value="0.6"/></bernoulliDistribution>`,
			codes: []sbmlerr.Code{sbmlerr.DistribBernoulliDistributionOneProbability},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, codes := read(t, tc.doc)
			assert.Equal(t, tc.codes, codes)
		})
	}
}

func TestBinomialWrite(t *testing.T) {
	check := assert.New(t)
	d := NewBinomialDistribution(Namespaces)
	check.False(d.HasRequiredElements())
	d.CreateNumberOfTrials().SetValue(1000000)
	p := d.CreateProbabilityOfSuccess()
	p.SetValue(0.125)
	lb := d.CreateTruncationLowerBound()
	lb.SetValue(2)
	lb.SetInclusive(false)
	check.True(d.HasRequiredElements())

	var buf bytes.Buffer
	check.NoError(schema.NewWriter(&buf).WriteElement(d))
	check.Equal(`<binomialDistribution xmlns="`+distribURI+`">`+
		`<truncationLowerBound value="2" inclusive="false"></truncationLowerBound>`+
		`<numberOfTrials value="1000000"></numberOfTrials>`+
		`<probabilityOfSuccess value="0.125"></probabilityOfSuccess>`+
		`</binomialDistribution>`, buf.String())

	dup := d.Clone()
	check.Equal(0.125, dup.ProbabilityOfSuccess().Value())
	check.Equal("probabilityOfSuccess", dup.ProbabilityOfSuccess().ElementName())
	check.False(dup.TruncationLowerBound().Inclusive())
	check.True(dup.TruncationLowerBound().IsSetInclusive())
	check.Equal(schema.Element(dup), dup.NumberOfTrials().Parent())
}

func TestSetChildren(t *testing.T) {
	check := assert.New(t)
	d := NewBinomialDistribution(Namespaces)

	// an UncertValue may only fill the slot its element name matches
	err := d.SetNumberOfTrials(NewProbabilityOfSuccess(Namespaces))
	check.True(errors.Is(err, sbmlerr.ErrInvalidObject), "got %v", err)
	check.Nil(d.NumberOfTrials())

	n := NewNumberOfTrials(Namespaces)
	check.NoError(d.SetNumberOfTrials(n))
	check.Equal(schema.Element(d), n.Parent())

	other := NewBinomialDistribution(Namespaces)
	err = other.SetNumberOfTrials(n)
	check.True(errors.Is(err, sbmlerr.ErrOperationFailed), "got %v", err)

	check.NoError(d.UnsetNumberOfTrials())
	check.Nil(d.NumberOfTrials())
	check.Nil(n.Parent())
	check.NoError(other.SetNumberOfTrials(n))

	err = d.SetProbabilityOfSuccess(NewProbabilityOfSuccess(NewNamespaces(3, 2, 1)))
	check.True(errors.Is(err, sbmlerr.ErrVersionMismatch), "got %v", err)

	b := NewBernoulliDistribution(Namespaces)
	check.NoError(b.SetProbabilityOfSuccess(nil))
	b.CreateProbabilityOfSuccess().SetValue(1)
	check.True(b.HasRequiredElements())
	check.NoError(b.UnsetProbabilityOfSuccess())
	check.False(b.HasRequiredElements())

	ub := d.CreateTruncationUpperBound()
	check.NoError(ub.SetVar("k"))
	check.Error(ub.SetUnits("not an id"))
	check.NoError(d.SetTruncationUpperBound(nil))
	check.Nil(d.TruncationUpperBound())
	check.NoError(d.UnsetTruncationLowerBound())
}

func TestFacade(t *testing.T) {
	check := assert.New(t)
	v := NewProbabilityOfSuccess(Namespaces)
	check.Equal([]string{"metaid", "sboTerm", "id", "name", "value", "var", "units"},
		v.Class().ExpectedAttributes(Namespaces))
	check.NoError(schema.SetAttribute(v, "value", attr.DoubleValue(0.3)))
	check.Equal(0.3, v.Value())
	check.NoError(v.UnsetValue())
	check.NoError(v.UnsetValue())
	check.False(v.IsSetValue())

	b := NewTruncationUpperBound(Namespaces)
	check.Equal([]string{"metaid", "sboTerm", "id", "name", "value", "var", "units", "inclusive"},
		b.Class().ExpectedAttributes(Namespaces))
	check.False(b.HasRequiredAttributes())
	b.SetInclusive(true)
	check.True(b.HasRequiredAttributes())
}
