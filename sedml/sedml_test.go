package sedml

import (
	"bytes"
	"strings"
	"testing"

	"github.com/andaru/sbmlbind/sbmlerr"
	"github.com/andaru/sbmlbind/schema"
	"github.com/andaru/sbmlbind/xmlutil"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

const sedmlURI = "http://sed-ml.org/sed-ml/level1/version3"

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

func TestModel(t *testing.T) {
	check := assert.New(t)
	e, codes := read(t, `<model xmlns="`+sedmlURI+`" id="m1" name="Model 1" language="urn:sedml:language:sbml" source="model.xml">
  <listOfChanges>
    <changeAttribute target="/sbml:sbml/sbml:model/@id" newValue="m2"/>
  </listOfChanges>
</model>`)
	check.Empty(codes)
	m, ok := e.(*Model)
	if !check.True(ok) {
		return
	}
	check.Equal("m1", m.Id())
	check.Equal("Model 1", m.Name())
	check.Equal("urn:sedml:language:sbml", m.Language())
	check.Equal("model.xml", m.Source())
	check.Equal(xmlutil.FamilySEDML, m.Namespaces().Family())
	if check.Equal(1, m.Changes().Len()) {
		c := m.Changes().Get(0)
		check.Equal("/sbml:sbml/sbml:model/@id", c.Target())
		check.Equal("m2", c.NewValue())
		check.Equal(schema.Element(m.Changes()), c.Parent())
	}
	check.Equal(TypeModel, m.TypeCode())
	check.True(m.HasRequiredAttributes())
}

func TestDiagnostics(t *testing.T) {
	for _, tc := range []struct {
		name  string
		doc   string
		codes []sbmlerr.Code
	}{
		{
			name:  "missing id",
			doc:   `<model source="a.xml"/>`,
			codes: []sbmlerr.Code{sbmlerr.SedmlSedModelAllowedAttributes},
		},
		{
			name:  "empty source",
			doc:   `<model id="m" source=""/>`,
			codes: []sbmlerr.Code{sbmlerr.SedmlSedModelSourceMustBeString},
		},
		{
			name:  "bad id",
			doc:   `<model id="1m" source="a.xml"/>`,
			codes: []sbmlerr.Code{sbmlerr.SedmlIdSyntaxRule},
		},
		{
			name:  "bad metaid",
			doc:   `<model metaid="#x" id="m" source="a.xml"/>`,
			codes: []sbmlerr.Code{sbmlerr.SedmlInvalidMetaidSyntax},
		},
		{
			name:  "unknown attribute",
			doc:   `<model id="m" source="a.xml" format="sbml"/>`,
			codes: []sbmlerr.Code{sbmlerr.SedmlSedModelAllowedAttributes},
		},
		{
			name:  "unknown child",
			doc:   `<model id="m" source="a.xml"><listOfSimulations/></model>`,
			codes: []sbmlerr.Code{sbmlerr.SedmlSedModelAllowedElements},
		},
		{
			name:  "unsupported change",
			doc:   `<model id="m" source="a.xml"><listOfChanges><removeXML target="/x"/></listOfChanges></model>`,
			codes: []sbmlerr.Code{sbmlerr.SedmlSedModelLOChangesAllowedCoreElements},
		},
		{
			name:  "change without new value",
			doc:   `<model id="m" source="a.xml"><listOfChanges><changeAttribute target="/x"/></listOfChanges></model>`,
			codes: []sbmlerr.Code{sbmlerr.SedmlChangeAttributeAllowedAttributes},
		},
		{
			name:  "list attribute",
			doc:   `<listOfChanges size="1"/>`,
			codes: []sbmlerr.Code{sbmlerr.SedmlSedModelLOChangesAllowedCoreAttributes},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, codes := read(t, tc.doc)
			assert.Equal(t, tc.codes, codes)
		})
	}
}

func TestWriteModel(t *testing.T) {
	check := assert.New(t)
	m := NewModel(Namespaces)
	check.NoError(m.SetId("m1"))
	m.SetSource("urn:miriam:biomodels.db:BIOMD0000000012")
	m.SetLanguage("urn:sedml:language:sbml")
	c := m.CreateChangeAttribute()
	c.SetTarget("/sbml:sbml/sbml:model/sbml:listOfParameters/sbml:parameter[@id='k']/@value")
	c.SetNewValue("0.5")

	var buf bytes.Buffer
	check.NoError(schema.NewWriter(&buf).WriteElement(m))
	check.Equal(`<model xmlns="`+sedmlURI+`" id="m1" language="urn:sedml:language:sbml" source="urn:miriam:biomodels.db:BIOMD0000000012">`+
		`<listOfChanges><changeAttribute target="/sbml:sbml/sbml:model/sbml:listOfParameters/sbml:parameter[@id=&#39;k&#39;]/@value" newValue="0.5"></changeAttribute></listOfChanges>`+
		`</model>`, buf.String())

	dup := m.Clone()
	check.Equal("0.5", dup.Changes().Get(0).NewValue())
	check.Equal(schema.Element(dup), dup.Changes().Parent())
}

func TestListOf(t *testing.T) {
	check := assert.New(t)
	l := NewListOfChanges(Namespaces)
	a := NewChangeAttribute(Namespaces)
	check.NoError(a.SetId("c1"))
	check.NoError(l.Append(a))
	b := NewChangeAttribute(Namespaces)
	check.NoError(b.SetId("c1"))
	err := l.Append(b)
	check.True(errors.Is(err, sbmlerr.ErrDuplicateObjectID), "got %v", err)
	check.Nil(b.Parent())
	check.True(errors.Is(l.Append(nil), sbmlerr.ErrInvalidObject))

	other := NewListOfChanges(Namespaces)
	err = other.Append(a)
	check.True(errors.Is(err, sbmlerr.ErrOperationFailed), "got %v", err)

	check.Equal(a, l.GetBySId("c1"))
	check.Nil(l.GetBySId("c2"))
	check.Equal(a, l.Remove(0))
	check.Nil(a.Parent())
	check.Nil(l.Remove(0))
	check.Equal(0, l.Len())
	check.NoError(other.Append(a))
}
