package sbml

import (
	"testing"

	"github.com/andaru/sbmlbind/attr"
	"github.com/andaru/sbmlbind/sbmlerr"
	"github.com/andaru/sbmlbind/schema"
	"github.com/andaru/sbmlbind/xmlutil"
	"github.com/stretchr/testify/assert"
)

type widget struct{ Base }

var widgetClass = schema.NewClass(xmlutil.PackageCore, "widget", 990001,
	schema.Traits(SBase, IDL3V1(), NameL3V1()),
	schema.WithFactory(func(_ *schema.Class, ns xmlutil.Namespaces) schema.Element { return newWidget(ns) }))

var listOfWidgetsClass = ListOfClass(xmlutil.PackageCore, "listOfWidgets", 990002, "widget", newWidget)

func newWidget(ns xmlutil.Namespaces) *widget {
	w := &widget{}
	w.Init(w, ns)
	return w
}

func (w *widget) Class() *schema.Class { return widgetClass }

func newWidgets(ns xmlutil.Namespaces) *ListOf[*widget] {
	return NewListOf(listOfWidgetsClass, ns, newWidget)
}

func TestExpectedAttributes(t *testing.T) {
	for _, tc := range []struct {
		name  string
		class *schema.Class
		ns    xmlutil.Namespaces
		want  []string
	}{
		{name: "widget L3V1", class: widgetClass, ns: L3V1, want: []string{"metaid", "sboTerm", "id", "name"}},
		{name: "widget L3V2", class: widgetClass, ns: L3V2, want: []string{"metaid", "sboTerm", "id", "name"}},
		{name: "list L3V1", class: listOfWidgetsClass, ns: L3V1, want: []string{"metaid", "sboTerm"}},
		{name: "list L3V2", class: listOfWidgetsClass, ns: L3V2, want: []string{"metaid", "sboTerm", "id", "name"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.class.ExpectedAttributes(tc.ns))
		})
	}
}

func TestBase(t *testing.T) {
	check := assert.New(t)
	w := newWidget(L3V1)

	check.False(w.IsSetId())
	check.NoError(w.SetId("w1"))
	check.Equal("w1", w.Id())
	check.Equal(sbmlerr.InvalidAttributeValue, sbmlerr.StatusOf(w.SetId("1w")))
	check.Equal("w1", w.Id())

	check.Equal(-1, w.SBOTerm())
	check.Equal("", w.SBOTermID())
	check.NoError(w.SetSBOTermID("SBO:0000236"))
	check.Equal(236, w.SBOTerm())
	check.Error(w.SetSBOTermID("SBO:12"))
	check.Equal("SBO:0000236", w.SBOTermID())

	check.NoError(w.SetMetaId("m1"))
	v, err := w.GetAttribute("metaid")
	check.NoError(err)
	check.Equal(attr.StringValue("m1"), v)

	check.NoError(w.UnsetName())
	check.NoError(w.UnsetName())
	check.False(w.IsSetName())

	l := newWidgets(L3V1)
	check.Equal(sbmlerr.UnexpectedAttribute, sbmlerr.StatusOf(l.SetId("l1")))
	check.Equal(sbmlerr.UnexpectedAttribute, sbmlerr.StatusOf(l.SetName("widgets")))
	l2 := newWidgets(L3V2)
	check.NoError(l2.SetId("l2"))

	var nilBase *Base
	check.False(nilBase.IsSetId())
}

func TestListOf(t *testing.T) {
	check := assert.New(t)
	l := newWidgets(L3V1)
	check.Equal(0, l.Len())
	check.Nil(l.Get(0))

	a := l.Create()
	check.NoError(a.SetId("a"))
	check.Equal(schema.Element(l), a.Parent())

	b := newWidget(L3V1)
	check.NoError(b.SetId("b"))
	check.NoError(l.Append(b))
	check.Equal(2, l.Len())
	check.Equal(b, l.GetBySId("b"))
	check.Equal(a, l.Get(0))
	check.Len(l.AllElements(), 2)
	check.Equal(schema.Element(b), l.ElementBySId("b"))

	dup := newWidget(L3V1)
	check.NoError(dup.SetId("a"))
	check.Equal(sbmlerr.DuplicateObjectID, sbmlerr.StatusOf(l.Append(dup)))
	check.Nil(dup.Parent())

	check.Equal(sbmlerr.VersionMismatch, sbmlerr.StatusOf(l.Append(newWidget(L3V2))))
	check.Equal(sbmlerr.LevelMismatch, sbmlerr.StatusOf(l.Append(newWidget(xmlutil.SBML(2, 4)))))
	check.Equal(sbmlerr.InvalidObject, sbmlerr.StatusOf(l.Append(nil)))

	other := newWidgets(L3V1)
	check.Equal(sbmlerr.OperationFailed, sbmlerr.StatusOf(other.Append(b)))

	removed := l.RemoveBySId("a")
	check.Equal(a, removed)
	check.Nil(removed.Parent())
	check.Equal(1, l.Len())
	check.Nil(l.Remove(5))
	check.Nil(l.RemoveBySId("zz"))

	var nilList *ListOf[*widget]
	check.Equal(0, nilList.Len())
	check.Nil(nilList.GetBySId("a"))
}

func TestListOfClone(t *testing.T) {
	check := assert.New(t)
	l := newWidgets(L3V1)
	check.NoError(l.Create().SetId("x"))
	check.NoError(l.SetMetaId("meta"))

	c, ok := schema.Clone(l).(*ListOf[*widget])
	check.True(ok)
	check.Equal(1, c.Len())
	check.Equal("x", c.Get(0).Id())
	check.Equal("meta", c.MetaId())
	check.Equal(schema.Element(c), c.Get(0).Parent())
	check.NotSame(l.Get(0), c.Get(0))
}
