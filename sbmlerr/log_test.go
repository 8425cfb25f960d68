package sbmlerr

import (
	"encoding/json"
	"encoding/xml"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestReclassifyIsLocal(t *testing.T) {
	check := assert.New(t)
	log := NewLog()

	// an earlier sibling read left an unknown attribute diagnostic
	log.Report(UnknownPackageAttribute, WithPosition(1, 4), WithMessage("sibling"))
	mark := log.Len()
	log.Report(UnknownPackageAttribute, WithPosition(3, 7), WithMessage("Unknown attribute 'foo'"))
	log.Report(UnknownCoreAttribute, WithPosition(3, 7))
	log.Report(NotSchemaConformant, WithPosition(3, 9))

	n := log.Reclassify(mark, TestClassThreeAllowedAttributes, UnknownPackageAttribute)
	check.Equal(1, n)
	n = log.Reclassify(mark, TestClassThreeAllowedCoreAttributes, UnknownCoreAttribute)
	check.Equal(1, n)

	check.Equal(UnknownPackageAttribute, log.At(0).Code)
	check.Equal("sibling", log.At(0).Message)

	re := log.At(1)
	check.Equal(TestClassThreeAllowedAttributes, re.Code)
	check.Equal(3, re.Line)
	check.Equal(7, re.Column)
	check.Equal("Unknown attribute 'foo'", re.Message)
	check.Equal(PackageTest, re.Package)

	core := log.At(2)
	check.Equal(TestClassThreeAllowedCoreAttributes, core.Code)
	check.Equal(MustLookup(UnknownCoreAttribute).ShortMessage, core.Message)

	check.Equal(NotSchemaConformant, log.At(3).Code)
	check.Nil(log.At(4))
}

func TestLogCounts(t *testing.T) {
	check := assert.New(t)
	var nilLog *Log
	check.Equal(0, nilLog.Len())
	check.Equal(0, nilLog.Count(BadlyFormedXML))
	check.Nil(nilLog.Errors())

	log := NewLog()
	check.Equal(2, log.Add(New(FbcFluxBoundValueMustBeDouble), nil, New(BadlyFormedXML)))
	log.Report(TestUnknown, WithSeverity(SeverityWarning))
	check.Equal(3, log.Len())
	check.True(log.Contains(BadlyFormedXML))
	check.False(log.Contains(TestNSUndeclared))
	check.Equal(2, log.CountSeverity(SeverityError))
	check.Equal(1, log.CountSeverity(SeverityFatal))
	check.Len(log.Since(1), 2)
	check.Nil(log.Since(3))

	log.Clear()
	check.Equal(0, log.Len())
}

func TestError(t *testing.T) {
	for _, tc := range []struct {
		err *Error

		error string
		xml   string
		json  string
		yaml  string
	}{
		{
			err:   New(TestCategoryAllowedElements, WithPosition(2, 3), WithMessage("unexpected element bogus found in element category")),
			error: "error 9020303 (test) at line 2, column 3: unexpected element bogus found in element category",
			xml:   `<diagnostic code="9020303" severity="error" category="schema" package="test" line="2" column="3"><short-message>Elements allowed on &lt;category&gt;.</short-message><message>unexpected element bogus found in element category</message></diagnostic>`,
			json:  `{"code":9020303,"severity":"error","category":"schema","package":"test","line":2,"column":3,"short-message":"Elements allowed on \u003ccategory\u003e.","message":"unexpected element bogus found in element category"}`,
			yaml:  "code: 9020303\nseverity: error\ncategory: schema\npackage: test\nline: 2\ncolumn: 3\nshort-message: Elements allowed on <category>.\nmessage: unexpected element bogus found in element category\n",
		},
		{
			err:   New(BadlyFormedXML),
			error: "fatal 1006 (core): Badly formed XML",
			xml:   `<diagnostic code="1006" severity="fatal" category="xml" package="core"><short-message>Badly formed XML</short-message></diagnostic>`,
			json:  `{"code":1006,"severity":"fatal","category":"xml","package":"core","short-message":"Badly formed XML"}`,
			yaml:  "code: 1006\nseverity: fatal\ncategory: xml\npackage: core\nshort-message: Badly formed XML\n",
		},
		{
			err:   New(4242),
			error: "error 4242: unknown diagnostic code 4242",
			xml:   `<diagnostic code="4242" severity="error" category="internal"><short-message>unknown diagnostic code 4242</short-message></diagnostic>`,
			json:  `{"code":4242,"severity":"error","category":"internal","short-message":"unknown diagnostic code 4242"}`,
			yaml:  "code: 4242\nseverity: error\ncategory: internal\nshort-message: unknown diagnostic code 4242\n",
		},
	} {
		t.Run(tc.error, func(t *testing.T) {
			check := assert.New(t)
			check.Equal(tc.error, tc.err.Error())

			b, err := xml.Marshal(tc.err)
			check.NoError(err)
			check.Equal(tc.xml, string(b))

			b, err = json.Marshal(tc.err)
			check.NoError(err)
			check.Equal(tc.json, string(b))

			b, err = yaml.Marshal(tc.err)
			check.NoError(err)
			check.Equal(tc.yaml, string(b))

			var back Error
			check.NoError(json.Unmarshal([]byte(tc.json), &back))
			check.Equal(tc.err.Severity, back.Severity)
			check.Equal(tc.err.Category, back.Category)
		})
	}
}

func TestEnumText(t *testing.T) {
	check := assert.New(t)
	var s Severity
	check.NoError(s.UnmarshalText([]byte(" warning ")))
	check.Equal(SeverityWarning, s)
	check.Error(s.UnmarshalText([]byte("loud")))
	check.Equal("Severity(9)", Severity(9).String())

	var c Category
	check.NoError(c.UnmarshalText([]byte("identifier-consistency")))
	check.Equal(CategoryIdentifierConsistency, c)
	check.Error(c.UnmarshalText([]byte("nope")))
	check.Equal("Category(-1)", Category(-1).String())
}

func TestStatusOf(t *testing.T) {
	check := assert.New(t)
	check.Equal(OperationSuccess, StatusOf(nil))
	check.Equal(InvalidObject, StatusOf(ErrInvalidObject))
	check.Equal(PkgVersionMismatch, StatusOf(errors.Wrap(ErrPkgVersionMismatch, "setValue")))
	check.Equal(OperationFailed, StatusOf(errors.New("boom")))
	check.Equal(-22, int(PkgVersionMismatch))
	check.Equal("index exceeds size", ErrIndexExceedsSize.Error())
	check.True(errors.Is(errors.WithStack(ErrLevelMismatch), ErrLevelMismatch))
}
