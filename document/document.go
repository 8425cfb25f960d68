package document

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/andaru/sbmlbind/sbmlerr"
	"github.com/andaru/sbmlbind/schema"
	"github.com/andaru/sbmlbind/xmlutil"
	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// DefaultNamespaces are the namespaces unqualified document elements are
// read at, unless WithNamespaces says otherwise.
var DefaultNamespaces = xmlutil.SBML(3, 1)

type options struct {
	ns     xmlutil.Namespaces
	log    *sbmlerr.Log
	indent string
	header bool
}

// Option is a document option function
type Option func(*options)

// WithNamespaces sets the namespaces of unqualified document elements.
func WithNamespaces(ns xmlutil.Namespaces) Option { return func(o *options) { o.ns = ns } }

// WithLog sets the Log diagnostics are appended to.
func WithLog(log *sbmlerr.Log) Option { return func(o *options) { o.log = log } }

// WithIndent indents written output by indent per level.
func WithIndent(indent string) Option { return func(o *options) { o.indent = indent } }

// WithoutHeader omits the XML declaration from written output.
func WithoutHeader() Option { return func(o *options) { o.header = false } }

func newOptions(opts []Option) *options {
	o := &options{ns: DefaultNamespaces, header: true}
	for _, opt := range opts {
		opt(o)
	}
	if o.log == nil {
		o.log = sbmlerr.NewLog()
	}
	return o
}

// Document is a document element with the diagnostics of reading it.
type Document struct {
	root     schema.Element
	log      *sbmlerr.Log
	prefixes xmlutil.PrefixMap
}

// New returns a document of root, with an empty log.
func New(root schema.Element) *Document {
	return &Document{root: root, log: sbmlerr.NewLog(), prefixes: xmlutil.PrefixMap{}}
}

// Read reads a document from input. Malformed content is logged to the
// document's Log; an error is returned when the input is not well-formed
// XML or its document element is unknown. The partial document is returned
// in the first case.
func Read(input io.Reader, opts ...Option) (*Document, error) {
	o := newOptions(opts)
	r := schema.NewReader(input, schema.WithLog(o.log))
	root, err := r.ReadRoot(o.ns)
	d := &Document{root: root, log: o.log, prefixes: r.PrefixMap()}
	if glog.V(1) {
		glog.Infof("read document <%s>: %d diagnostics", d.ElementName(), d.log.Len())
	}
	if err != nil {
		if root == nil {
			return nil, err
		}
		return d, err
	}
	return d, nil
}

// ReadString reads a document from s.
func ReadString(s string, opts ...Option) (*Document, error) {
	return Read(strings.NewReader(s), opts...)
}

// ReadFile reads the document stored in the file name.
func ReadFile(name string, opts ...Option) (*Document, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()
	d, err := Read(f, opts...)
	return d, errors.Wrap(err, name)
}

// Root returns the document element.
func (d *Document) Root() schema.Element { return d.root }

// Log returns the document's diagnostics.
func (d *Document) Log() *sbmlerr.Log { return d.log }

// Prefixes returns the namespace prefixes declared by the document's
// input. They are declared again when the document is written.
func (d *Document) Prefixes() xmlutil.PrefixMap { return d.prefixes }

// ElementName returns the document element's name.
func (d *Document) ElementName() string {
	if d.root == nil {
		return ""
	}
	return d.root.Class().Name
}

// NumErrors returns the number of diagnostics of severity Error or worse.
func (d *Document) NumErrors() int { return d.log.CountSeverity(sbmlerr.SeverityError) }

// Write writes the document to output.
func (d *Document) Write(output io.Writer, opts ...Option) error {
	if d.root == nil {
		return errors.WithStack(sbmlerr.ErrInvalidObject)
	}
	o := newOptions(opts)
	wopts := []schema.WriterOption{schema.WithPrefixes(d.prefixes)}
	if o.indent != "" {
		wopts = append(wopts, schema.WithIndent("", o.indent))
	}
	w := schema.NewWriter(output, wopts...)
	if o.header {
		if err := w.WriteHeader(); err != nil {
			return err
		}
	}
	if err := w.WriteElement(d.root); err != nil {
		return err
	}
	glog.V(1).Infof("wrote document <%s>", d.ElementName())
	_, err := io.WriteString(output, "\n")
	return errors.WithStack(err)
}

// WriteString returns the document as a string.
func (d *Document) WriteString(opts ...Option) (string, error) {
	var buf bytes.Buffer
	if err := d.Write(&buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Node returns the document as written, parsed to an xmlquery node tree.
func (d *Document) Node() (*xmlquery.Node, error) {
	var buf bytes.Buffer
	if err := d.Write(&buf, WithoutHeader()); err != nil {
		return nil, err
	}
	doc, err := xmlquery.Parse(&buf)
	return doc, errors.Wrap(err, "parse written document")
}

// Query evaluates the XPath expression expr over the document as written
// and returns the matching nodes.
func (d *Document) Query(expr string) ([]*xmlquery.Node, error) {
	xp, err := xpath.Compile(expr)
	if err != nil {
		return nil, errors.Wrapf(err, "compile %q", expr)
	}
	doc, err := d.Node()
	if err != nil {
		return nil, err
	}
	return xmlquery.QuerySelectorAll(doc, xp), nil
}

// Evaluate evaluates the XPath expression expr over the document as
// written, returning its value: a float64, string, bool or, for node-set
// expressions, the matching nodes' text.
func (d *Document) Evaluate(expr string) (interface{}, error) {
	xp, err := xpath.Compile(expr)
	if err != nil {
		return nil, errors.Wrapf(err, "compile %q", expr)
	}
	doc, err := d.Node()
	if err != nil {
		return nil, err
	}
	switch v := xp.Evaluate(xmlquery.CreateXPathNavigator(doc)).(type) {
	case *xpath.NodeIterator:
		var texts []string
		for v.MoveNext() {
			texts = append(texts, v.Current().Value())
		}
		return texts, nil
	default:
		return v, nil
	}
}
