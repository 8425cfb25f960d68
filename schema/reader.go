package schema

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/andaru/sbmlbind/attr"
	"github.com/andaru/sbmlbind/sbmlerr"
	"github.com/andaru/sbmlbind/xmlutil"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

const xmlURI = "http://www.w3.org/XML/1998/namespace"

// Reader reads schema elements from an XML token stream, logging
// diagnostics to its Log.
//
// A Reader and its Log are not safe for concurrent use.
type Reader struct {
	dec      *xml.Decoder
	log      *sbmlerr.Log
	prefixes xmlutil.PrefixMap

	// position before the last token read
	line, column int
}

// ReaderOption is a Reader option function
type ReaderOption func(*Reader)

// WithLog sets the Log diagnostics are appended to.
func WithLog(log *sbmlerr.Log) ReaderOption { return func(r *Reader) { r.log = log } }

// NewReader returns a Reader consuming XML from input.
func NewReader(input io.Reader, opts ...ReaderOption) *Reader {
	r := &Reader{dec: xml.NewDecoder(input), prefixes: xmlutil.PrefixMap{}}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = sbmlerr.NewLog()
	}
	r.dec.CharsetReader = r.charsetReader
	return r
}

// Log returns the reader's diagnostic log.
func (r *Reader) Log() *sbmlerr.Log { return r.log }

// PrefixMap returns the namespace prefixes declared in the input, the
// first declaration of each prefix winning.
func (r *Reader) PrefixMap() xmlutil.PrefixMap { return r.prefixes }

// charsetReader accepts documents declaring a non-UTF-8 encoding, logging
// NotUTF8 and reading the input as UTF-8.
func (r *Reader) charsetReader(charset string, input io.Reader) (io.Reader, error) {
	line, col := r.dec.InputPos()
	r.log.Report(sbmlerr.NotUTF8, sbmlerr.WithPosition(line, col),
		sbmlerr.WithMessage(fmt.Sprintf("the document declares encoding %q", charset)))
	return input, nil
}

func (r *Reader) next() (xml.Token, error) {
	r.line, r.column = r.dec.InputPos()
	token, err := r.dec.Token()
	if err != nil {
		return nil, err
	}
	return xml.CopyToken(token), nil
}

// ReadRoot reads the document element, creating it from the class
// registered for its namespace and name. Unqualified document elements
// are read at def.
func (r *Reader) ReadRoot(def xmlutil.Namespaces) (Element, error) {
	for {
		token, err := r.next()
		if err != nil {
			if err == io.EOF {
				err = errors.New("no document element")
			}
			return nil, r.badlyFormed(err)
		}
		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		ns := def
		if start.Name.Space != "" {
			if ns, ok = xmlutil.ParseURI(start.Name.Space); !ok {
				r.log.Report(sbmlerr.UnrecognizedElement, sbmlerr.WithPosition(r.line, r.column),
					sbmlerr.WithMessage(fmt.Sprintf("document element %s is in an unknown namespace", pprintElem(start))))
				return nil, errors.Wrapf(sbmlerr.ErrOperationFailed, "unknown namespace %q", start.Name.Space)
			}
		}
		c, ok := classFor(ns, start.Name.Local)
		if !ok {
			r.log.Report(sbmlerr.UnrecognizedElement, sbmlerr.WithPosition(r.line, r.column),
				sbmlerr.WithMessage(fmt.Sprintf("unknown document element %s", pprintElem(start))))
			return nil, errors.Wrapf(sbmlerr.ErrOperationFailed, "no class for %s in %s", start.Name.Local, ns)
		}
		e := c.New(ns)
		if e == nil {
			return nil, errors.Wrapf(sbmlerr.ErrOperationFailed, "class %s has no factory", c)
		}
		return e, r.ReadElement(e, start)
	}
}

// ReadElement populates e from start and the tokens up to and including
// the matching end element. Malformed content is logged, not returned; the
// returned error is non-nil only when the XML itself is not well-formed.
func (r *Reader) ReadElement(e Element, start xml.StartElement) error {
	n := e.Core()
	n.SetPosition(r.line, r.column)
	if glog.V(2) {
		glog.Infof("read %s at line %d, column %d", pprintElem(start), n.line, n.column)
	}
	r.readAttributes(e, start)
	return r.readContent(e, start)
}

func (r *Reader) readAttributes(e Element, start xml.StartElement) {
	n, c := e.Core(), e.Class()
	baseURI, ownURI := n.ns.Core().URI(), n.ns.URI()
	pos := sbmlerr.WithPosition(n.line, n.column)

	values := map[*AttrBinding]string{}
	var plugins []Element
	pluginAttrs := map[Element][]xml.Attr{}

	for _, a := range start.Attr {
		if xmlutil.IsXMLNS(a) {
			r.declare(a)
		}
	}

	mark := r.log.Len()
	for _, a := range start.Attr {
		space, local := a.Name.Space, a.Name.Local
		switch {
		case xmlutil.IsXMLNS(a), space == xmlURI:
		case space == "":
			if b := c.Binding(local, n.ns); b != nil && (b.core || !c.Prefixed) {
				values[b] = a.Value
				continue
			}
			r.unknownAttribute(c.isBaseName(local), a, c, pos)
		case space == baseURI:
			if b := c.Binding(local, n.ns); b != nil && b.core {
				values[b] = a.Value
				continue
			}
			r.unknownAttribute(true, a, c, pos)
		case space == ownURI:
			if b := c.Binding(local, n.ns); b != nil && !b.core {
				values[b] = a.Value
				continue
			}
			r.unknownAttribute(false, a, c, pos)
		default:
			ns, ok := xmlutil.ParseURI(space)
			if !ok || !KnownPackage(ns.PackageName()) {
				glog.V(2).Infof("ignoring attribute %s in unknown namespace", r.qname(a.Name))
				continue
			}
			p, err := EnablePlugin(e, ns.Package, ns.PackageVersion)
			if err != nil {
				r.unknownAttribute(false, a, c, pos)
				continue
			}
			if _, seen := pluginAttrs[p]; !seen {
				plugins = append(plugins, p)
			}
			pluginAttrs[p] = append(pluginAttrs[p], a)
		}
	}
	r.reclassify(mark, c.Codes)
	r.parseAttributes(e, values, pos)

	for _, p := range plugins {
		pc, pns := p.Class(), p.Core().ns
		values := map[*AttrBinding]string{}
		mark := r.log.Len()
		for _, a := range pluginAttrs[p] {
			if b := pc.Binding(a.Name.Local, pns); b != nil {
				values[b] = a.Value
				continue
			}
			r.unknownAttribute(false, a, c, pos)
		}
		r.reclassify(mark, pc.Codes)
		r.parseAttributes(p, values, pos)
	}
}

func (r *Reader) declare(a xml.Attr) {
	prefix := a.Name.Local
	if a.Name.Space == "" {
		prefix = ""
	}
	if _, ok := r.prefixes[prefix]; !ok {
		r.prefixes[prefix] = a.Value
	}
}

func (r *Reader) unknownAttribute(core bool, a xml.Attr, c *Class, pos sbmlerr.Option) {
	code := sbmlerr.UnknownPackageAttribute
	if core {
		code = sbmlerr.UnknownCoreAttribute
	}
	r.log.Report(code, pos, sbmlerr.WithMessage(fmt.Sprintf(
		"attribute '%s' is not part of the definition of the <%s> element", r.qname(a.Name), c.Name)))
}

// reclassify rewrites the unknown attribute diagnostics logged since mark
// to the class codes.
func (r *Reader) reclassify(mark int, codes Codes) {
	for _, from := range []sbmlerr.Code{sbmlerr.UnknownCoreAttribute, sbmlerr.UnknownPackageAttribute} {
		if to := codes.reclassify(from); to != 0 {
			r.log.Reclassify(mark, to, from)
		}
	}
}

// parseAttributes parses the attribute values found for e's bindings,
// in declaration order.
func (r *Reader) parseAttributes(e Element, values map[*AttrBinding]string, pos sbmlerr.Option) {
	n, c := e.Core(), e.Class()
	for _, b := range c.AttributesAt(n.ns) {
		if c.Binding(b.Name, n.ns) != b {
			continue
		}
		raw, ok := values[b]
		if !ok {
			if b.Required() {
				r.log.Report(c.Codes.missingAttribute(), pos, sbmlerr.WithMessage(fmt.Sprintf(
					"the required attribute '%s' is missing from the <%s> element", b.Name, c.Name)))
			}
			continue
		}
		code := firstCode(b.Code(), c.Codes.AllowedAttributes, sbmlerr.NotSchemaConformant)
		f := b.Field(e)
		err := f.Parse(raw)
		switch {
		case err == nil && b.NonEmpty() && raw == "", errors.Is(err, attr.ErrEmpty):
			f.Unset()
			r.log.Report(code, pos, sbmlerr.WithMessage(fmt.Sprintf(
				"the attribute '%s' on the <%s> element must not be empty", b.Name, c.Name)))
		case err == nil:
		case errors.Is(err, attr.ErrInvalidToken):
			msg := fmt.Sprintf("The %s on the <%s> ", b.Name, c.Name)
			if id := idOf(e); id != "" {
				msg += fmt.Sprintf("with id '%s' ", id)
			}
			msg += fmt.Sprintf("is '%s', which is not a valid option.", strings.TrimSpace(raw))
			r.log.Report(code, pos, sbmlerr.WithMessage(msg))
		default:
			r.log.Report(code, pos, sbmlerr.WithMessage(fmt.Sprintf(
				"the attribute '%s' on the <%s> element has an invalid value: %v", b.Name, c.Name, errors.Cause(err))))
		}
	}
}

func (r *Reader) readContent(e Element, start xml.StartElement) error {
	n, c := e.Core(), e.Class()
	ownURI := n.ns.URI()
	seen := map[*ChildBinding]bool{}
	var text bytes.Buffer
	hasText := false

	for {
		token, err := r.next()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return r.badlyFormed(err)
		}

		switch token := token.(type) {
		case xml.StartElement:
			pos := sbmlerr.WithPosition(r.line, r.column)
			var b *ChildBinding
			if token.Name.Space == "" || token.Name.Space == ownURI {
				b = c.Child(token.Name.Local, n.ns)
			}
			if b == nil {
				r.log.Report(c.Codes.elements(), pos, sbmlerr.WithMessage(fmt.Sprintf(
					"unexpected element %s found in element %s", elemStr(token.Name), elemStr(start.Name))))
				if err := r.dec.Skip(); err != nil {
					return r.badlyFormed(err)
				}
				continue
			}
			if b.Cardinality != ZeroOrMany && seen[b] {
				r.log.Report(firstCode(b.Code(), c.Codes.elements()), pos, sbmlerr.WithMessage(fmt.Sprintf(
					"duplicate element %s found in element %s", elemStr(token.Name), elemStr(start.Name))))
			}
			seen[b] = true
			child := b.Create(n.ns)
			err := r.ReadElement(child, token)
			b.Attach(e, child)
			if err != nil {
				return err
			}

		case xml.CharData:
			if c.HasText() {
				text.Write(token)
				hasText = true
			} else if trimmed := bytes.TrimSpace(token); len(trimmed) > 0 {
				r.log.Report(sbmlerr.NotSchemaConformant, sbmlerr.WithPosition(r.line, r.column),
					sbmlerr.WithMessage(fmt.Sprintf("unexpected character data found in element %s: %q",
						elemStr(start.Name), trimmed)))
			}

		case xml.EndElement:
			if hasText {
				c.Text(e).Set(text.String())
			}
			for _, b := range c.ChildrenAt(n.ns) {
				if b.Cardinality == ExactlyOne && !b.IsSet(e) {
					r.log.Report(firstCode(b.Code(), c.Codes.elements()), sbmlerr.WithPosition(n.line, n.column),
						sbmlerr.WithMessage(fmt.Sprintf("the <%s> element must contain one <%s> element", c.Name, b.Name)))
				}
			}
			return nil

		case xml.Comment, xml.ProcInst, xml.Directive:
			// ignore comments, processing instructions and directives
		}
	}
}

// badlyFormed logs err as a BadlyFormedXML diagnostic.
func (r *Reader) badlyFormed(err error) error {
	line, col := r.dec.InputPos()
	var syntax *xml.SyntaxError
	if errors.As(err, &syntax) {
		line, col = syntax.Line, 0
	}
	r.log.Report(sbmlerr.BadlyFormedXML, sbmlerr.WithPosition(line, col), sbmlerr.WithMessage(err.Error()))
	return errors.Wrap(err, "schema: read")
}

// qname returns the attribute name with the prefix declared for its
// namespace, if any.
func (r *Reader) qname(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	for _, pfx := range r.prefixes.Prefix(name.Space) {
		if pfx != "" {
			return pfx + ":" + name.Local
		}
	}
	if !strings.Contains(name.Space, ":") {
		return name.Space + ":" + name.Local
	}
	return "{" + name.Space + "}" + name.Local
}

func idOf(e Element) string {
	if !IsSetAttribute(e, "id") {
		return ""
	}
	v, _ := GetAttribute(e, "id")
	s, _ := v.AsString()
	return s
}

func elemStr(n xml.Name) string { return "<" + n.Local + ">" }

func pprintElem(t xml.Token) string {
	switch t := t.(type) {
	case xml.StartElement:
		return genElemStr(t.Name, "<")
	case xml.EndElement:
		return genElemStr(t.Name, "</")
	}
	return ""
}

func genElemStr(n xml.Name, pfx string) string {
	local := n.Local
	if local == "" {
		return ""
	}
	if ns := n.Space; ns != "" {
		return pfx + local + ` xmlns="` + ns + `">`
	}
	return pfx + local + ">"
}
