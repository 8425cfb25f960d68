package schema

// Children returns e's child elements in declaration order.
func Children(e Element) []Element {
	if isNil(e) {
		return nil
	}
	var out []Element
	for _, b := range e.Class().ChildrenAt(e.Core().ns) {
		out = append(out, b.Items(e)...)
	}
	return out
}

// Walk calls fn for e and its descendants, depth first, in declaration
// order. Returning false from fn skips the element's descendants.
func Walk(e Element, fn func(Element) bool) {
	if isNil(e) || !fn(e) {
		return
	}
	for _, c := range Children(e) {
		Walk(c, fn)
	}
}

// AllElements returns e's descendants, depth first.
func AllElements(e Element) (out []Element) {
	Walk(e, func(el Element) bool {
		if el != e {
			out = append(out, el)
		}
		return true
	})
	return out
}

// ElementBySId returns the first element of e's tree (e included) whose
// id is id, or nil.
func ElementBySId(e Element, id string) Element { return findByAttr(e, "id", id) }

// ElementByMetaId returns the first element of e's tree (e included)
// whose metaid is metaid, or nil.
func ElementByMetaId(e Element, metaid string) Element { return findByAttr(e, "metaid", metaid) }

func findByAttr(e Element, name, want string) (found Element) {
	if want == "" {
		return nil
	}
	Walk(e, func(el Element) bool {
		if found != nil {
			return false
		}
		if !IsSetAttribute(el, name) {
			return true
		}
		if v, err := GetAttribute(el, name); err == nil {
			if s, err := v.AsString(); err == nil && s == want {
				found = el
				return false
			}
		}
		return true
	})
	return found
}
