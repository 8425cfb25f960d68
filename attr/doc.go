// Package attr provides the typed attribute storage used by schema elements.
//
// Each attribute of an element is held in a Field: a value that knows its
// Kind, whether it is set, how to parse itself from an XML attribute value
// and how to format itself back. Values cross the generic attribute
// accessors as a Value, a tagged union over the attribute kinds.
//
// Enumerated attributes are backed by an EnumTable listing the canonical
// tokens of the enumeration; the table's Invalid code is the sentinel for
// tokens outside it.
package attr
