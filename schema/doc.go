// Copyright 2018 Andrew Fort

// Package schema provides the marshalling protocol shared by SBML-family
// schema elements.
//
// A schema element is a Go type implementing Element. Its Class describes
// the element's XML attributes and child elements as an ordered list of
// Traits, each holding attribute and child bindings. A binding pairs an
// XML name with an accessor for the typed field (see package attr) or the
// child slot that stores it, plus a version gate selecting the
// level/version/package-version combinations the binding is valid for.
//
// Classes are composed rather than derived: the traits of a class are
// listed base first, so that the attributes a class accepts at a given
// namespace are simply the union of the valid bindings of its traits in
// order.
//
// Reading
//
// A Reader consumes an encoding/xml token stream. For each element it
//
//   1. records the element's line and column,
//   2. checks every attribute against the class (and plugin classes),
//      logging UnknownCoreAttribute or UnknownPackageAttribute for names
//      not expected at the element's namespaces,
//   3. rewrites those diagnostics, logged while reading this element's
//      attributes only, to the class's own AllowedCoreAttributes or
//      AllowedAttributes codes,
//   4. parses each valid binding's attribute into its field, logging
//      missing required attributes and malformed values,
//   5. dispatches child elements by local name, skipping unknown
//      children and replacing duplicate singletons (last one wins), and
//   6. after the end tag, logs each missing required child.
//
// Nothing is returned as an error except XML syntax errors, which are
// also logged as the fatal BadlyFormedXML diagnostic.
//
// Writing
//
// A Writer writes attributes in trait order, skipping those which are
// not set, followed by plugin attributes, then children in declaration
// order and any text content. Empty lists are skipped unless the child is
// required. Enumerations are written as their
// canonical tokens.
//
// Generic accessors
//
// GetAttribute, SetAttribute, IsSetAttribute and UnsetAttribute operate
// on any element by attribute name, through a name index built when the
// class is defined. These functions, and HasRequiredAttributes,
// HasRequiredElements, Clone and the tree functions, accept nil elements
// (including typed nil pointers) and report sbmlerr.ErrInvalidObject or
// the zero result. The typed accessors of element types require a
// non-nil receiver.
package schema
