// Package document reads and writes whole documents of schema elements:
// the document element, the diagnostics logged while reading it and the
// namespace prefixes its input declared.
//
// The classes a document may contain must be registered with package
// schema, normally by importing the packages defining them.
package document
