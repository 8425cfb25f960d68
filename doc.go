/*
Package sbmlbind is a set of libraries binding SBML-family XML elements
to typed Go values.

Element classes declare their attributes and children once, as bindings
gated by SBML level, version and package version. The schema package
reads and writes any registered class from that declaration, logging
malformed content as diagnostics drawn from the static tables of package
sbmlerr instead of failing the read.

The sbml package holds the core base traits and the generic ListOf
container. Package classes live in the render, distrib, fbc, sedml, sbgn
and testpkg sub-directories; importing a package registers its classes.
The document package wraps reading and writing of whole documents and
supports XPath queries over them.

See cmd/sbmlbind for a command line tool checking, rewriting and
describing documents.
*/
package sbmlbind
