// Package testpkg implements the elements of the SBML Level 3 "test"
// package: classThree, category and value, and the plugin adding the
// plugAtt attribute to every SBML element.
//
// Importing the package registers its classes with package schema.
package testpkg
