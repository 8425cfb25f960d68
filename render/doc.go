// Package render implements elements of the SBML Level 3 Render package:
// the rectangle, ellipse and point shapes and the defaultValues element,
// with the graphical primitive traits they share.
//
// Importing the package registers its classes with package schema.
package render
