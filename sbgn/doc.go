// Package sbgn implements elements of SBGN-ML, the exchange format of the
// Systems Biology Graphical Notation: glyphs with their labels and
// bounding boxes.
//
// Importing the package registers its classes with package schema.
package sbgn
