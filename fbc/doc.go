// Package fbc implements elements of version 1 of the SBML Level 3 Flux
// Balance Constraints package: flux bounds and objectives, and the lists
// holding them.
//
// fbc version 1 qualifies the package's attributes with the package
// prefix, as in fbc:reaction.
//
// Importing the package registers its classes with package schema.
package fbc
