// Package distrib implements elements of the SBML Level 3 Distributions
// package: uncertain values and bounds, and the binomial and Bernoulli
// distributions built from them.
//
// Importing the package registers its classes with package schema.
package distrib
