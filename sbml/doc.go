// Package sbml holds the SBML core base shared by the elements of SBML
// Level 3 and its packages: the SBase attributes, the L3V1 id and name
// helpers and the generic ListOf container.
package sbml
