// Package sedml implements elements of SED-ML, the Simulation Experiment
// Description Markup Language: models and the changes applied to them.
//
// SED-ML elements share the SedBase attributes, and SED-ML lists are
// SedListOf containers. Importing the package registers its classes with
// package schema.
package sedml
