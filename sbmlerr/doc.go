// Copyright 2018 Andrew Fort

// Package sbmlerr holds the diagnostic vocabulary shared by every schema
// element: numeric diagnostic codes, the static error tables describing
// them, the per-document error Log the reader appends to, and the status
// errors returned by setters and the generic attribute accessors.
//
// Code blocks
//
// Codes below 100000 belong to the core (XML layer and SBML core
// validation, grouped as 10000s informational/structural and 20000s
// validation rules, with 99xxx reserved for internal use). Codes in
// [100000, 1000000) are reserved for application-specific extensions.
// Each package owns the block Offset+[10000, 100000), where Offset is a
// multiple of 100000 no smaller than 1000000. The tables compiled into
// this package are checked against that convention at init.
//
// Tables are immutable once the process has started and may be read from
// any number of goroutines. A Log is not safe for concurrent use; it
// belongs to exactly one document.
package sbmlerr
