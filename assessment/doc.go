// Package assessment defines the domain value types produced by a compliance
// assessment: gaps, risks, and the enumerations that describe them.
//
// All types in this package are plain value objects. They carry no behavior
// beyond validation, parsing, and the documented fallback defaults for absent
// fields (a missing gap size is treated as a full gap, a missing control
// effectiveness as no control). The scoring package consumes these values;
// nothing here performs I/O.
package assessment
