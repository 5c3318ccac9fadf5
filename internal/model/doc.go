// Package model defines the data types shared across tablr: records with
// open attribute bags, column descriptors, sort specifications and the
// user configuration.
//
// A cell holds a [Value], a tagged union over text, number, boolean and
// absent. Absent is distinct from an explicit empty value: a record that
// never had a field differs from one whose field was set to "".
package model
