// Package differ computes the structured diff between two record collections.
//
// Records are matched by the key their variant derives (symbolic name for
// bundles, name and group for packages), matched pairs are compared over a
// fixed set of tracked fields, and the result is an ordered list of
// models.DiffRecord values: left-side keys in input order followed by keys
// present only on the right. Identical pairs produce no record. Everything in
// this package is pure; inputs are never mutated.
package differ
