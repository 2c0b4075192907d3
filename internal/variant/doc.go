// Package variant defines the closed set of simulated fraud-detection models.
//
// A [Variant] is chosen once per simulation run and selects the drawing routine,
// the display metadata and the family (classical, deep or quantum) shown in the
// dashboard. The zero value [None] means no model has been selected yet.
package variant
