// Package analytics holds the datasets the views chart: per-run loss curves
// and feature importances, the dashboard risk grid and engine cards, and the
// fixed model benchmarks on the compare page.
//
// Random datasets take an explicit *rand.Rand so views can reseed them once
// per run instead of on every redraw.
package analytics
