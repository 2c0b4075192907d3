// Package viz is the interactive terminal dashboard, built on Bubble Tea.
//
// [App] hosts three views:
//
//   - Playground: model cards, the animated canvas, training log, run
//     analytics and the fraud arena
//   - Dashboard: headline stats, risk heatmap, engine cards, rotating insight
//   - Compare: benchmark cards, comparison table and trend charts
//
// Every timer is a tea.Tick carrying the generation of the task that
// scheduled it. Switching variant or view bumps the generation, so stale
// ticks are dropped instead of rescheduled.
//
// # Key Bindings
//
//	Tab     - Next view (1/2/3 jump directly)
//	←/→     - Select model card
//	Enter   - Run simulation
//	↑/↓     - Scroll training log
//	T       - Cycle color themes
//	?       - Toggle full help
//	Q       - Quit
package viz
