// Package display renders plans, run results and classification decisions
// for the terminal.
//
// Tables use go-pretty with the rounded style. Colours come from an embedded
// styles.yaml of adaptive lipgloss colours, so they suit light and dark
// terminals and disappear when output is not a terminal.
package display
