// Package traceio reads SWV traces from CSV exports and writes analysis
// overlays for plotting tools.
//
// The reader accepts the usual potentiostat export layout: an optional
// header naming a potential (or voltage) column and a current column, each
// optionally followed by its unit, e.g. "Potential (V),Current (uA)".
// Rows with empty or non-numeric cells are dropped. Exports archived as
// .gz or .zst are read transparently by ReadFile.
package traceio
