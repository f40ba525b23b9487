// Package app wires the kintree library into the command-line tool: it holds
// the validated run configuration, the logger setup, and the load-then-report
// lifecycle, decoupled from flag parsing.
package app
