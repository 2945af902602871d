// Package cli parses command-line arguments for the crashlab binary,
// validates user input, and owns process-level concerns like exit codes.
// It translates flags and positionals into the demo's configuration.
package cli
