// Command rotorfd diagnoses rolling-element bearing faults from a vibration
// capture and writes a JSON or YAML report.
//
// Usage:
//
//	rotorfd [flags]
//	rotorfd init-config [path]
//
// Without --input a synthetic outer-race fault signal is analyzed.
//
// Examples:
//
//	rotorfd --order --out diag.json
//	rotorfd --input capture.csv --fs 25600 --geom n=9,d=0.0079,D=0.0393,rpm=1750
//	rotorfd --fixed --q15simulate --format yaml --out -
package main

import (
	"fmt"
	"os"
	"runtime/debug"
)

func main() {
	defer handlePanic()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// handlePanic reports a panic with its stack and exits with code 1.
func handlePanic() {
	if r := recover(); r != nil {
		_, _ = fmt.Fprintf(os.Stderr, "FATAL: %v\n\nStack trace:\n%s\n", r, debug.Stack())
		os.Exit(1)
	}
}
