// Package internal holds small helpers shared across the engine packages:
// logger setup and geographic distance.
package internal

import (
	"log"
	"os"
)

// InitLogging routes the standard logger to stdout with microsecond
// timestamps. Called once at process start; the library packages log
// through the standard logger and inherit this setup.
func InitLogging() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
