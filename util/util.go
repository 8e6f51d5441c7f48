package util

import (
	"log"
	"os"
)

// Logging is a clumsy switch that affects what Logf does.
//
// If Logging is true, then Logf calls log.Printf.  The switch starts
// on when the environment variable CXG_DEBUG is non-empty.
var Logging = os.Getenv("CXG_DEBUG") != ""

// Logf calls log.Printf (with a "debug: " prefix) if Logging is true.
//
// Constructions, matchers, and operators report their traces through
// this function.
func Logf(format string, args ...interface{}) {
	if !Logging {
		return
	}
	log.Printf("debug: "+format, args...)
}
