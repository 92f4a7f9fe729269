package atsp

import (
	"fmt"
	"log"
)

var logLevel = 2

// InitLoggers sets the verbosity for Log. Level 1 is errors only, higher
// values are more verbose (range 1-4).
func InitLoggers(level int) {
	logLevel = level
}

func Log(level int, format string, args ...interface{}) {
	if level > logLevel {
		return
	}
	log.Println(fmt.Sprintf(format, args...))
}
