package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"sync/atomic"

	"github.com/cornelk/hashmap"
)

const (
	ERROR   = 1
	INFO    = 2
	VERBOSE = 3
	DEBUG   = 7
)

var (
	level   = INFO
	limiter int
	filter  *regexp.Regexp
	counter *hashmap.HashMap
	output  = log.New(os.Stderr, "", log.LstdFlags)
)

func init() {
	counter = &hashmap.HashMap{}
}

func SetLevel(l int) {
	level = l
}

func Level() int {
	return level
}

// SetLimiter caps how many times an identical message is printed, 0 means
// no cap. Counters are kept for the process lifetime.
func SetLimiter(l int) {
	limiter = l
}

func SetFilter(pattern string) error {
	if pattern == "" {
		filter = nil
		return nil
	}
	// https://github.com/google/re2/wiki/Syntax
	reg, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}
	filter = reg
	return nil
}

func SetOutput(w io.Writer) {
	output.SetOutput(w)
}

func Println(v ...interface{}) {
	if level >= INFO {
		output.Println(v...)
	}
}

func Printf(format string, v ...interface{}) {
	printfAtLevel(INFO, format, v...)
}

func Errorf(format string, v ...interface{}) {
	printfAtLevel(ERROR, "ERROR "+format, v...)
}

func Verbosef(format string, v ...interface{}) {
	printfAtLevel(VERBOSE, format, v...)
}

func Debugf(format string, v ...interface{}) {
	printfAtLevel(DEBUG, format, v...)
}

func printfAtLevel(l int, format string, v ...interface{}) {
	if level < l {
		return
	}
	out := filterOutput(format, v...)
	if out == "" {
		return
	}
	if !limiterAvailable(out) {
		return
	}
	output.Print(out)
}

func limiterAvailable(out string) bool {
	if limiter == 0 {
		return true
	}
	var i int64
	val, _ := counter.GetOrInsert(out, &i)
	actual := (val).(*int64)
	count := atomic.AddInt64(actual, 1)
	return count <= int64(limiter)
}

func filterOutput(format string, v ...interface{}) string {
	out := fmt.Sprintf(format, v...)
	if filter == nil || filter.MatchString(out) {
		return out
	}
	return ""
}
