// Package envvar provides utilities for fetching/converting environment variables.
package envvar

import (
	"os"
	"strconv"

	"github.com/couchbase/cblog/log"
)

// GetInt returns the int value of the environmental variable varName if the env var is not an int or empty it will
// return 0, false.
func GetInt(varName string) (int, bool) {
	env, ok := os.LookupEnv(varName)
	if !ok {
		return 0, false
	}

	val, err := strconv.Atoi(env)
	if err != nil {
		return 0, false
	}

	return val, true
}

// GetLevel returns the log level value of the environmental variable varName if the env var is not a valid level or
// empty it will return 0, false.
func GetLevel(varName string) (log.Level, bool) {
	env, ok := os.LookupEnv(varName)
	if !ok {
		return 0, false
	}

	level, err := log.ParseLevel(env)
	if err != nil {
		return 0, false
	}

	return level, true
}
